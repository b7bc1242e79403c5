package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/wifey-app/wifey-api/app/models"
)

// Financial model constants. Shipping carries a 14% surcharge, the payment
// processor charges 2.75% plus 14% VAT on the fee, and 20 loyalty points
// redeem for one currency unit.
const (
	ShippingSurchargeRate = 0.14
	PaymobFeeRate         = 0.0275
	VATRate               = 0.14
	PointsPerCurrencyUnit = 20
)

// Breakdown is the per-subscription financial decomposition.
type Breakdown struct {
	Revenue             float64 `json:"revenue"`
	Cost                float64 `json:"cost"`
	ShippingCost        float64 `json:"shipping_cost"`
	PaymobFee           float64 `json:"paymob_fee"`
	Profit              float64 `json:"profit"`
	RedeemedPoints      int     `json:"redeemed_points"`
	RedeemedPointsValue float64 `json:"redeemed_points_value"`
}

// ComputeBreakdown decomposes a single subscription.
// The Paymob fee is waived for gifted subscriptions.
func ComputeBreakdown(sub models.Subscription) Breakdown {
	var cost float64
	if sub.Package != nil {
		cost = sub.Package.CostValue()
	}

	shippingCost := sub.Shipping + sub.Shipping*ShippingSurchargeRate

	var paymobFee float64
	if !sub.IsGift {
		paymobFee = sub.Total * PaymobFeeRate * (1 + VATRate)
	}

	return Breakdown{
		Revenue:             sub.Total,
		Cost:                cost,
		ShippingCost:        shippingCost,
		PaymobFee:           paymobFee,
		Profit:              sub.Total - cost - shippingCost - paymobFee,
		RedeemedPoints:      sub.RedeemedLoyaltyPoints,
		RedeemedPointsValue: float64(sub.RedeemedLoyaltyPoints) / PointsPerCurrencyUnit,
	}
}

// Summary accumulates overall totals across the filtered subscription set.
type Summary struct {
	TotalSubscriptions       int     `json:"total_subscriptions"`
	TotalWifeyFull           int     `json:"total_wifey_full"`
	TotalWifeyMini           int     `json:"total_wifey_mini"`
	TotalRevenue             float64 `json:"total_revenue"`
	TotalCost                float64 `json:"total_cost"`
	TotalDiscounts           float64 `json:"total_discounts"`
	TotalShipping            float64 `json:"total_shipping"`
	TotalPaymobFees          float64 `json:"total_paymob_fees"`
	TotalProfit              float64 `json:"total_profit"`
	TotalRedeemedPoints      int     `json:"total_redeemed_points"`
	TotalRedeemedPointsValue float64 `json:"total_redeemed_points_value"`
}

// PackageStats accumulates totals per package. Profit is recomputed from the
// running totals after every addition; that is equivalent to summing
// per-subscription profits since the fee waiver is already baked into
// PaymobFees.
type PackageStats struct {
	PackageID    uint    `json:"package_id"`
	PackageName  string  `json:"package_name"`
	Count        int     `json:"count"`
	Revenue      float64 `json:"revenue"`
	Cost         float64 `json:"cost"`
	ShippingCost float64 `json:"shipping_cost"`
	PaymobFees   float64 `json:"paymob_fees"`
	Profit       float64 `json:"profit"`
}

// IsMiniPackage classifies a package as the "Mini" tier by case-insensitive
// substring match. Anything else counts as the full tier.
func IsMiniPackage(name string) bool {
	return strings.Contains(strings.ToLower(name), "mini")
}

// Aggregate folds the subscription set into overall and per-package totals.
// Package stats come back in first-seen order.
func Aggregate(subs []models.Subscription) (Summary, []PackageStats) {
	var summary Summary
	byPackage := make(map[uint]*PackageStats)
	order := make([]uint, 0, 4)

	for _, sub := range subs {
		b := ComputeBreakdown(sub)

		summary.TotalSubscriptions++
		summary.TotalRevenue += b.Revenue
		summary.TotalCost += b.Cost
		summary.TotalDiscounts += sub.AppliedDiscountAmount
		summary.TotalShipping += b.ShippingCost
		summary.TotalPaymobFees += b.PaymobFee
		summary.TotalProfit += b.Profit
		summary.TotalRedeemedPoints += b.RedeemedPoints
		summary.TotalRedeemedPointsValue += b.RedeemedPointsValue

		pkgName := ""
		if sub.Package != nil {
			pkgName = sub.Package.Name
		}
		if IsMiniPackage(pkgName) {
			summary.TotalWifeyMini++
		} else {
			summary.TotalWifeyFull++
		}

		stats, ok := byPackage[sub.PackageID]
		if !ok {
			stats = &PackageStats{PackageID: sub.PackageID, PackageName: pkgName}
			byPackage[sub.PackageID] = stats
			order = append(order, sub.PackageID)
		}
		stats.Count++
		stats.Revenue += b.Revenue
		stats.Cost += b.Cost
		stats.ShippingCost += b.ShippingCost
		stats.PaymobFees += b.PaymobFee
		stats.Profit = stats.Revenue - stats.Cost - stats.ShippingCost - stats.PaymobFees
	}

	result := make([]PackageStats, 0, len(order))
	for _, id := range order {
		result = append(result, *byPackage[id])
	}
	return summary, result
}

// MonthlyPoint is one bucket of the trailing 12-month series.
type MonthlyPoint struct {
	Month   string  `json:"month"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
	Profit  float64 `json:"profit"`
}

// MonthlySeries buckets the given subscriptions into the trailing 12 calendar
// months ending at now, oldest first. Monthly cost follows the trend formula
// (package cost + shipping with surcharge + processor fee with VAT) without
// the gift waiver.
func MonthlySeries(subs []models.Subscription, now time.Time) []MonthlyPoint {
	series := make([]MonthlyPoint, 0, 12)

	for i := 11; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		point := MonthlyPoint{Month: monthStart.Format("2006-01")}
		for _, sub := range subs {
			if sub.CreatedAt.Before(monthStart) || !sub.CreatedAt.Before(monthEnd) {
				continue
			}
			var pkgCost float64
			if sub.Package != nil {
				pkgCost = sub.Package.CostValue()
			}
			point.Count++
			point.Revenue += sub.Total
			point.Cost += pkgCost + sub.Shipping*(1+ShippingSurchargeRate) + sub.Total*PaymobFeeRate*(1+VATRate)
		}
		point.Profit = point.Revenue - point.Cost
		series = append(series, point)
	}

	return series
}

// Period is the resolved reporting window. Start and End are nil for the
// all-time view.
type Period struct {
	Label string     `json:"label"`
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// ResolveWindow turns the month (YYYY-MM) or year (YYYY) query parameter into
// an inclusive window. Month and year are mutually exclusive; neither means
// all-time. The end bound sits on the last millisecond of the window.
func ResolveWindow(month, year string, now time.Time) (Period, error) {
	if month != "" && year != "" {
		return Period{}, fmt.Errorf("month and year filters are mutually exclusive")
	}

	switch {
	case month != "":
		start, err := time.ParseInLocation("2006-01", month, now.Location())
		if err != nil {
			return Period{}, fmt.Errorf("invalid month %q: expected YYYY-MM", month)
		}
		end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
		return Period{Label: month, Start: &start, End: &end}, nil

	case year != "":
		start, err := time.ParseInLocation("2006", year, now.Location())
		if err != nil {
			return Period{}, fmt.Errorf("invalid year %q: expected YYYY", year)
		}
		end := start.AddDate(1, 0, 0).Add(-time.Millisecond)
		return Period{Label: year, Start: &start, End: &end}, nil
	}

	return Period{Label: "all"}, nil
}

// TrailingWindow returns the trailing 12-month fallback window ending at now.
func TrailingWindow(now time.Time) Period {
	start := now.AddDate(0, -12, 0)
	return Period{Label: "trailing-12-months", Start: &start, End: &now}
}

// FetchFunc loads subscribed rows for an optional date window and package
// filter. The subscription repository's FindSubscribed satisfies it.
type FetchFunc func(start, end *time.Time, packageID *uint) ([]models.Subscription, error)

// FindWithFallback fetches rows for the resolved period, degrading an empty
// strict window to the trailing 12 months and then to no date filter at all.
// The returned period reflects the window the rows actually came from.
func FindWithFallback(fetch FetchFunc, period Period, now time.Time, packageID *uint) ([]models.Subscription, Period, error) {
	subs, err := fetch(period.Start, period.End, packageID)
	if err != nil {
		return nil, Period{}, err
	}
	if len(subs) > 0 || period.Start == nil {
		return subs, period, nil
	}

	trailing := TrailingWindow(now)
	subs, err = fetch(trailing.Start, trailing.End, packageID)
	if err != nil {
		return nil, Period{}, err
	}
	if len(subs) > 0 {
		return subs, trailing, nil
	}

	subs, err = fetch(nil, nil, packageID)
	if err != nil {
		return nil, Period{}, err
	}
	return subs, Period{Label: "all"}, nil
}
