package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wifey-app/wifey-api/app/models"
)

func pkg(id uint, name, cost string) *models.Package {
	return &models.Package{ID: id, Name: name, Cost: cost}
}

func sub(total, shipping float64, p *models.Package, gift bool) models.Subscription {
	s := models.Subscription{
		Total:    total,
		Shipping: shipping,
		IsGift:   gift,
	}
	if p != nil {
		s.PackageID = p.ID
		s.Package = p
	}
	return s
}

func TestComputeBreakdown(t *testing.T) {
	s := sub(1000, 100, pkg(1, "Wifey Full", "350.50"), false)
	s.RedeemedLoyaltyPoints = 200

	b := ComputeBreakdown(s)

	assert.InDelta(t, 1000.0, b.Revenue, 1e-9)
	assert.InDelta(t, 350.50, b.Cost, 1e-9)
	assert.InDelta(t, 114.0, b.ShippingCost, 1e-9) // 100 * 1.14
	assert.InDelta(t, 31.35, b.PaymobFee, 1e-9)    // 1000 * 0.0275 * 1.14
	assert.InDelta(t, 1000-350.50-114-31.35, b.Profit, 1e-9)
	assert.Equal(t, 200, b.RedeemedPoints)
	assert.InDelta(t, 10.0, b.RedeemedPointsValue, 1e-9) // 200 / 20
}

func TestComputeBreakdownGiftWaivesFee(t *testing.T) {
	s := sub(1000, 100, pkg(1, "Wifey Full", "350"), true)

	b := ComputeBreakdown(s)

	assert.Zero(t, b.PaymobFee)
	assert.InDelta(t, 1000-350-114, b.Profit, 1e-9)
}

func TestComputeBreakdownUnparsableCost(t *testing.T) {
	b := ComputeBreakdown(sub(500, 0, pkg(1, "Wifey Mini", "n/a"), false))

	assert.Zero(t, b.Cost)
}

func TestIsMiniPackage(t *testing.T) {
	assert.True(t, IsMiniPackage("Wifey Mini"))
	assert.True(t, IsMiniPackage("MINI box"))
	assert.True(t, IsMiniPackage("the miniature"))
	assert.False(t, IsMiniPackage("Wifey Full"))
	assert.False(t, IsMiniPackage(""))
}

func TestAggregate(t *testing.T) {
	full := pkg(1, "Wifey Full", "300")
	mini := pkg(2, "Wifey Mini", "150")

	subs := []models.Subscription{
		sub(1000, 100, full, false),
		sub(500, 50, mini, false),
		sub(1000, 100, full, true),
	}

	summary, stats := Aggregate(subs)

	assert.Equal(t, 3, summary.TotalSubscriptions)
	assert.Equal(t, 2, summary.TotalWifeyFull)
	assert.Equal(t, 1, summary.TotalWifeyMini)
	assert.InDelta(t, 2500.0, summary.TotalRevenue, 1e-9)
	assert.InDelta(t, 750.0, summary.TotalCost, 1e-9)

	// profit identity: total profit equals the sum of per-subscription profits
	var wantProfit float64
	for _, s := range subs {
		wantProfit += ComputeBreakdown(s).Profit
	}
	assert.InDelta(t, wantProfit, summary.TotalProfit, 1e-9)

	// first-seen package order
	require.Len(t, stats, 2)
	assert.Equal(t, uint(1), stats[0].PackageID)
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, uint(2), stats[1].PackageID)

	// per-package profit identity against the running totals
	for _, ps := range stats {
		assert.InDelta(t, ps.Revenue-ps.Cost-ps.ShippingCost-ps.PaymobFees, ps.Profit, 1e-9)
	}
}

func TestAggregateNilPackageCountsAsFull(t *testing.T) {
	summary, stats := Aggregate([]models.Subscription{sub(100, 0, nil, false)})

	assert.Equal(t, 1, summary.TotalWifeyFull)
	assert.Zero(t, summary.TotalWifeyMini)
	require.Len(t, stats, 1)
	assert.Equal(t, "", stats[0].PackageName)
}

func TestMonthlySeries(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	full := pkg(1, "Wifey Full", "300")

	inMarch := sub(1000, 100, full, false)
	inMarch.CreatedAt = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	inApril2025 := sub(500, 0, full, false)
	inApril2025.CreatedAt = time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)
	tooOld := sub(700, 0, full, false)
	tooOld.CreatedAt = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	series := MonthlySeries([]models.Subscription{inMarch, inApril2025, tooOld}, now)

	require.Len(t, series, 12)
	assert.Equal(t, "2025-04", series[0].Month)
	assert.Equal(t, "2026-03", series[11].Month)

	assert.Equal(t, 1, series[0].Count)
	assert.InDelta(t, 500.0, series[0].Revenue, 1e-9)

	last := series[11]
	assert.Equal(t, 1, last.Count)
	// monthly cost: package cost + shipping surcharge + fee with VAT
	wantCost := 300 + 100*1.14 + 1000*0.0275*1.14
	assert.InDelta(t, wantCost, last.Cost, 1e-9)
	assert.InDelta(t, 1000-wantCost, last.Profit, 1e-9)

	// March 2025 falls outside the trailing window
	var total int
	for _, p := range series {
		total += p.Count
	}
	assert.Equal(t, 2, total)
}

func TestMonthlySeriesNoGiftWaiver(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	gift := sub(1000, 0, pkg(1, "Wifey Full", "0"), true)
	gift.CreatedAt = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	series := MonthlySeries([]models.Subscription{gift}, now)

	// the trend formula includes the processor fee even for gifts
	assert.InDelta(t, 1000*0.0275*1.14, series[11].Cost, 1e-9)
}

func TestResolveWindowMonth(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	p, err := ResolveWindow("2024-02", "", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-02", p.Label)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *p.Start)
	// leap-year February runs through the 29th
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999000000, time.UTC), *p.End)
}

func TestResolveWindowYear(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	p, err := ResolveWindow("", "2025", now)
	require.NoError(t, err)
	assert.Equal(t, "2025", p.Label)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *p.Start)
	assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 59, 999000000, time.UTC), *p.End)
}

func TestResolveWindowAllTime(t *testing.T) {
	p, err := ResolveWindow("", "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "all", p.Label)
	assert.Nil(t, p.Start)
	assert.Nil(t, p.End)
}

func TestResolveWindowMutuallyExclusive(t *testing.T) {
	_, err := ResolveWindow("2026-01", "2026", time.Now())
	assert.Error(t, err)
}

func TestResolveWindowInvalid(t *testing.T) {
	_, err := ResolveWindow("2026-13", "", time.Now())
	assert.Error(t, err)

	_, err = ResolveWindow("", "20x6", time.Now())
	assert.Error(t, err)
}

func TestTrailingWindow(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	p := TrailingWindow(now)

	assert.Equal(t, "trailing-12-months", p.Label)
	assert.Equal(t, now.AddDate(0, -12, 0), *p.Start)
	assert.Equal(t, now, *p.End)
}

// fakeFetch returns canned row sets keyed by the requested window: the
// strict period, the trailing 12 months, or no filter at all. It also
// records how the store was queried.
func fakeFetch(t *testing.T, now time.Time, strict, trailing, unfiltered []models.Subscription) (FetchFunc, *[][2]*time.Time) {
	t.Helper()
	trailingStart := now.AddDate(0, -12, 0)
	calls := &[][2]*time.Time{}

	return func(start, end *time.Time, packageID *uint) ([]models.Subscription, error) {
		*calls = append(*calls, [2]*time.Time{start, end})
		switch {
		case start == nil:
			return unfiltered, nil
		case start.Equal(trailingStart):
			return trailing, nil
		default:
			return strict, nil
		}
	}, calls
}

func TestFindWithFallbackKeepsStrictWindowWithRows(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	rows := []models.Subscription{sub(100, 0, pkg(1, "Wifey Full", "50"), false)}
	fetch, calls := fakeFetch(t, now, rows, nil, nil)

	period, err := ResolveWindow("2026-07", "", now)
	require.NoError(t, err)

	subs, got, err := FindWithFallback(fetch, period, now, nil)
	require.NoError(t, err)

	assert.Len(t, subs, 1)
	assert.Equal(t, "2026-07", got.Label)
	assert.Len(t, *calls, 1)
}

func TestFindWithFallbackEmptyMonthFallsBackToTrailing(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	trailingRows := []models.Subscription{
		sub(100, 0, pkg(1, "Wifey Full", "50"), false),
		sub(200, 0, pkg(1, "Wifey Full", "50"), false),
	}
	fetch, calls := fakeFetch(t, now, nil, trailingRows, nil)

	period, err := ResolveWindow("2020-01", "", now)
	require.NoError(t, err)

	subs, got, err := FindWithFallback(fetch, period, now, nil)
	require.NoError(t, err)

	assert.Equal(t, "trailing-12-months", got.Label)
	assert.Len(t, *calls, 2)

	summary, _ := Aggregate(subs)
	assert.Equal(t, 2, summary.TotalSubscriptions)
}

func TestFindWithFallbackFallsThroughToAllTime(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	allRows := []models.Subscription{sub(100, 0, pkg(1, "Wifey Mini", "20"), false)}
	fetch, calls := fakeFetch(t, now, nil, nil, allRows)

	period, err := ResolveWindow("", "2019", now)
	require.NoError(t, err)

	subs, got, err := FindWithFallback(fetch, period, now, nil)
	require.NoError(t, err)

	assert.Len(t, subs, 1)
	assert.Equal(t, "all", got.Label)
	assert.Nil(t, got.Start)
	assert.Len(t, *calls, 3)
}

func TestFindWithFallbackAllTimeNeverFallsBack(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	fetch, calls := fakeFetch(t, now, nil, nil, nil)

	subs, got, err := FindWithFallback(fetch, Period{Label: "all"}, now, nil)
	require.NoError(t, err)

	assert.Empty(t, subs)
	assert.Equal(t, "all", got.Label)
	assert.Len(t, *calls, 1)
}

func TestFindWithFallbackPropagatesFetchError(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	boom := func(start, end *time.Time, packageID *uint) ([]models.Subscription, error) {
		return nil, assert.AnError
	}

	_, _, err := FindWithFallback(boom, Period{Label: "all"}, now, nil)
	assert.ErrorIs(t, err, assert.AnError)
}
