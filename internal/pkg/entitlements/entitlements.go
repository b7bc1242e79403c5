package entitlements

// Tier is a customer's loyalty level, derived from lifetime earned points.
type Tier string

const (
	TierBronze Tier = "bronze"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)

const (
	silverThreshold = 1000
	goldThreshold   = 5000
)

// TierFor returns the tier for a lifetime earned total. Spending points does
// not demote a customer; the tier follows what was ever earned.
func TierFor(totalEarned int) Tier {
	switch {
	case totalEarned >= goldThreshold:
		return TierGold
	case totalEarned >= silverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}

// Perks returns which perks a tier unlocks: free shipping, early access to
// drops, and a birthday bonus.
func Perks(t Tier) (freeShipping, earlyAccess, birthdayBonus bool) {
	switch t {
	case TierGold:
		return true, true, true
	case TierSilver:
		return false, true, true
	default:
		return false, false, true
	}
}
