package entitlements

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	assert.Equal(t, TierBronze, TierFor(0))
	assert.Equal(t, TierBronze, TierFor(999))
	assert.Equal(t, TierSilver, TierFor(1000))
	assert.Equal(t, TierSilver, TierFor(4999))
	assert.Equal(t, TierGold, TierFor(5000))
	assert.Equal(t, TierGold, TierFor(100000))
}

func TestPerks(t *testing.T) {
	freeShipping, earlyAccess, birthdayBonus := Perks(TierBronze)
	assert.False(t, freeShipping)
	assert.False(t, earlyAccess)
	assert.True(t, birthdayBonus)

	freeShipping, earlyAccess, birthdayBonus = Perks(TierSilver)
	assert.False(t, freeShipping)
	assert.True(t, earlyAccess)
	assert.True(t, birthdayBonus)

	freeShipping, earlyAccess, birthdayBonus = Perks(TierGold)
	assert.True(t, freeShipping)
	assert.True(t, earlyAccess)
	assert.True(t, birthdayBonus)
}
