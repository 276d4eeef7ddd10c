package catalog

import (
	"strings"
	"testing"

	"homezy/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeaturedSortedAndLimited(t *testing.T) {
	svc := NewService()

	top := svc.Featured(i18n.English, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "Skyline Luxury Penthouse", top[0].Title)
	assert.Equal(t, 4.9, top[1].Rating)
	assert.Equal(t, "Eco Villa Retreat", top[1].Title)
	assert.Equal(t, "3,500,000 ₫", top[0].FormattedPrice)

	assert.Len(t, svc.Featured(i18n.English, 0), 6)
}

func TestFeaturedDoesNotMutateSource(t *testing.T) {
	svc := NewService()
	_ = svc.Featured(i18n.Vietnamese, 1)
	assert.Empty(t, svc.homestays[0].FormattedPrice)
	assert.Equal(t, 1, svc.homestays[0].ID)
}

func TestFormatPriceVietnamese(t *testing.T) {
	got := FormatPrice(i18n.Vietnamese, 900000)
	assert.True(t, strings.HasSuffix(got, " ₫"))
	assert.Contains(t, got, "900")
}

func TestDestinations(t *testing.T) {
	d := NewService().Destinations()
	require.Len(t, d, 4)
	assert.Equal(t, "large", d[0].Size)
}
