package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitsValue_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  int64
	}{
		{"empty", "", 0},
		{"no-digits", "call us", 0},
		{"rupees-lakh-format", "₹24,00,000", 2400000},
		{"rupees-small", "₹15,30,000", 1530000},
		{"area", "1200 sq ft", 1200},
		{"devanagari-digits-ignored", "₹२४", 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, DigitsValue(tc.in))
		})
	}
}

func TestInPriceBucket_Boundaries(t *testing.T) {
	tests := []struct {
		bucket string
		price  int64
		want   bool
	}{
		{PriceUnder20, 1_999_999, true},
		{PriceUnder20, 2_000_000, false},
		{Price20To30, 1_530_000, false},
		{Price20To30, 2_000_000, true},
		{Price20To30, 2_400_000, true},
		{Price20To30, 3_000_000, false},
		{Price30To50, 3_000_000, true},
		{Price30To50, 5_000_000, false},
		{PriceAbove50, 5_000_000, true},
		{PriceAbove50, 4_999_999, false},
		{FilterAll, 1, true},
		{"", 1, true},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, InPriceBucket(tc.bucket, tc.price), "%s/%d", tc.bucket, tc.price)
	}
}

func TestInSizeBucket_Boundaries(t *testing.T) {
	assert.True(t, InSizeBucket(SizeUnder1000, 999))
	assert.False(t, InSizeBucket(SizeUnder1000, 1000))
	assert.True(t, InSizeBucket(Size1000To1500, 1000))
	assert.True(t, InSizeBucket(Size1000To1500, 1200))
	assert.False(t, InSizeBucket(Size1000To1500, 1500))
	assert.True(t, InSizeBucket(SizeAbove1500, 1500))
	assert.False(t, InSizeBucket(SizeAbove1500, 1499))
}

func TestPlotFilter_Match_20to30(t *testing.T) {
	f := PlotFilter{Price: Price20To30}

	cheap := PlotFacts{Title: "Corner plot", PriceValue: DigitsValue("₹15,30,000")}
	mid := PlotFacts{Title: "Green Valley Plot A1", PriceValue: DigitsValue("₹24,00,000")}

	assert.False(t, f.Match(cheap))
	assert.True(t, f.Match(mid))
}

func TestPlotFilter_Match_AllDimensions(t *testing.T) {
	p := PlotFacts{
		Title:       "Green Valley Plot A1",
		Location:    "Phulwari Sharif, Patna",
		Description: "Premium residential plot",
		Status:      PlotAvailable,
		PriceValue:  2_400_000,
		AreaSqFt:    1200,
	}

	assert.True(t, PlotFilter{}.Match(p))
	assert.True(t, PlotFilter{Search: "patna"}.Match(p))
	assert.True(t, PlotFilter{Search: "PREMIUM"}.Match(p))
	assert.False(t, PlotFilter{Search: "bailey road"}.Match(p))
	assert.True(t, PlotFilter{Size: Size1000To1500, Status: PlotAvailable}.Match(p))
	assert.False(t, PlotFilter{Status: PlotSold}.Match(p))
	assert.True(t, PlotFilter{Status: FilterAll, Price: FilterAll, Size: FilterAll}.Match(p))
}

func TestPlotFilter_Validate(t *testing.T) {
	assert.NoError(t, PlotFilter{}.Validate())
	assert.NoError(t, PlotFilter{Price: Price30To50, Size: SizeAbove1500, Status: PlotBooked}.Validate())
	assert.Error(t, PlotFilter{Price: "cheap"}.Validate())
	assert.Error(t, PlotFilter{Size: "huge"}.Validate())
	assert.Error(t, PlotFilter{Status: "reserved"}.Validate())
}

func TestPlotFilter_IsZero(t *testing.T) {
	assert.True(t, PlotFilter{}.IsZero())
	assert.True(t, PlotFilter{Price: FilterAll, Search: "  "}.IsZero())
	assert.False(t, PlotFilter{Status: PlotSold}.IsZero())
}
