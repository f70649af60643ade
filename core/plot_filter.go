package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Price buckets, in rupees (1 lakh = 1,00,000).
const (
	PriceUnder20 = "under20"
	Price20To30  = "20to30"
	Price30To50  = "30to50"
	PriceAbove50 = "above50"

	lakh = 100_000
)

// Area buckets, in square feet.
const (
	SizeUnder1000  = "under1000"
	Size1000To1500 = "1000to1500"
	SizeAbove1500  = "above1500"
)

// FilterAll disables a single filter dimension.
const FilterAll = "all"

// PlotFacts is the subset of a plot the filter looks at.
type PlotFacts struct {
	Title       string
	Location    string
	Description string
	Status      string
	PriceValue  int64 // rupees
	AreaSqFt    int
}

// PlotFilter holds the catalogue filter selections. Empty or "all" means no
// restriction on that dimension.
type PlotFilter struct {
	Search string `form:"search"`
	Price  string `form:"price"`
	Size   string `form:"size"`
	Status string `form:"status"`
}

// Validate rejects bucket names the catalogue does not offer.
func (f PlotFilter) Validate() error {
	switch f.Price {
	case "", FilterAll, PriceUnder20, Price20To30, Price30To50, PriceAbove50:
	default:
		return fmt.Errorf("unknown price range %q", f.Price)
	}
	switch f.Size {
	case "", FilterAll, SizeUnder1000, Size1000To1500, SizeAbove1500:
	default:
		return fmt.Errorf("unknown size range %q", f.Size)
	}
	if f.Status != "" && f.Status != FilterAll && !IsPlotStatus(f.Status) {
		return fmt.Errorf("unknown status %q", f.Status)
	}
	return nil
}

// IsZero reports whether the filter lets every plot through.
func (f PlotFilter) IsZero() bool {
	return isAll(f.Search) && isAll(f.Price) && isAll(f.Size) && isAll(f.Status)
}

// Match applies every active dimension; a plot must satisfy all of them.
func (f PlotFilter) Match(p PlotFacts) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Location), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	if !InPriceBucket(f.Price, p.PriceValue) {
		return false
	}
	if !InSizeBucket(f.Size, p.AreaSqFt) {
		return false
	}
	if !isAll(f.Status) && p.Status != f.Status {
		return false
	}
	return true
}

// InPriceBucket bounds are lower-inclusive, upper-exclusive.
func InPriceBucket(bucket string, price int64) bool {
	switch bucket {
	case PriceUnder20:
		return price < 20*lakh
	case Price20To30:
		return price >= 20*lakh && price < 30*lakh
	case Price30To50:
		return price >= 30*lakh && price < 50*lakh
	case PriceAbove50:
		return price >= 50*lakh
	}
	return true
}

func InSizeBucket(bucket string, area int) bool {
	switch bucket {
	case SizeUnder1000:
		return area < 1000
	case Size1000To1500:
		return area >= 1000 && area < 1500
	case SizeAbove1500:
		return area >= 1500
	}
	return true
}

// DigitsValue reads the ASCII digits of a display string such as "₹24,00,000"
// or "1200 sq ft" as one integer. Only used to back-fill the numeric plot
// fields when an admin leaves them out; returns 0 when there are no digits.
func DigitsValue(s string) int64 {
	var b strings.Builder
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func isAll(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == FilterAll
}
