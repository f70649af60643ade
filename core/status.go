package core

// Plot availability.
const (
	PlotAvailable = "available"
	PlotSold      = "sold"
	PlotBooked    = "booked"
)

// Wishlist interest stages. Any stage may be set from any other.
const (
	WishlistInterested  = "interested"
	WishlistContacted   = "contacted"
	WishlistVisiting    = "visiting"
	WishlistNegotiating = "negotiating"
	WishlistPurchased   = "purchased"
)

// WishlistStatuses lists the stages in pipeline order.
var WishlistStatuses = []string{
	WishlistInterested,
	WishlistContacted,
	WishlistVisiting,
	WishlistNegotiating,
	WishlistPurchased,
}

func IsPlotStatus(s string) bool {
	switch s {
	case PlotAvailable, PlotSold, PlotBooked:
		return true
	}
	return false
}

func IsWishlistStatus(s string) bool {
	for _, v := range WishlistStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ClampRating keeps a testimonial rating inside 1..5. Zero means "not given"
// and becomes the default of 5.
func ClampRating(r int) int {
	switch {
	case r == 0:
		return 5
	case r < 1:
		return 1
	case r > 5:
		return 5
	}
	return r
}
