package models

import "time"

// Wishlist is one user's saved plot. The composite unique index allows at
// most one entry per (user, plot).
type Wishlist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_plot" json:"userId"`
	PlotID    uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_plot;index" json:"plotId"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Plot      *Plot     `gorm:"foreignKey:PlotID;constraint:OnDelete:CASCADE" json:"plot,omitempty"`
	Notes     string    `gorm:"size:2000;not null" json:"notes"`
	Status    string    `gorm:"size:16;not null;default:interested;index" json:"status"`
	AddedAt   time.Time `gorm:"not null;index" json:"addedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AddWishlistRequest struct {
	PlotID uint   `json:"plotId" binding:"required"`
	Notes  string `json:"notes" binding:"max=2000"`
}

// UpdateWishlistRequest changes any subset of status and notes.
type UpdateWishlistRequest struct {
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=interested contacted visiting negotiating purchased"`
	Notes  *string `json:"notes,omitempty" binding:"omitempty,max=2000"`
}

// WishlistCheck drives the heart toggle on plot cards.
type WishlistCheck struct {
	InWishlist bool  `json:"inWishlist"`
	WishlistID *uint `json:"wishlistId"`
}

type WishlistStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type TopPlot struct {
	PlotID uint  `json:"plotId"`
	Count  int64 `json:"count"`
	Plot   *Plot `json:"plot"`
}

// WishlistStats is the admin analytics view.
type WishlistStats struct {
	Total    int64                 `json:"total"`
	ByStatus []WishlistStatusCount `json:"byStatus"`
	TopPlots []TopPlot             `json:"topPlots"`
}

type UploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}
