package models

import (
	"encoding/json"
	"time"

	"github.com/Modassir22/dream-home-hub/core"

	"gorm.io/datatypes"
)

// Plot is a parcel of land listed for sale. Price and Area are display strings
// ("₹24,00,000", "1200 sq ft"); PriceValue and AreaSqFt carry the same amounts
// as numbers for filtering.
type Plot struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"size:200;not null" json:"title"`
	Location     string         `gorm:"size:200;not null" json:"location"`
	Area         string         `gorm:"size:60;not null" json:"area"`
	Price        string         `gorm:"size:60;not null" json:"price"`
	PricePerSqFt string         `gorm:"size:60;not null" json:"pricePerSqFt"`
	PriceValue   int64          `gorm:"not null;default:0;index" json:"priceValue"`
	AreaSqFt     int            `gorm:"not null;default:0;index" json:"areaSqFt"`
	Status       string         `gorm:"size:16;not null;default:available;index" json:"status"`
	Image        string         `gorm:"size:500;not null" json:"image"`
	Images       datatypes.JSON `json:"images"`    // ["url", ...]
	Description  string         `gorm:"type:text;not null" json:"description"`
	Amenities    datatypes.JSON `json:"amenities"` // ["Wide Roads", ...]
	IsFeatured   bool           `gorm:"not null;default:false;index" json:"isFeatured"`
	CreatedAt    time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// Facts projects the fields the catalogue filter needs.
func (p *Plot) Facts() core.PlotFacts {
	return core.PlotFacts{
		Title:       p.Title,
		Location:    p.Location,
		Description: p.Description,
		Status:      p.Status,
		PriceValue:  p.PriceValue,
		AreaSqFt:    p.AreaSqFt,
	}
}

// StringList encodes a string slice for a JSON column; nil becomes [].
func StringList(ss []string) datatypes.JSON {
	if ss == nil {
		ss = []string{}
	}
	b, _ := json.Marshal(ss) // []string always marshals
	return datatypes.JSON(b)
}

// PlotRequest is the create payload. Numeric fields are optional and are
// derived from Price/Area when missing.
type PlotRequest struct {
	Title        string   `json:"title" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	Area         string   `json:"area" binding:"required"`
	Price        string   `json:"price" binding:"required"`
	PricePerSqFt string   `json:"pricePerSqFt" binding:"required"`
	PriceValue   *int64   `json:"priceValue" binding:"omitempty,min=0"`
	AreaSqFt     *int     `json:"areaSqFt" binding:"omitempty,min=0"`
	Status       string   `json:"status" binding:"omitempty,oneof=available sold booked"`
	Image        string   `json:"image" binding:"required"`
	Images       []string `json:"images"`
	Description  string   `json:"description" binding:"required"`
	Amenities    []string `json:"amenities"`
	IsFeatured   bool     `json:"isFeatured"`
}

// UpdatePlotRequest merges into an existing plot; nil means "no change".
type UpdatePlotRequest struct {
	Title        *string   `json:"title,omitempty" binding:"omitempty,min=1"`
	Location     *string   `json:"location,omitempty" binding:"omitempty,min=1"`
	Area         *string   `json:"area,omitempty" binding:"omitempty,min=1"`
	Price        *string   `json:"price,omitempty" binding:"omitempty,min=1"`
	PricePerSqFt *string   `json:"pricePerSqFt,omitempty" binding:"omitempty,min=1"`
	PriceValue   *int64    `json:"priceValue,omitempty" binding:"omitempty,min=0"`
	AreaSqFt     *int      `json:"areaSqFt,omitempty" binding:"omitempty,min=0"`
	Status       *string   `json:"status,omitempty" binding:"omitempty,oneof=available sold booked"`
	Image        *string   `json:"image,omitempty" binding:"omitempty,min=1"`
	Images       *[]string `json:"images,omitempty"`
	Description  *string   `json:"description,omitempty" binding:"omitempty,min=1"`
	Amenities    *[]string `json:"amenities,omitempty"`
	IsFeatured   *bool     `json:"isFeatured,omitempty"`
}
