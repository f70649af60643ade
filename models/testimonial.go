package models

import "time"

// Testimonial is a customer review. Rating is kept inside 1..5.
type Testimonial struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Location  string    `gorm:"size:200;not null" json:"location"`
	Image     string    `gorm:"size:500" json:"image"`
	Review    string    `gorm:"type:text;not null" json:"review"`
	Rating    int       `gorm:"not null;default:5" json:"rating"`
	Order     int       `gorm:"column:sort_order;not null;default:0;index" json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TestimonialRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
	Image    string `json:"image"`
	Review   string `json:"review" binding:"required"`
	Rating   int    `json:"rating"`
	Order    int    `json:"order"`
}

type UpdateTestimonialRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Location *string `json:"location,omitempty" binding:"omitempty,min=1"`
	Image    *string `json:"image,omitempty"`
	Review   *string `json:"review,omitempty" binding:"omitempty,min=1"`
	Rating   *int    `json:"rating,omitempty"`
	Order    *int    `json:"order,omitempty"`
}
