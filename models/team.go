package models

import "time"

// TeamMember is shown on the About page ordered by Order.
// "order" is reserved in SQL, so the column is sort_order.
type TeamMember struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Position  string    `gorm:"size:120;not null" json:"position"`
	Image     string    `gorm:"size:500" json:"image"`
	Bio       string    `gorm:"type:text" json:"bio"`
	Email     string    `gorm:"size:180" json:"email"`
	Phone     string    `gorm:"size:40" json:"phone"`
	Order     int       `gorm:"column:sort_order;not null;default:0;index" json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TeamMemberRequest struct {
	Name     string `json:"name" binding:"required"`
	Position string `json:"position" binding:"required"`
	Image    string `json:"image"`
	Bio      string `json:"bio"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Order    int    `json:"order"`
}

type UpdateTeamMemberRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Position *string `json:"position,omitempty" binding:"omitempty,min=1"`
	Image    *string `json:"image,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone    *string `json:"phone,omitempty"`
	Order    *int    `json:"order,omitempty"`
}
