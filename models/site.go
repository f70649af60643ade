package models

import "time"

// SingletonID is the fixed primary key of ContactInfo and Stats. A second
// insert of the default row collides on it, which is what makes seeding
// idempotent.
const SingletonID uint = 1

const DefaultWorkingHours = "Mon - Sat: 9:00 AM - 7:00 PM"

type ContactInfo struct {
	ID           uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Phone        string    `gorm:"size:40;not null" json:"phone"`
	WhatsApp     string    `gorm:"column:whatsapp;size:40;not null" json:"whatsapp"`
	Email        string    `gorm:"size:180;not null" json:"email"`
	Address      string    `gorm:"size:500;not null" json:"address"`
	WorkingHours string    `gorm:"size:120" json:"workingHours"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DefaultContactInfo is what /contact serves before an admin edits it.
func DefaultContactInfo() ContactInfo {
	return ContactInfo{
		ID:           SingletonID,
		Phone:        "+91 9835405160",
		WhatsApp:     "919835405160",
		Email:        "contact@dreamhomedeveloper.com",
		Address:      "Dream Home'z Developer, Phulwari Sharif, Patna, Bihar - 801505",
		WorkingHours: DefaultWorkingHours,
	}
}

type ContactInfoRequest struct {
	Phone        *string `json:"phone,omitempty" binding:"omitempty,min=1"`
	WhatsApp     *string `json:"whatsapp,omitempty" binding:"omitempty,min=1"`
	Email        *string `json:"email,omitempty" binding:"omitempty,email"`
	Address      *string `json:"address,omitempty" binding:"omitempty,min=1"`
	WorkingHours *string `json:"workingHours,omitempty"`
}

// Stats are the headline numbers on the home page.
type Stats struct {
	ID              uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	YearsExperience int       `gorm:"not null" json:"yearsExperience"`
	HappyFamilies   int       `gorm:"not null" json:"happyFamilies"`
	ActivePlots     int       `gorm:"not null" json:"activePlots"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func DefaultStats() Stats {
	return Stats{ID: SingletonID, YearsExperience: 15, HappyFamilies: 500, ActivePlots: 50}
}

type StatsRequest struct {
	YearsExperience *int `json:"yearsExperience,omitempty" binding:"omitempty,min=0"`
	HappyFamilies   *int `json:"happyFamilies,omitempty" binding:"omitempty,min=0"`
	ActivePlots     *int `json:"activePlots,omitempty" binding:"omitempty,min=0"`
}
