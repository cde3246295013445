package models

import "time"

// Product represents a record in the catalog
type Product struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null;index"`
	Description  string    `json:"description" gorm:"type:text"`
	Price        float64   `json:"price" gorm:"not null"`
	Stock        int       `json:"stock" gorm:"not null;default:0"`
	Availability bool      `json:"availability" gorm:"not null;default:false"` // listing gate
	Status       bool      `json:"status" gorm:"not null;default:true"`        // soft-delete flag
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
