package models

import "time"

type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Type        string  `gorm:"size:100;not null" json:"type"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `gorm:"type:numeric(10,2)" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
