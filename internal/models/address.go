package models

import "time"

type Address struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ClientID uint `gorm:"not null;index" json:"client_id"`

	Street       string `gorm:"size:255;not null" json:"street"`
	Neighborhood string `gorm:"size:100;not null" json:"neighborhood"`
	Reference    string `gorm:"size:255" json:"reference"`
	Number       string `gorm:"size:20;not null" json:"number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
