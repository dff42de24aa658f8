package models

import "time"

type Client struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	PhoneNumber string `gorm:"size:20;uniqueIndex;not null" json:"phone_number"`

	Addresses []Address `json:"addresses,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
