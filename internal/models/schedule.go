package models

import "time"

type Schedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE;" json:"client"`

	ServiceID uint    `gorm:"not null;index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE;" json:"service"`

	Date        time.Time `gorm:"type:date;not null" json:"date"`
	Shift       string    `gorm:"size:20;not null" json:"shift"`
	Description string    `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
