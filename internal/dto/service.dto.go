package dto

import "github.com/BruksfildServices01/service-scheduler/internal/models"

type ServicePublic struct {
	ID          uint    `json:"id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type ServiceList struct {
	Services []ServicePublic `json:"services"`
}

func NewServicePublic(s models.Service) ServicePublic {
	return ServicePublic{
		ID:          s.ID,
		Type:        s.Type,
		Description: s.Description,
		Price:       s.Price,
	}
}

func NewServiceList(services []models.Service) ServiceList {
	out := make([]ServicePublic, 0, len(services))
	for _, s := range services {
		out = append(out, NewServicePublic(s))
	}
	return ServiceList{Services: out}
}
