package dto

import "github.com/BruksfildServices01/service-scheduler/internal/models"

const dateLayout = "2006-01-02"

// Reduced views of the related records embedded in a schedule.
type ScheduleClientView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ScheduleServiceView struct {
	Type string `json:"type"`
}

type SchedulePublic struct {
	ID          uint                `json:"id"`
	Date        string              `json:"date"`
	Shift       string              `json:"shift"`
	Description string              `json:"description"`
	Client      ScheduleClientView  `json:"client"`
	Service     ScheduleServiceView `json:"service"`
}

type ScheduleList struct {
	Schedules []SchedulePublic `json:"schedules"`
}

func NewSchedulePublic(s models.Schedule) SchedulePublic {
	return SchedulePublic{
		ID:          s.ID,
		Date:        s.Date.Format(dateLayout),
		Shift:       s.Shift,
		Description: s.Description,
		Client: ScheduleClientView{
			ID:   s.Client.ID,
			Name: s.Client.Name,
		},
		Service: ScheduleServiceView{
			Type: s.Service.Type,
		},
	}
}

func NewScheduleList(schedules []models.Schedule) ScheduleList {
	out := make([]SchedulePublic, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, NewSchedulePublic(s))
	}
	return ScheduleList{Schedules: out}
}
