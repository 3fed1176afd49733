package dto

import (
	"time"

	"github.com/Eursukkul/event-manager/internal/models"
)

// EventRequest is the body of both create and edit. Edit is a full
// overwrite, so omitted optional fields are stored empty.
type EventRequest struct {
	Name        string    `json:"name" validate:"required"`
	DateTime    time.Time `json:"dateTime" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Organizer   string    `json:"organizer" validate:"required"`
	Theme       string    `json:"theme"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
}

func (r *EventRequest) ToModel() *models.Event {
	return &models.Event{
		Name:        r.Name,
		DateTime:    r.DateTime,
		Location:    r.Location,
		Organizer:   r.Organizer,
		Theme:       r.Theme,
		Description: r.Description,
		Status:      r.Status,
	}
}
