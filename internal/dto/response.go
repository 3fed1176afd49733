package dto

import (
	"time"

	"github.com/Eursukkul/event-manager/internal/models"
)

type EventResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DateTime    time.Time `json:"dateTime"`
	Location    string    `json:"location"`
	Organizer   string    `json:"organizer"`
	Theme       string    `json:"theme"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MutationResponse is returned by create, edit and delete.
type MutationResponse struct {
	Status  bool           `json:"status"`
	Message string         `json:"message"`
	Event   *EventResponse `json:"event,omitempty"`
}

type ErrorResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func ToEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		DateTime:    e.DateTime,
		Location:    e.Location,
		Organizer:   e.Organizer,
		Theme:       e.Theme,
		Description: e.Description,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToEventResponses(events []models.Event) []EventResponse {
	resp := make([]EventResponse, len(events))
	for i := range events {
		resp[i] = ToEventResponse(&events[i])
	}
	return resp
}

func (r EventResponse) ToModel() models.Event {
	return models.Event{
		ID:          r.ID,
		Name:        r.Name,
		DateTime:    r.DateTime,
		Location:    r.Location,
		Organizer:   r.Organizer,
		Theme:       r.Theme,
		Description: r.Description,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
