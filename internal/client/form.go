package client

import (
	"errors"
	"time"

	"github.com/Eursukkul/event-manager/internal/dto"
	"github.com/Eursukkul/event-manager/internal/listing"
	"github.com/Eursukkul/event-manager/internal/models"
)

var ErrIncompleteForm = errors.New("please fill in all fields")

// EventForm is what the create and edit screens submit. Every field is sent
// on every request.
type EventForm struct {
	Name        string
	DateTime    time.Time
	Organizer   string
	Theme       string
	Location    string
	Description string
	Status      string
}

// NewEventForm returns an empty create form starting as Upcoming.
func NewEventForm(now time.Time) EventForm {
	return EventForm{DateTime: now, Status: listing.LabelUpcoming}
}

// FormFromEvent pre-fills an edit form with the stored values.
func FormFromEvent(e *models.Event) EventForm {
	return EventForm{
		Name:        e.Name,
		DateTime:    e.DateTime,
		Organizer:   e.Organizer,
		Theme:       e.Theme,
		Location:    e.Location,
		Description: e.Description,
		Status:      e.Status,
	}
}

// Validate requires name, date/time, organizer, theme, location and
// description. The service itself treats theme and description as optional.
func (f EventForm) Validate() error {
	if f.Name == "" || f.DateTime.IsZero() || f.Organizer == "" ||
		f.Theme == "" || f.Location == "" || f.Description == "" {
		return ErrIncompleteForm
	}
	return nil
}

func (f EventForm) request() dto.EventRequest {
	return dto.EventRequest{
		Name:        f.Name,
		DateTime:    f.DateTime,
		Location:    f.Location,
		Organizer:   f.Organizer,
		Theme:       f.Theme,
		Description: f.Description,
		Status:      f.Status,
	}
}
