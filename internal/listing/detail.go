package listing

import (
	"time"

	"github.com/Eursukkul/event-manager/internal/models"
)

const (
	NoThemeText       = "This event has no theme"
	NoDescriptionText = "No event description"
)

// Detail is the read-only view of a single event, shown by the view and
// delete-confirmation screens.
type Detail struct {
	ID          string
	Name        string
	Date        string
	Time        string
	Organizer   string
	Theme       string
	Location    string
	Description string
	Badge       Badge
}

func NewDetail(e *models.Event, loc *time.Location) Detail {
	d := Detail{
		ID:          e.ID,
		Name:        e.Name,
		Organizer:   e.Organizer,
		Theme:       e.Theme,
		Location:    e.Location,
		Description: e.Description,
		Badge:       BadgeFor(e.Status),
	}
	if !e.DateTime.IsZero() {
		d.Date = FormatDate(e.DateTime, loc)
		d.Time = FormatTime(e.DateTime, loc)
	}
	if d.Theme == "" {
		d.Theme = NoThemeText
	}
	if d.Description == "" {
		d.Description = NoDescriptionText
	}
	return d
}
