package listing

import (
	"time"

	"github.com/Eursukkul/event-manager/internal/models"
)

const (
	DateLayout = "02-01-2006"
	TimeLayout = "15:04"
)

// Row is one table line. Date and Time are derived from the event's
// timestamp when the row is built and are never stored.
type Row struct {
	Index    int // 1-based position in fetch order
	ID       string
	Name     string
	Date     string
	Time     string
	Location string
	Status   string
}

func FormatDate(t time.Time, loc *time.Location) string {
	return inLocation(t, loc).Format(DateLayout)
}

func FormatTime(t time.Time, loc *time.Location) string {
	return inLocation(t, loc).Format(TimeLayout)
}

// NewRows builds rows in fetch order. A nil loc renders times in time.Local.
func NewRows(events []models.Event, loc *time.Location) []Row {
	rows := make([]Row, len(events))
	for i, e := range events {
		rows[i] = Row{
			Index:    i + 1,
			ID:       e.ID,
			Name:     e.Name,
			Date:     FormatDate(e.DateTime, loc),
			Time:     FormatTime(e.DateTime, loc),
			Location: e.Location,
			Status:   e.Status,
		}
	}
	return rows
}

func (r Row) Badge() Badge {
	return BadgeFor(r.Status)
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc)
}
