// Package listing holds the client-side presentation logic for events: status
// badges, date and time derivation, stable sorting and pagination.
package listing

// Status is the display classification of an event's raw status string.
type Status int

const (
	// StatusOther covers every raw value that is not one of the known labels,
	// the empty string included. It is displayed as a past event.
	StatusOther Status = iota
	StatusUpcoming
	StatusOngoing
	StatusCancelled
)

// Raw status labels as stored by the service.
const (
	LabelUpcoming  = "Upcoming"
	LabelOngoing   = "Ongoing"
	LabelCancelled = "Cancelled"
	LabelPast      = "Past"
)

// ParseStatus classifies a raw status. Matching is exact and case-sensitive.
func ParseStatus(raw string) Status {
	switch raw {
	case LabelUpcoming:
		return StatusUpcoming
	case LabelOngoing:
		return StatusOngoing
	case LabelCancelled:
		return StatusCancelled
	default:
		return StatusOther
	}
}

type Tone int

const (
	ToneSuccess Tone = iota
	ToneInfo
	ToneWarning
	ToneError
)

func (t Tone) String() string {
	switch t {
	case ToneInfo:
		return "info"
	case ToneWarning:
		return "warning"
	case ToneError:
		return "error"
	default:
		return "success"
	}
}

type Badge struct {
	Label string
	Tone  Tone
}

func (s Status) Badge() Badge {
	switch s {
	case StatusUpcoming:
		return Badge{Label: "Upcoming", Tone: ToneInfo}
	case StatusOngoing:
		return Badge{Label: "On-going", Tone: ToneWarning}
	case StatusCancelled:
		return Badge{Label: "Cancelled", Tone: ToneError}
	default:
		return Badge{Label: "Past Event", Tone: ToneSuccess}
	}
}

// BadgeFor is shorthand for ParseStatus(raw).Badge().
func BadgeFor(raw string) Badge {
	return ParseStatus(raw).Badge()
}
