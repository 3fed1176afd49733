package repository

import (
	"context"
	"strings"
	"time"

	"github.com/Eursukkul/event-manager/internal/models"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id string) (*models.Event, error)
	FindAll(ctx context.Context) ([]models.Event, error)
	FindByStatus(ctx context.Context, status string) ([]models.Event, error)
	Update(ctx context.Context, id string, event *models.Event) (*models.Event, error)
	Delete(ctx context.Context, id string) (*models.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// FindByStatus matches status case-insensitively as a substring. An empty
// query matches every event.
func (r *eventRepository) FindByStatus(ctx context.Context, status string) ([]models.Event, error) {
	pattern := "%" + escapeLike(strings.ToLower(status)) + "%"

	var events []models.Event
	if err := r.db.WithContext(ctx).
		Where(`LOWER(status) LIKE ? ESCAPE '\'`, pattern).
		Order("created_at ASC, id ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Update overwrites every mutable column of the event and returns the stored
// result. gorm.ErrRecordNotFound is returned when no event has the id.
func (r *eventRepository) Update(ctx context.Context, id string, event *models.Event) (*models.Event, error) {
	var updated models.Event
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Event{}).
			Where("id = ?", id).
			Updates(mutableColumns(event))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&updated, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the event and returns it as it was before deletion.
func (r *eventRepository) Delete(ctx context.Context, id string) (*models.Event, error) {
	var deleted models.Event
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Event{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

// mutableColumns lists every column an update overwrites. A map is used so
// that empty values are written too.
func mutableColumns(e *models.Event) map[string]any {
	return map[string]any{
		"name":        e.Name,
		"date_time":   e.DateTime,
		"location":    e.Location,
		"organizer":   e.Organizer,
		"theme":       e.Theme,
		"description": e.Description,
		"status":      e.Status,
		"updated_at":  time.Now(),
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
