package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Eursukkul/event-manager/internal/models"
	"github.com/Eursukkul/event-manager/internal/repository"
	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

// Routing keys for change notifications.
const (
	KeyEventCreated = "event.created"
	KeyEventUpdated = "event.updated"
	KeyEventDeleted = "event.deleted"
)

// Notifier publishes change notifications. *rabbitmq.Publisher satisfies it.
type Notifier interface {
	Publish(routingKey string, payload any) error
}

type EventService interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListEventsByStatus(ctx context.Context, status string) ([]models.Event, error)
	UpdateEvent(ctx context.Context, id string, event *models.Event) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) (*models.Event, error)
}

type eventService struct {
	repo     repository.EventRepository
	notifier Notifier
}

// NewEventService builds the service. A nil notifier disables change
// notifications.
func NewEventService(repo repository.EventRepository, notifier Notifier) EventService {
	return &eventService{repo: repo, notifier: notifier}
}

func (s *eventService) CreateEvent(ctx context.Context, event *models.Event) error {
	if err := s.repo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	s.notify(KeyEventCreated, event)
	return nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, wrapNotFound("get event", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) ListEventsByStatus(ctx context.Context, status string) ([]models.Event, error) {
	events, err := s.repo.FindByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list events by status: %w", err)
	}
	return events, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, event *models.Event) (*models.Event, error) {
	updated, err := s.repo.Update(ctx, id, event)
	if err != nil {
		return nil, wrapNotFound("update event", err)
	}

	s.notify(KeyEventUpdated, updated)
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) (*models.Event, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, wrapNotFound("delete event", err)
	}

	s.notify(KeyEventDeleted, deleted)
	return deleted, nil
}

// notify is best-effort: a broker failure never fails the request.
func (s *eventService) notify(routingKey string, event *models.Event) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(routingKey, event); err != nil {
		log.Printf("[EventService] failed to publish %s for event %s: %v", routingKey, event.ID, err)
	}
}

func wrapNotFound(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrEventNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
