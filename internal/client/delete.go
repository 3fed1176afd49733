package client

import (
	"context"
	"time"

	"github.com/Eursukkul/event-manager/internal/listing"
	"github.com/Eursukkul/event-manager/internal/models"
)

// PendingDelete is the first step of the delete flow: the event has been
// fetched for display and nothing is removed until Confirm.
type PendingDelete struct {
	Event  *models.Event
	client *Client
}

func (c *Client) PrepareDelete(ctx context.Context, id string) (*PendingDelete, error) {
	event, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PendingDelete{Event: event, client: c}, nil
}

func (p *PendingDelete) Detail(loc *time.Location) listing.Detail {
	return listing.NewDetail(p.Event, loc)
}

// Confirm issues the delete. There is no undo.
func (p *PendingDelete) Confirm(ctx context.Context) (*models.Event, error) {
	return p.client.Delete(ctx, p.Event.ID)
}
