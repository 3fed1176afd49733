package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Eursukkul/event-manager/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Event{}))
	return db
}

func sampleEvent(name, status string) *models.Event {
	return &models.Event{
		Name:        name,
		DateTime:    time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC),
		Location:    "Bangkok",
		Organizer:   "Go Thailand",
		Theme:       "Concurrency",
		Description: "Evening meetup",
		Status:      status,
	}
}

func TestCreate_AssignsID(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))
	event := sampleEvent("Gopher Night", "Upcoming")

	require.NoError(t, repo.Create(context.Background(), event))

	assert.NotEmpty(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestCreateThenFindByID_RoundTrip(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))
	ctx := context.Background()
	event := sampleEvent("Gopher Night", "Upcoming")
	require.NoError(t, repo.Create(ctx, event))

	found, err := repo.FindByID(ctx, event.ID)

	require.NoError(t, err)
	assert.Equal(t, event.ID, found.ID)
	assert.Equal(t, "Gopher Night", found.Name)
	assert.True(t, event.DateTime.Equal(found.DateTime))
	assert.Equal(t, "Bangkok", found.Location)
	assert.Equal(t, "Go Thailand", found.Organizer)
	assert.Equal(t, "Concurrency", found.Theme)
	assert.Equal(t, "Evening meetup", found.Description)
	assert.Equal(t, "Upcoming", found.Status)
}

func TestFindByID_NotFound(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))

	event, err := repo.FindByID(context.Background(), "0b7f9c1e-4b8e-4a51-9d52-2f0c4d0e1a11")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, event)
}

func TestFindAll(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, sampleEvent("A", "Upcoming")))
	require.NoError(t, repo.Create(ctx, sampleEvent("B", "Cancelled")))

	events, err := repo.FindAll(ctx)

	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestFindByStatus_CaseInsensitiveSubstring(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, sampleEvent("Live", "Ongoing")))
	require.NoError(t, repo.Create(ctx, sampleEvent("Soon", "Upcoming")))
	require.NoError(t, repo.Create(ctx, sampleEvent("Off", "Cancelled")))
	require.NoError(t, repo.Create(ctx, sampleEvent("Blank", "")))

	events, err := repo.FindByStatus(ctx, "ong")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Live", events[0].Name)

	events, err = repo.FindByStatus(ctx, "UP")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Soon", events[0].Name)

	events, err = repo.FindByStatus(ctx, "")
	require.NoError(t, err)
	assert.Len(t, events, 4)
}

func TestFindByStatus_WildcardsAreLiteral(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, sampleEvent("Plain", "Upcoming")))
	require.NoError(t, repo.Create(ctx, sampleEvent("Odd", "100%_done")))

	events, err := repo.FindByStatus(ctx, "%")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Odd", events[0].Name)

	events, err = repo.FindByStatus(ctx, "_")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Odd", events[0].Name)
}

func TestUpdate_FullOverwrite(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))
	ctx := context.Background()
	event := sampleEvent("Gopher Night", "Upcoming")
	require.NoError(t, repo.Create(ctx, event))

	replacement := &models.Event{
		Name:      "Gopher Night II",
		DateTime:  time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
		Location:  "Chiang Mai",
		Organizer: "Go Thailand",
		Status:    "Ongoing",
	}

	updated, err := repo.Update(ctx, event.ID, replacement)

	require.NoError(t, err)
	assert.Equal(t, event.ID, updated.ID)
	assert.Equal(t, "Gopher Night II", updated.Name)
	assert.Equal(t, "Chiang Mai", updated.Location)
	assert.Equal(t, "Ongoing", updated.Status)
	assert.Empty(t, updated.Theme)
	assert.Empty(t, updated.Description)
}

func TestUpdate_NotFound_LeavesCollectionUnchanged(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))
	ctx := context.Background()
	event := sampleEvent("Gopher Night", "Upcoming")
	require.NoError(t, repo.Create(ctx, event))

	updated, err := repo.Update(ctx, "0b7f9c1e-4b8e-4a51-9d52-2f0c4d0e1a11", sampleEvent("Ghost", "Cancelled"))

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, updated)

	events, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Gopher Night", events[0].Name)
	assert.Equal(t, "Upcoming", events[0].Status)
}

func TestDelete_ThenFindByID_NotFound(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))
	ctx := context.Background()
	event := sampleEvent("Gopher Night", "Upcoming")
	require.NoError(t, repo.Create(ctx, event))

	deleted, err := repo.Delete(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.ID, deleted.ID)
	assert.Equal(t, "Gopher Night", deleted.Name)

	_, err = repo.FindByID(ctx, event.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))

	deleted, err := repo.Delete(context.Background(), "0b7f9c1e-4b8e-4a51-9d52-2f0c4d0e1a11")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, deleted)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%\_done\\`, escapeLike(`100%_done\`))
	assert.Equal(t, "ongoing", escapeLike("ongoing"))
}
