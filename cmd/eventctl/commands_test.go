package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Eursukkul/event-manager/internal/client"
	"github.com/Eursukkul/event-manager/internal/models"
	"github.com/Eursukkul/event-manager/internal/repository"
	"github.com/Eursukkul/event-manager/internal/server"
	"github.com/Eursukkul/event-manager/internal/service"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	color.NoColor = true
}

func newTestAPI(t *testing.T) string {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Event{}))

	svc := service.NewEventService(repository.NewEventRepository(db), nil)
	ts := httptest.NewServer(server.New(svc, server.Options{}))
	t.Cleanup(func() {
		ts.Close()
		sqlDB.Close()
	})
	return ts.URL + "/api"
}

func run(t *testing.T, apiURL, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetArgs(append([]string{"--api-url", apiURL, "--tz", "UTC"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func seed(t *testing.T, apiURL string, names ...string) []*models.Event {
	t.Helper()

	c := client.New(apiURL, nil)
	var events []*models.Event
	for _, name := range names {
		e, err := c.Create(context.Background(), client.EventForm{
			Name:        name,
			DateTime:    time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC),
			Organizer:   "Go Thailand",
			Theme:       "Concurrency",
			Location:    "Bangkok",
			Description: "Evening meetup",
			Status:      "Upcoming",
		})
		require.NoError(t, err)
		events = append(events, e)
	}
	return events
}

func TestList_SortedAndPaged(t *testing.T) {
	api := newTestAPI(t)
	seed(t, api, "charlie", "alpha", "bravo")

	out, err := run(t, api, "", "list", "--desc")
	require.NoError(t, err)

	assert.Less(t, strings.Index(out, "charlie"), strings.Index(out, "bravo"))
	assert.Less(t, strings.Index(out, "bravo"), strings.Index(out, "alpha"))
	assert.Contains(t, out, "NAME ↓")
	assert.Contains(t, out, "14-03-2026")
	assert.Contains(t, out, "1–3 of 3")
}

func TestList_RejectsUnknownPageSize(t *testing.T) {
	api := newTestAPI(t)

	_, err := run(t, api, "", "list", "--page-size", "7")

	assert.ErrorContains(t, err, "--page-size")
}

func TestList_ByStatus(t *testing.T) {
	api := newTestAPI(t)
	seed(t, api, "alpha")

	out, err := run(t, api, "", "list", "--status", "cancel")
	require.NoError(t, err)

	assert.NotContains(t, out, "alpha")
	assert.Contains(t, out, "of 0")
}

func TestCreate_ThenView(t *testing.T) {
	api := newTestAPI(t)

	out, err := run(t, api, "", "create",
		"--name", "Gopher Night",
		"--date-time", "2026-03-14 18:30",
		"--organizer", "Go Thailand",
		"--theme", "Concurrency",
		"--location", "Bangkok",
		"--description", "Evening meetup")
	require.NoError(t, err)
	require.Contains(t, out, "Event created successfully")

	events, err := client.New(api, nil).ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Upcoming", events[0].Status)

	out, err = run(t, api, "", "view", events[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Gopher Night")
	assert.Contains(t, out, "18:30")
}

func TestCreate_IncompleteForm(t *testing.T) {
	api := newTestAPI(t)

	_, err := run(t, api, "", "create", "--name", "Gopher Night", "--date-time", "2026-03-14 18:30")

	assert.ErrorIs(t, err, client.ErrIncompleteForm)
}

func TestEdit_KeepsUnsetFields(t *testing.T) {
	api := newTestAPI(t)
	created := seed(t, api, "alpha")[0]

	_, err := run(t, api, "", "edit", created.ID, "--location", "Chiang Mai")
	require.NoError(t, err)

	got, err := client.New(api, nil).Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chiang Mai", got.Location)
	assert.Equal(t, "alpha", got.Name)
	assert.Equal(t, "Evening meetup", got.Description)
}

func TestDelete_AbortedWithoutConfirmation(t *testing.T) {
	api := newTestAPI(t)
	created := seed(t, api, "alpha")[0]

	out, err := run(t, api, "n\n", "delete", created.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted")

	_, err = client.New(api, nil).Get(context.Background(), created.ID)
	assert.NoError(t, err)
}

func TestDelete_Confirmed(t *testing.T) {
	api := newTestAPI(t)
	created := seed(t, api, "alpha")[0]

	out, err := run(t, api, "y\n", "delete", created.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Event deleted successfully")

	_, err = client.New(api, nil).Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestParseDateTime(t *testing.T) {
	got, err := parseDateTime("2026-03-14 18:30", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC), got)

	_, err = parseDateTime("14/03/2026", time.UTC)
	assert.Error(t, err)
}

func TestList_PageFarPastTheEnd(t *testing.T) {
	api := newTestAPI(t)
	seed(t, api, "alpha")

	out, err := run(t, api, "", "list", "--page", "3000000000000000000")
	require.NoError(t, err)

	assert.NotContains(t, out, "alpha")
	assert.Contains(t, out, "0–0 of 1")
}
