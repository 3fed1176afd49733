package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/Eursukkul/event-manager/internal/client"
	"github.com/Eursukkul/event-manager/internal/listing"
	"github.com/Eursukkul/event-manager/internal/models"
	"github.com/Eursukkul/event-manager/internal/render"
	"github.com/spf13/cobra"
)

const defaultAPIURL = "http://localhost:8080/api"

// Accepted --date-time layouts, tried in order.
var dateTimeLayouts = []string{"2006-01-02 15:04", "2006-01-02T15:04", time.RFC3339}

type app struct {
	apiURL string
	tz     string
	in     io.Reader
	out    io.Writer
}

func (a *app) client() *client.Client {
	return client.New(a.apiURL, nil)
}

func (a *app) location() (*time.Location, error) {
	loc, err := time.LoadLocation(a.tz)
	if err != nil {
		return nil, fmt.Errorf("invalid --tz: %w", err)
	}
	return loc, nil
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{in: in, out: out}

	apiURL := os.Getenv("EVENT_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	root := &cobra.Command{
		Use:          "eventctl",
		Short:        "Create, list, view, edit and delete events",
		SilenceUsage: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)
	root.PersistentFlags().StringVar(&a.apiURL, "api-url", apiURL, "event service API root (env EVENT_API_URL)")
	root.PersistentFlags().StringVar(&a.tz, "tz", "Local", "time zone used to display and parse dates")

	root.AddCommand(
		newListCmd(a),
		newViewCmd(a),
		newCreateCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
	)
	return root
}

func newListCmd(a *app) *cobra.Command {
	var (
		status   string
		sortBy   string
		desc     bool
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events as a sorted, paginated table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := listing.ParseColumn(sortBy)
			if err != nil {
				return err
			}
			if !slices.Contains(listing.PageSizeOptions, pageSize) {
				return fmt.Errorf("--page-size must be one of %v", listing.PageSizeOptions)
			}
			if page < 1 {
				return fmt.Errorf("--page must be at least 1")
			}
			loc, err := a.location()
			if err != nil {
				return err
			}

			events, err := fetchEvents(cmd, a.client(), status)
			if err != nil {
				return err
			}
			rows := listing.NewRows(events, loc)

			view := listing.NewView()
			view.OrderBy = col
			if desc {
				view.Order = listing.Desc
			}
			view.SetPageSize(pageSize)
			view.SetPage(page - 1)

			return render.Table(a.out, view.Window(rows), view)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "only events whose status contains this text (case-insensitive)")
	cmd.Flags().StringVar(&sortBy, "sort", "name", "sort column: name, date, time, location or status")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&pageSize, "page-size", listing.DefaultPageSize, "rows per page (5, 10 or 25)")
	return cmd
}

// fetchEvents filters by status only when --status was given, so an explicit
// empty filter still goes through the status endpoint.
func fetchEvents(cmd *cobra.Command, c *client.Client, status string) ([]models.Event, error) {
	if cmd.Flags().Changed("status") {
		return c.ListByStatus(cmd.Context(), status)
	}
	return c.ListAll(cmd.Context())
}

func newViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Show one event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.location()
			if err != nil {
				return err
			}
			event, err := a.client().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return render.Detail(a.out, listing.NewDetail(event, loc))
		},
	}
}

type formFlags struct {
	name, dateTime, organizer, theme, location, description, status string
}

func (f *formFlags) register(cmd *cobra.Command, defaultStatus string) {
	cmd.Flags().StringVar(&f.name, "name", "", "event name")
	cmd.Flags().StringVar(&f.dateTime, "date-time", "", `date and time, e.g. "2026-03-14 18:30"`)
	cmd.Flags().StringVar(&f.organizer, "organizer", "", "organizer")
	cmd.Flags().StringVar(&f.theme, "theme", "", "theme")
	cmd.Flags().StringVar(&f.location, "location", "", "location")
	cmd.Flags().StringVar(&f.description, "description", "", "description")
	cmd.Flags().StringVar(&f.status, "status", defaultStatus, "Upcoming, Ongoing, Cancelled or Past")
}

// apply copies every flag the user set onto form.
func (f *formFlags) apply(cmd *cobra.Command, form *client.EventForm, loc *time.Location) error {
	set := cmd.Flags().Changed
	if set("name") {
		form.Name = f.name
	}
	if set("date-time") {
		t, err := parseDateTime(f.dateTime, loc)
		if err != nil {
			return err
		}
		form.DateTime = t
	}
	if set("organizer") {
		form.Organizer = f.organizer
	}
	if set("theme") {
		form.Theme = f.theme
	}
	if set("location") {
		form.Location = f.location
	}
	if set("description") {
		form.Description = f.description
	}
	if set("status") {
		form.Status = f.status
	}
	return nil
}

func newCreateCmd(a *app) *cobra.Command {
	var flags formFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.location()
			if err != nil {
				return err
			}

			form := client.NewEventForm(time.Time{})
			if err := flags.apply(cmd, &form, loc); err != nil {
				return err
			}

			event, err := a.client().Create(cmd.Context(), form)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Event created successfully (id %s)\n", event.ID)
			return nil
		},
	}
	flags.register(cmd, listing.LabelUpcoming)
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	var flags formFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an event; fields not given keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.location()
			if err != nil {
				return err
			}

			c := a.client()
			current, err := c.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			form := client.FormFromEvent(current)
			if err := flags.apply(cmd, &form, loc); err != nil {
				return err
			}

			if _, err := c.Update(cmd.Context(), args[0], form); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Event updated successfully")
			return nil
		},
	}
	flags.register(cmd, "")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Show an event and delete it after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.location()
			if err != nil {
				return err
			}

			pending, err := a.client().PrepareDelete(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, "Are you sure you want to delete the event below?")
			if err := render.Detail(a.out, pending.Detail(loc)); err != nil {
				return err
			}

			if !yes && !confirm(a.in, a.out) {
				fmt.Fprintln(a.out, "Aborted")
				return nil
			}

			if _, err := pending.Confirm(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Event deleted successfully")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")
	return cmd
}

func confirm(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "Delete this event? [y/N] ")
	line, _ := bufio.NewReader(in).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func parseDateTime(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --date-time %q, expected YYYY-MM-DD HH:MM", s)
}
