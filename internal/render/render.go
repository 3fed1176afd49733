// Package render writes listing pages and event details as terminal text.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Eursukkul/event-manager/internal/listing"
	"github.com/fatih/color"
)

var toneColors = map[listing.Tone]*color.Color{
	listing.ToneInfo:    color.New(color.FgCyan),
	listing.ToneWarning: color.New(color.FgYellow),
	listing.ToneError:   color.New(color.FgRed),
	listing.ToneSuccess: color.New(color.FgGreen),
}

var header = color.New(color.Bold)

// Badge returns the badge label colored by its tone. Coloring follows
// color.NoColor, so output to a pipe stays plain.
func Badge(b listing.Badge) string {
	if c, ok := toneColors[b.Tone]; ok {
		return c.Sprint(b.Label)
	}
	return b.Label
}

// Table writes one page: a header, the page's rows, one blank line per
// blank slot and a "start–end of total" footer. Columns are aligned with
// the id column last so it can be copied for view, edit and delete.
func Table(w io.Writer, p listing.Page, v *listing.View) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	cols := []string{"NAME", "DATE", "TIME", "LOCATION", "STATUS", "ID"}
	if v != nil {
		idx := int(v.OrderBy)
		marker := " ↑"
		if v.Order == listing.Desc {
			marker = " ↓"
		}
		cols[idx] += marker
	}
	fmt.Fprintln(tw, header.Sprint(strings.Join(cols, "\t")))

	for _, r := range p.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Name, r.Date, r.Time, r.Location, Badge(r.Badge()), r.ID)
	}
	for i := 0; i < p.Blank; i++ {
		fmt.Fprintln(tw, "\t\t\t\t\t")
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%d–%d of %d  (page %d/%d, %d per page)\n",
		p.Start(), p.End(), p.Total, p.Index+1, max(1, listing.PageCount(p.Total, p.Size)), p.Size)
	return err
}

// Detail writes the read-only view of one event.
func Detail(w io.Writer, d listing.Detail) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fields := [][2]string{
		{"Event Name", d.Name},
		{"Status", Badge(d.Badge)},
		{"Date", d.Date},
		{"Time", d.Time},
		{"Organizer", d.Organizer},
		{"Theme", d.Theme},
		{"Location", d.Location},
		{"Description", d.Description},
		{"ID", d.ID},
	}
	for _, f := range fields {
		fmt.Fprintf(tw, "%s\t%s\n", header.Sprint(f[0]+":"), f[1])
	}
	return tw.Flush()
}
