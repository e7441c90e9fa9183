package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"
)

// Alignment controls how a cell is padded inside its column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// Column describes one table column: header lines top-first (long titles
// wrap over the sub-header rows), fixed width, alignment, and the row field
// it displays.
type Column struct {
	Title []string
	Width int
	Align Alignment
	Value func(Row) string
}

// Columns returns the active column set. Hiding the device ID drops the
// column from header and rows without affecting sort keys.
func Columns(hideDeviceID bool) []Column {
	cols := []Column{
		{Title: []string{"Type"}, Width: 20, Align: AlignLeft, Value: func(r Row) string { return r.Type }},
		{Title: []string{"Name"}, Width: 35, Align: AlignLeft, Value: func(r Row) string { return r.Name }},
		{Title: []string{"Device ID"}, Width: 18, Align: AlignLeft, Value: func(r Row) string { return r.DeviceID }},
		{Title: []string{"Model"}, Width: 10, Align: AlignLeft, Value: func(r Row) string { return r.Model }},
		{Title: []string{"Battery"}, Width: 8, Align: AlignRight, Value: func(r Row) string { return r.Battery }},
		{Title: []string{"Temp"}, Width: 7, Align: AlignRight, Value: func(r Row) string { return r.Temp }},
		{Title: []string{"Last", "radio", "contact"}, Width: 19, Align: AlignCenter, Value: func(r Row) string { return r.LastContact }},
		{Title: []string{"No", "motion", "delay"}, Width: 10, Align: AlignCenter, Value: func(r Row) string { return r.NoMotionDelay }},
		{Title: []string{"Sensitivity"}, Width: 11, Align: AlignCenter, Value: func(r Row) string { return r.Sensitivity }},
		{Title: []string{"State"}, Width: 16, Align: AlignCenter, Value: func(r Row) string { return r.State }},
		{Title: []string{"Version"}, Width: 8, Align: AlignCenter, Value: func(r Row) string { return r.Version }},
	}
	if hideDeviceID {
		cols = append(cols[:2], cols[3:]...)
	}
	return cols
}

// SortRows orders rows for display. byContact sorts oldest radio contact
// first; the fixed local timestamp format makes string order chronological.
// Both modes are stable, so catalog order breaks ties.
func SortRows(rows []Row, byContact bool) {
	if byContact {
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := rows[i], rows[j]
			if c := strings.Compare(strings.TrimSpace(a.LastContact), strings.TrimSpace(b.LastContact)); c != 0 {
				return c < 0
			}
			if a.Type != b.Type {
				return a.Type < b.Type
			}
			return a.Name < b.Name
		})
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.Name < b.Name
	})
}

// Render writes the header, separator rule, and rows to w. Rows are assumed
// pre-sorted. Cells wider than their column pass through unpadded, so an
// overlong name shifts its own line rather than being truncated.
func Render(w io.Writer, rows []Row, hideDeviceID bool) {
	cols := Columns(hideDeviceID)

	headerLines := 0
	for _, col := range cols {
		if len(col.Title) > headerLines {
			headerLines = len(col.Title)
		}
	}

	for line := 0; line < headerLines; line++ {
		cells := make([]string, len(cols))
		for i, col := range cols {
			title := ""
			if line < len(col.Title) {
				title = col.Title[line]
			}
			// continuation lines are centered regardless of column alignment
			align := col.Align
			if line > 0 {
				align = AlignCenter
			}
			cells[i] = pad(title, col.Width, align)
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}

	fmt.Fprintln(w, strings.Repeat("-", ruleWidth(cols)))

	for _, row := range rows {
		cells := make([]string, len(cols))
		for i, col := range cols {
			cells[i] = pad(col.Value(row), col.Width, col.Align)
		}
		fmt.Fprintln(w, strings.Join(cells, " "))
	}
}

func ruleWidth(cols []Column) int {
	width := len(cols) - 1
	for _, col := range cols {
		width += col.Width
	}
	return width
}

// pad counts characters, not bytes, so non-ASCII names keep the columns
// aligned.
func pad(s string, width int, align Alignment) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		return center(s, width)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

const dumpRule = 80

// RenderDumps appends the raw getState responses after the table, one block
// per device, in the order the devices were fetched.
func RenderDumps(w io.Writer, dumps []DeviceDump) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", dumpRule))
	fmt.Fprintln(w, "JSON RESPONSES FOR EACH DEVICE")
	fmt.Fprintln(w, strings.Repeat("=", dumpRule))
	fmt.Fprintln(w)

	for _, d := range dumps {
		fmt.Fprintf(w, "Device: %s (%s)\n", d.Name, d.DeviceID)
		fmt.Fprintln(w, strings.Repeat("-", dumpRule))

		var buf bytes.Buffer
		if err := json.Indent(&buf, d.Raw, "", "  "); err != nil {
			buf.Reset()
			buf.Write(d.Raw)
		}
		fmt.Fprintln(w, buf.String())
		fmt.Fprintln(w)
	}
}
