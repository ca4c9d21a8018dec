// Package report renders weather records and their summary statistics as plain text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/couchcryptid/weather-data-analyzer/internal/domain"
)

type align int

const (
	alignLeft align = iota
	alignRight
)

type column struct {
	title string
	width int // inner width, excluding the one-space margin on each side
	align align
}

var columns = []column{
	{"Date", 10, alignLeft},
	{"Temperature", 11, alignRight},
	{"Humidity", 8, alignRight},
	{"Precipitation", 13, alignRight},
	{"Category", 8, alignLeft},
}

// Writer renders reports to an underlying io.Writer.
// It implements pipeline.Reporter.
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer that renders to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Render writes a box-drawn table with one row per record, in store order.
func (rw *Writer) Render(s domain.Store) error {
	var b strings.Builder

	b.WriteString(border("┌", "┬", "┐"))
	titles := make([]string, len(columns))
	for i, c := range columns {
		titles[i] = center(c.title, c.width)
	}
	b.WriteString(row(titles))
	b.WriteString(border("├", "┼", "┤"))

	for _, r := range s.All() {
		b.WriteString(row(cells(r)))
	}

	b.WriteString(border("└", "┴", "┘"))

	_, err := io.WriteString(rw.w, b.String())
	return err
}

// WriteSummary writes the statistics lines that follow the table.
func (rw *Writer) WriteSummary(sum domain.Summary) error {
	_, err := fmt.Fprintf(rw.w, "\nAverage Temperature for %s: %.2f°F\nTotal Rainy Days: %d\nDays Above %s°F: %d\n",
		monthName(sum.Month),
		sum.AverageF,
		sum.RainyDays,
		strconv.FormatFloat(sum.ThresholdF, 'f', -1, 64),
		sum.DaysAbove,
	)
	return err
}

func cells(r domain.WeatherRecord) []string {
	values := []string{
		r.Date(),
		fmt.Sprintf("%.1f°F", r.TemperatureF()),
		fmt.Sprintf("%.0f%%", r.Humidity()),
		fmt.Sprintf("%.1f mm", r.Precipitation()),
		string(r.Category()),
	}
	for i, c := range columns {
		values[i] = pad(values[i], c.width, c.align)
	}
	return values
}

func row(cells []string) string {
	return "│ " + strings.Join(cells, " │ ") + " │\n"
}

func border(left, mid, right string) string {
	segs := make([]string, len(columns))
	for i, c := range columns {
		segs[i] = strings.Repeat("─", c.width+2)
	}
	return left + strings.Join(segs, mid) + right + "\n"
}

// pad fills s with spaces up to width runes. Longer values are left intact.
func pad(s string, width int, a align) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if a == alignRight {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

func center(s string, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	left := n / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", n-left)
}

func monthName(m int) string {
	if m < 1 || m > 12 {
		return "Month " + strconv.Itoa(m)
	}
	return time.Month(m).String()
}
