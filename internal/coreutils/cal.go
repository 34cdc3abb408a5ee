// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zhang722/command-line-go/internal/config"
	"github.com/zhang722/command-line-go/internal/issue"
)

// calCommand implements calr.
type calCommand struct {
	baseCommand
}

const (
	// calWidth is the width of one month block: seven "dd" cells.
	calWidth = 7*3 - 1
	// calGap separates month blocks in the year view.
	calGap = "  "
	// calColumns is the number of months per row in the year view.
	calColumns = 3
	// calWeeks is the most weeks any month spans.
	calWeeks = 6

	minYear = 1
	maxYear = 9999
)

func init() {
	RegisterDefault(newCalCommand())
}

func newCalCommand() *calCommand {
	c := &calCommand{}
	c.name = "calr"
	c.short = "Display a calendar"
	c.build = c.cobra
	return c
}

func (c *calCommand) cobra(hc *HandlerContext) *cobra.Command {
	var wholeYear bool

	cmd := &cobra.Command{
		Use:  "[[MONTH] YEAR]",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			today := hc.Clock.Now()
			year, month := today.Year(), today.Month()
			showYear := wholeYear

			switch len(args) {
			case 1:
				if isNumber(args[0]) {
					y, err := parseYear(args[0])
					if err != nil {
						return err
					}
					year, showYear = y, true
					break
				}
				if wholeYear {
					return dateError(args[0], "a month cannot be combined with --year")
				}
				m, err := parseMonth(args[0])
				if err != nil {
					return err
				}
				month = m
			case 2:
				if wholeYear {
					return dateError(args[0], "a month cannot be combined with --year")
				}
				m, err := parseMonth(args[0])
				if err != nil {
					return err
				}
				y, err := parseYear(args[1])
				if err != nil {
					return err
				}
				month, year = m, y
			}

			cal := &calendar{
				today:     today,
				weekStart: weekStart(hc.cfg().Cal.WeekStart),
				highlight: painter(hc.Color, color.ReverseVideo),
			}
			if showYear {
				return cal.writeYear(hc.Stdout, year)
			}
			return cal.writeMonth(hc.Stdout, year, month)
		},
	}
	cmd.Flags().BoolVarP(&wholeYear, "year", "y", false, "show the whole year")
	return cmd
}

func weekStart(ws config.WeekStart) time.Weekday {
	if ws == config.WeekStartSunday {
		return time.Sunday
	}
	return time.Monday
}

// calendar renders month blocks relative to today.
type calendar struct {
	today     time.Time
	weekStart time.Weekday
	highlight *color.Color
}

func (c *calendar) writeMonth(w io.Writer, year int, month time.Month) error {
	title := fmt.Sprintf("%s %d", month, year)
	_, err := fmt.Fprintln(w, strings.Join(c.month(year, month, title, false), "\n"))
	return err
}

func (c *calendar) writeYear(w io.Writer, year int) error {
	total := calColumns*calWidth + (calColumns-1)*len(calGap)
	rows := []string{lipgloss.PlaceHorizontal(total, lipgloss.Center, strconv.Itoa(year))}

	for first := time.January; first <= time.December; first += calColumns {
		blocks := make([]string, 0, 2*calColumns-1)
		for m := first; m < first+calColumns; m++ {
			if m > first {
				blocks = append(blocks, calGap)
			}
			blocks = append(blocks, strings.Join(c.month(year, m, m.String(), true), "\n"))
		}
		rows = append(rows, "", lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	}

	_, err := fmt.Fprintln(w, strings.Join(rows, "\n"))
	return err
}

// month returns the lines of one month block, each calWidth wide. fill pads
// the block to calWeeks week rows so that blocks line up side by side.
func (c *calendar) month(year int, month time.Month, title string, fill bool) []string {
	lines := []string{
		lipgloss.PlaceHorizontal(calWidth, lipgloss.Center, title),
		c.weekdayHeader(),
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	lead := (int(first.Weekday()) - int(c.weekStart) + 7) % 7

	cells := make([]string, lead, lead+days)
	for i := range cells {
		cells[i] = "  "
	}
	for day := 1; day <= days; day++ {
		cell := fmt.Sprintf("%2d", day)
		if c.isToday(year, month, day) {
			cell = c.highlight.Sprint(cell)
		}
		cells = append(cells, cell)
	}

	for i := 0; i < len(cells); i += 7 {
		week := strings.Join(cells[i:min(i+7, len(cells))], " ")
		lines = append(lines, lipgloss.PlaceHorizontal(calWidth, lipgloss.Left, week))
	}
	for fill && len(lines) < calWeeks+2 {
		lines = append(lines, strings.Repeat(" ", calWidth))
	}
	return lines
}

func (c *calendar) weekdayHeader() string {
	names := make([]string, 7)
	for i := range names {
		names[i] = time.Weekday((int(c.weekStart) + i) % 7).String()[:2]
	}
	return strings.Join(names, " ")
}

func (c *calendar) isToday(year int, month time.Month, day int) bool {
	y, m, d := c.today.Date()
	return y == year && m == month && d == day
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseMonth accepts 1-12 or an unambiguous, case-insensitive prefix of an
// English month name.
func parseMonth(s string) (time.Month, error) {
	if isNumber(s) {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 12 {
			return 0, dateError(s, "month not in the range 1 through 12")
		}
		return time.Month(n), nil
	}

	lower := strings.ToLower(s)
	var found []time.Month
	for m := time.January; m <= time.December; m++ {
		if lower != "" && strings.HasPrefix(strings.ToLower(m.String()), lower) {
			found = append(found, m)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return 0, dateError(s, "unknown month name")
	default:
		return 0, dateError(s, "ambiguous month name")
	}
}

func parseYear(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || !isNumber(s) || n < minYear || n > maxYear {
		return 0, dateError(s, fmt.Sprintf("year not in the range %d through %d", minYear, maxYear))
	}
	return n, nil
}

func dateError(input, reason string) error {
	return issue.NewErrorContext().
		WithOperation("parse date").
		WithResource(fmt.Sprintf("%q", input)).
		WithIssue(issue.InvalidDateId).
		Wrap(errors.New(reason)).
		BuildError()
}
