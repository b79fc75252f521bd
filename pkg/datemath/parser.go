package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layout is the canonical calendar-date form accepted and produced here.
const Layout = "2006-01-02"

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser resolves deadline expressions to calendar dates. Besides absolute
// "YYYY-MM-DD" dates it understands a small set of relative forms:
// "today", "tomorrow", "in 3 days", "in 2 weeks", "next friday".
type Parser struct {
	location *time.Location
}

// NewParser creates a parser that resolves relative expressions in the
// given IANA timezone, e.g. "Europe/Lisbon".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse resolves expr against baseTime (usually time.Now()) and returns the
// resulting calendar date as midnight UTC. Unrecognized input is an error;
// there is no silent fallback.
func (p *Parser) Parse(expr string, baseTime time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty deadline expression")
	}

	if abs, err := time.ParseInLocation(Layout, trimmed, time.UTC); err == nil {
		return abs, nil
	}

	relative := strings.ToLower(trimmed)

	switch relative {
	case "today":
		return p.dateOf(baseTime), nil
	case "tomorrow":
		return p.dateOf(baseTime.AddDate(0, 0, 1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return time.Time{}, fmt.Errorf("unrecognized deadline expression %q", expr)
}

// parseInDuration handles "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration expression %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])

	switch {
	case strings.HasPrefix(matches[2], "day"):
		return p.dateOf(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(matches[2], "week"):
		return p.dateOf(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.dateOf(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles "next monday" through "next sunday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	target, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday %q", dayName)
	}

	base := baseTime.In(p.location)
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.dateOf(base.AddDate(0, 0, daysUntil)), nil
}

// dateOf strips the time-of-day component, observed in the parser's
// timezone, and re-anchors the date at midnight UTC.
func (p *Parser) dateOf(t time.Time) time.Time {
	local := t.In(p.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
