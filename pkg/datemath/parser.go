// Package datemath resolves the relative date expressions accepted by the
// availability endpoints ("today", "next friday", "in 2 weeks") into absolute
// calendar days. All results are midnight in the configured timezone, matching
// the date-only inputs the scheduling engine works with.
package datemath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrUnrecognized is returned for expressions outside the supported grammar.
var ErrUnrecognized = errors.New("unrecognized date expression")

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Parser resolves relative date expressions against a fixed timezone.
type Parser struct {
	loc *time.Location
}

// NewParser builds a parser for the given IANA timezone name, e.g. "UTC" or
// "America/New_York".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{loc: loc}, nil
}

// Parse resolves expr relative to base. Supported forms:
//
//	today | tomorrow | yesterday
//	next <weekday>          (always a future day, 1-7 days out)
//	in <n> days|weeks|months
//
// Anything else yields ErrUnrecognized; callers decide whether a literal date
// format should be tried first.
func (p *Parser) Parse(expr string, base time.Time) (time.Time, error) {
	words := strings.Fields(strings.ToLower(expr))

	switch len(words) {
	case 1:
		switch words[0] {
		case "today":
			return p.midnight(base), nil
		case "tomorrow":
			return p.midnight(base.AddDate(0, 0, 1)), nil
		case "yesterday":
			return p.midnight(base.AddDate(0, 0, -1)), nil
		}
	case 2:
		if words[0] == "next" {
			return p.nextWeekday(words[1], base)
		}
	case 3:
		if words[0] == "in" {
			return p.offset(words[1], words[2], base)
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, expr)
}

func (p *Parser) nextWeekday(name string, base time.Time) (time.Time, error) {
	target, ok := weekdayNames[name]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, name)
	}
	days := int(target-base.In(p.loc).Weekday()+7) % 7
	if days == 0 {
		days = 7
	}
	return p.midnight(base.AddDate(0, 0, days)), nil
}

func (p *Parser) offset(count, unit string, base time.Time) (time.Time, error) {
	n, err := strconv.Atoi(count)
	if err != nil || n < 0 {
		return time.Time{}, fmt.Errorf("%w: bad count %q", ErrUnrecognized, count)
	}
	switch strings.TrimSuffix(unit, "s") {
	case "day":
		return p.midnight(base.AddDate(0, 0, n)), nil
	case "week":
		return p.midnight(base.AddDate(0, 0, n*7)), nil
	case "month":
		return p.midnight(base.AddDate(0, n, 0)), nil
	}
	return time.Time{}, fmt.Errorf("%w: unknown unit %q", ErrUnrecognized, unit)
}

func (p *Parser) midnight(t time.Time) time.Time {
	t = t.In(p.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.loc)
}
