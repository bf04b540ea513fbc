package roundtime

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/en"
)

// DateLayout is the canonical round date format.
const DateLayout = "2006-01-02"

// ErrUnrecognisedDate is returned when input is neither a calendar date nor
// a phrase the natural language parser understands.
var ErrUnrecognisedDate = errors.New("unrecognised date")

// Clock supplies the reference time for relative dates.
type Clock interface {
	Now() time.Time
}

// AnchorClock always reports the same instant. The zero value reports the
// current time.
type AnchorClock struct {
	anchor time.Time
}

// NewAnchorClock creates a clock fixed at t.
func NewAnchorClock(t time.Time) AnchorClock {
	return AnchorClock{anchor: t}
}

func (c AnchorClock) Now() time.Time {
	if c.anchor.IsZero() {
		return time.Now()
	}
	return c.anchor
}

// DateParser turns user supplied round dates into calendar days.
type DateParser struct {
	clock Clock
	w     *when.Parser
}

// NewDateParser creates a DateParser. A nil clock uses the wall clock.
func NewDateParser(clock Clock) *DateParser {
	if clock == nil {
		clock = AnchorClock{}
	}
	w := when.New(nil)
	w.Add(en.All...)
	return &DateParser{clock: clock, w: w}
}

// ParseRoundDate accepts YYYY-MM-DD or English phrases such as "today",
// "yesterday" or "last saturday". The result is midnight UTC of that day.
func (p *DateParser) ParseRoundDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrUnrecognisedDate)
	}

	if t, err := time.Parse(DateLayout, input); err == nil {
		return t, nil
	}

	now := p.clock.Now()
	r, err := p.w.Parse(strings.ToLower(input), now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrUnrecognisedDate, input, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognisedDate, input)
	}

	local := r.Time.In(now.Location())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC), nil
}
