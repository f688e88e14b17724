package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const DaysPerWeek = 7

var weekdayNames = map[Weekday]string{
	Monday:    "MONDAY",
	Tuesday:   "TUESDAY",
	Wednesday: "WEDNESDAY",
	Thursday:  "THURSDAY",
	Friday:    "FRIDAY",
	Saturday:  "SATURDAY",
	Sunday:    "SUNDAY",
}

var weekdayTokens = map[string]Weekday{
	"mon": Monday,
	"tue": Tuesday,
	"wed": Wednesday,
	"thu": Thursday,
	"fri": Friday,
	"sat": Saturday,
	"sun": Sunday,
}

// WeekdayOf maps the Sunday-first time.Weekday onto the Monday-first week.
func WeekdayOf(t time.Time) Weekday {
	if t.Weekday() == time.Sunday {
		return Sunday
	}
	return Weekday(t.Weekday())
}

// ParseWeekday accepts full names in any case and three letter tokens.
func ParseWeekday(value string) (Weekday, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for day, name := range weekdayNames {
		if strings.ToLower(name) == normalized {
			return day, nil
		}
	}
	if day, ok := weekdayTokens[normalized]; ok {
		return day, nil
	}
	return 0, fmt.Errorf("unknown day '%s'", value)
}

func (d Weekday) IsValid() bool {
	return d >= Monday && d <= Sunday
}

// Plus moves offset days forward, wrapping around the week.
func (d Weekday) Plus(offset int) Weekday {
	index := (int(d) - 1 + offset) % DaysPerWeek
	if index < 0 {
		index += DaysPerWeek
	}
	return Weekday(index + 1)
}

func (d Weekday) String() string {
	if name, ok := weekdayNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Weekday(%d)", int(d))
}

func (d Weekday) MarshalJSON() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("invalid weekday %d", int(d))
	}
	return json.Marshal(d.String())
}

func (d *Weekday) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseWeekday(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
