package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour
)

// ClockTime is a wall-clock instant expressed as seconds since local midnight.
// Arithmetic results are not wrapped, so a value past midnight stays above
// SecondsPerDay and still orders correctly against earlier values of the day.
type ClockTime int

func NewClockTime(hour, minute, second int) ClockTime {
	return ClockTime(hour*SecondsPerHour + minute*SecondsPerMinute + second)
}

func ClockTimeOf(t time.Time) ClockTime {
	return NewClockTime(t.Hour(), t.Minute(), t.Second())
}

// ParseClockTime accepts HH:MM and HH:MM:SS.
func ParseClockTime(value string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time of day '%s'", value)
	}

	limits := []int{23, 59, 59}
	fields := make([]int, 3)
	for i, part := range parts {
		number, err := strconv.Atoi(part)
		if err != nil || len(part) == 0 || len(part) > 2 {
			return 0, fmt.Errorf("invalid time of day '%s'", value)
		}
		if number < 0 || number > limits[i] {
			return 0, fmt.Errorf("time of day '%s' out of range", value)
		}
		fields[i] = number
	}
	return NewClockTime(fields[0], fields[1], fields[2]), nil
}

func (c ClockTime) AddMinutes(minutes int) ClockTime {
	return c + ClockTime(minutes*SecondsPerMinute)
}

// Until returns the seconds from c to other, negative when other is earlier.
func (c ClockTime) Until(other ClockTime) int {
	return int(other - c)
}

func (c ClockTime) Before(other ClockTime) bool {
	return c < other
}

func (c ClockTime) Hour() int {
	return int(c.wrapped()) / SecondsPerHour
}

func (c ClockTime) Minute() int {
	return (int(c.wrapped()) % SecondsPerHour) / SecondsPerMinute
}

func (c ClockTime) Second() int {
	return int(c.wrapped()) % SecondsPerMinute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour(), c.Minute(), c.Second())
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseClockTime(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c ClockTime) wrapped() ClockTime {
	wrapped := c % SecondsPerDay
	if wrapped < 0 {
		wrapped += SecondsPerDay
	}
	return wrapped
}
