package timescheme

import (
	"schoolbell-service/internal/app/models"
	"schoolbell-service/internal/pkg/constvars"
	"schoolbell-service/internal/pkg/exceptions"
	"sort"
)

// The calculator does not validate lengths. Non-positive durations are
// propagated as is, which can make boundaries stationary or reversed;
// rejecting them is the job of the mutation layer (see Validate).

// FullLessonDuration is the occupied length of one period in minutes. In pair
// mode a period is two lessons joined by the middle break.
func FullLessonDuration(scheme models.TimeScheme) int {
	if scheme.IsPairMode {
		return 2*scheme.LessonLength + scheme.CoupleMiddleBreakLength
	}
	return scheme.LessonLength
}

// BreakAfter returns the break following lessonNumber, falling back to the
// default once the explicit breaks are exhausted.
func BreakAfter(lessonNumber int, scheme models.TimeScheme) int {
	index := lessonNumber - 1
	if index >= 0 && index < len(scheme.Breaks) {
		return scheme.Breaks[index]
	}
	return scheme.DefaultBreak
}

// StartOf sums the lessons and breaks before lessonNumber. Breaks past the
// explicit list all take the default length.
func StartOf(lessonNumber int, scheme models.TimeScheme) (models.ClockTime, error) {
	if lessonNumber <= 0 || lessonNumber > constvars.MaxLessonNumber {
		return 0, exceptions.ErrInvalidLessonNumber(lessonNumber)
	}

	previous := lessonNumber - 1
	minutes := previous * FullLessonDuration(scheme)
	explicit := min(previous, len(scheme.Breaks))
	for _, length := range scheme.Breaks[:explicit] {
		minutes += length
	}
	minutes += (previous - explicit) * scheme.DefaultBreak
	return scheme.Start.AddMinutes(minutes), nil
}

// EndOf is the simple end of a period: start plus one lesson length, even in
// pair mode.
func EndOf(lessonNumber int, scheme models.TimeScheme) (models.ClockTime, error) {
	start, err := StartOf(lessonNumber, scheme)
	if err != nil {
		return 0, err
	}
	return start.AddMinutes(scheme.LessonLength), nil
}

func BoundariesOf(lessonNumber int, scheme models.TimeScheme) (models.PeriodBoundaries, error) {
	start, err := StartOf(lessonNumber, scheme)
	if err != nil {
		return models.PeriodBoundaries{}, err
	}

	firstHalfEnd := start.AddMinutes(scheme.LessonLength)
	boundaries := models.PeriodBoundaries{
		LessonNumber:   lessonNumber,
		Start:          start,
		FirstHalfEnd:   firstHalfEnd,
		MiddleBreakEnd: firstHalfEnd,
		SecondHalfEnd:  firstHalfEnd,
		End:            firstHalfEnd,
		BreakAfter:     BreakAfter(lessonNumber, scheme),
	}
	if scheme.IsPairMode {
		boundaries.MiddleBreakEnd = firstHalfEnd.AddMinutes(scheme.CoupleMiddleBreakLength)
		boundaries.SecondHalfEnd = boundaries.MiddleBreakEnd.AddMinutes(scheme.LessonLength)
		boundaries.End = boundaries.SecondHalfEnd
	}
	return boundaries, nil
}

// DayGrid computes the boundaries of every entry, ordered by lesson number.
func DayGrid(entries []models.SpecificLesson, scheme models.TimeScheme) ([]models.PeriodSlot, error) {
	sorted := SortByLessonNumber(entries)
	slots := make([]models.PeriodSlot, 0, len(sorted))
	for _, entry := range sorted {
		boundaries, err := BoundariesOf(entry.LessonNumber, scheme)
		if err != nil {
			return nil, err
		}
		slots = append(slots, models.PeriodSlot{Entry: entry, Boundaries: boundaries})
	}
	return slots, nil
}

// SortByLessonNumber returns a sorted copy; entries sharing a number keep
// their id order.
func SortByLessonNumber(entries []models.SpecificLesson) []models.SpecificLesson {
	sorted := append([]models.SpecificLesson(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].LessonNumber != sorted[j].LessonNumber {
			return sorted[i].LessonNumber < sorted[j].LessonNumber
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// Validate rejects schemes the calculator cannot produce a sane day from.
func Validate(scheme models.TimeScheme) error {
	if scheme.LessonLength <= 0 {
		return exceptions.ErrNonPositiveDuration("lessonLength", scheme.LessonLength)
	}
	if scheme.DefaultBreak <= 0 {
		return exceptions.ErrNonPositiveDuration("defaultBreak", scheme.DefaultBreak)
	}
	if scheme.CoupleMiddleBreakLength < 0 {
		return exceptions.ErrNegativeDuration("coupleMiddleBreakLength", scheme.CoupleMiddleBreakLength)
	}
	for _, length := range scheme.Breaks {
		if length <= 0 {
			return exceptions.ErrNonPositiveDuration("breaks", length)
		}
	}
	return nil
}
