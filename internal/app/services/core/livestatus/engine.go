package livestatus

import (
	"schoolbell-service/internal/app/models"
	"schoolbell-service/internal/app/services/core/timescheme"
)

// Evaluate labels the moment now against today's entries. Windows are
// half-open: a period occupies [start, end), so at its end instant the day
// has already moved on to the following break or to rest.
//
// Before the first period of the day the status is a break counting down to
// that period. After the last period ends the day is resting.
func Evaluate(now models.ClockTime, todays []models.SpecificLesson, scheme models.TimeScheme) (models.Status, error) {
	slots, err := timescheme.DayGrid(todays, scheme)
	if err != nil {
		return models.RestingStatus(), err
	}
	if len(slots) == 0 {
		return models.RestingStatus(), nil
	}
	if !now.Before(slots[len(slots)-1].Boundaries.End) {
		return models.RestingStatus(), nil
	}

	for _, slot := range slots {
		entry := slot.Entry
		if now.Before(slot.Boundaries.Start) {
			return models.Status{
				Kind:             models.StatusInBreak,
				CountdownSeconds: now.Until(slot.Boundaries.Start),
				Entry:            &entry,
			}, nil
		}
		if now.Before(slot.Boundaries.End) {
			return models.Status{
				Kind:             models.StatusInPeriod,
				CountdownSeconds: now.Until(slot.Boundaries.End),
				Entry:            &entry,
			}, nil
		}
	}
	return models.RestingStatus(), nil
}
