package models

import "schoolbell-service/internal/pkg/dto/responses"

const (
	DefaultStartHour               = 9
	DefaultLessonLength            = 45
	DefaultBreakLength             = 15
	DefaultBreakCount              = 7
	DefaultCoupleMiddleBreakLength = 10
)

type TimeScheme struct {
	Start                   ClockTime `json:"start" bson:"start"`
	LessonLength            int       `json:"lessonLength" bson:"lessonLength"`
	Breaks                  []int     `json:"breaks" bson:"breaks"`
	DefaultBreak            int       `json:"defaultBreak" bson:"defaultBreak"`
	CoupleMiddleBreakLength int       `json:"coupleMiddleBreakLength" bson:"coupleMiddleBreakLength"`
	IsPairMode              bool      `json:"isPairMode" bson:"isPairMode"`
}

type TimeSchemePatch struct {
	Start                   *ClockTime
	LessonLength            *int
	Breaks                  []int
	DefaultBreak            *int
	CoupleMiddleBreakLength *int
	IsPairMode              *bool
}

func DefaultTimeScheme() TimeScheme {
	breaks := make([]int, DefaultBreakCount)
	for i := range breaks {
		breaks[i] = DefaultBreakLength
	}
	return TimeScheme{
		Start:                   NewClockTime(DefaultStartHour, 0, 0),
		LessonLength:            DefaultLessonLength,
		Breaks:                  breaks,
		DefaultBreak:            DefaultBreakLength,
		CoupleMiddleBreakLength: DefaultCoupleMiddleBreakLength,
		IsPairMode:              false,
	}
}

// Clone copies the scheme so the break slice is not shared.
func (t TimeScheme) Clone() TimeScheme {
	clone := t
	clone.Breaks = append([]int(nil), t.Breaks...)
	return clone
}

// Apply returns a copy of t with the present patch fields set.
func (t TimeScheme) Apply(patch TimeSchemePatch) TimeScheme {
	updated := t.Clone()
	if patch.Start != nil {
		updated.Start = *patch.Start
	}
	if patch.LessonLength != nil {
		updated.LessonLength = *patch.LessonLength
	}
	if patch.Breaks != nil {
		updated.Breaks = append([]int(nil), patch.Breaks...)
	}
	if patch.DefaultBreak != nil {
		updated.DefaultBreak = *patch.DefaultBreak
	}
	if patch.CoupleMiddleBreakLength != nil {
		updated.CoupleMiddleBreakLength = *patch.CoupleMiddleBreakLength
	}
	if patch.IsPairMode != nil {
		updated.IsPairMode = *patch.IsPairMode
	}
	return updated
}

func (t TimeScheme) ConvertIntoResponse() responses.TimeScheme {
	breaks := append([]int{}, t.Breaks...)
	return responses.TimeScheme{
		Start:                   t.Start.String(),
		LessonLength:            t.LessonLength,
		Breaks:                  breaks,
		DefaultBreak:            t.DefaultBreak,
		CoupleMiddleBreakLength: t.CoupleMiddleBreakLength,
		IsPairMode:              t.IsPairMode,
	}
}
