package models

import (
	"schoolbell-service/internal/pkg/dto/responses"
	"time"
)

type StatusKind string

const (
	StatusResting  StatusKind = "RESTING"
	StatusInPeriod StatusKind = "IN_PERIOD"
	StatusInBreak  StatusKind = "IN_BREAK"
)

// Status is the live view of the day. Entry is nil only when Kind is
// StatusResting; CountdownSeconds is the time left until the next boundary.
type Status struct {
	Kind             StatusKind
	CountdownSeconds int
	Entry            *SpecificLesson
}

func RestingStatus() Status {
	return Status{Kind: StatusResting}
}

// SameAs reports whether two statuses describe the same phase of the day,
// ignoring the countdown.
func (s Status) SameAs(other Status) bool {
	if s.Kind != other.Kind {
		return false
	}
	if s.Entry == nil || other.Entry == nil {
		return s.Entry == nil && other.Entry == nil
	}
	return s.Entry.ID == other.Entry.ID && s.Entry.LessonNumber == other.Entry.LessonNumber
}

// PeriodBoundaries holds every instant of one period. Outside pair mode
// MiddleBreakEnd and SecondHalfEnd equal FirstHalfEnd; End is the end of the
// occupied slot.
type PeriodBoundaries struct {
	LessonNumber   int       `json:"lessonNumber"`
	Start          ClockTime `json:"start"`
	FirstHalfEnd   ClockTime `json:"firstHalfEnd"`
	MiddleBreakEnd ClockTime `json:"middleBreakEnd"`
	SecondHalfEnd  ClockTime `json:"secondHalfEnd"`
	End            ClockTime `json:"end"`
	BreakAfter     int       `json:"breakAfter"`
}

type PeriodSlot struct {
	Entry      SpecificLesson
	Boundaries PeriodBoundaries
}

type HomeworkDue struct {
	Lesson  Lesson
	DueDays int
}

type BellEvent struct {
	Kind             StatusKind `json:"kind"`
	PreviousKind     StatusKind `json:"previousKind"`
	LessonNumber     int        `json:"lessonNumber,omitempty"`
	LessonName       string     `json:"lessonName,omitempty"`
	Cabinet          string     `json:"cabinet,omitempty"`
	CountdownSeconds int        `json:"countdownSeconds"`
	Countdown        string     `json:"countdown"`
	OccurredAt       time.Time  `json:"occurredAt"`
}

func (p PeriodBoundaries) ConvertIntoResponse() responses.Period {
	return responses.Period{
		LessonNumber:   p.LessonNumber,
		Start:          p.Start.String(),
		FirstHalfEnd:   p.FirstHalfEnd.String(),
		MiddleBreakEnd: p.MiddleBreakEnd.String(),
		SecondHalfEnd:  p.SecondHalfEnd.String(),
		End:            p.End.String(),
		BreakAfter:     p.BreakAfter,
	}
}

func (h HomeworkDue) ConvertIntoResponse() responses.HomeworkDue {
	return responses.HomeworkDue{
		LessonID: h.Lesson.ID,
		Name:     h.Lesson.Name,
		Teacher:  h.Lesson.Teacher,
		Homework: h.Lesson.Homework,
		DueDays:  h.DueDays,
	}
}
