package models

import "schoolbell-service/internal/pkg/dto/responses"

type SpecificLesson struct {
	ID             int     `json:"id" bson:"id"`
	Day            Weekday `json:"day" bson:"day"`
	LessonNumber   int     `json:"lessonNumber" bson:"lessonNumber"`
	LessonID       int     `json:"lessonId" bson:"lessonId"`
	Cabinet        string  `json:"cabinet" bson:"cabinet"`
	AdditionalInfo string  `json:"additionalInfo" bson:"additionalInfo"`
}

type SpecificLessonPatch struct {
	Day            *Weekday
	LessonNumber   *int
	LessonID       *int
	Cabinet        *string
	AdditionalInfo *string
}

func (s *SpecificLesson) Apply(patch SpecificLessonPatch) {
	if patch.Day != nil {
		s.Day = *patch.Day
	}
	if patch.LessonNumber != nil {
		s.LessonNumber = *patch.LessonNumber
	}
	if patch.LessonID != nil {
		s.LessonID = *patch.LessonID
	}
	if patch.Cabinet != nil {
		s.Cabinet = *patch.Cabinet
	}
	if patch.AdditionalInfo != nil {
		s.AdditionalInfo = *patch.AdditionalInfo
	}
}

// SameSlot reports whether both entries target the same day and lesson number.
func (s SpecificLesson) SameSlot(day Weekday, lessonNumber int) bool {
	return s.Day == day && s.LessonNumber == lessonNumber
}

func (s SpecificLesson) ConvertIntoResponse() responses.SpecificLesson {
	return responses.SpecificLesson{
		ID:             s.ID,
		Day:            s.Day.String(),
		LessonNumber:   s.LessonNumber,
		LessonID:       s.LessonID,
		Cabinet:        s.Cabinet,
		AdditionalInfo: s.AdditionalInfo,
	}
}
