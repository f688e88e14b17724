package models

import (
	"schoolbell-service/internal/pkg/dto/responses"
	"strings"
)

type Lesson struct {
	ID       int    `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Teacher  string `json:"teacher" bson:"teacher"`
	Homework string `json:"homework" bson:"homework"`
}

// LessonPatch carries the fields of an update; nil fields are left untouched.
type LessonPatch struct {
	Name     *string
	Teacher  *string
	Homework *string
}

func (l *Lesson) Apply(patch LessonPatch) {
	if patch.Name != nil {
		l.Name = *patch.Name
	}
	if patch.Teacher != nil {
		l.Teacher = *patch.Teacher
	}
	if patch.Homework != nil {
		l.Homework = *patch.Homework
	}
}

func (l Lesson) HasHomework() bool {
	return strings.TrimSpace(l.Homework) != ""
}

func (l Lesson) ConvertIntoResponse() responses.Lesson {
	return responses.Lesson{
		ID:       l.ID,
		Name:     l.Name,
		Teacher:  l.Teacher,
		Homework: l.Homework,
	}
}
