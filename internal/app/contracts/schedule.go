package contracts

import (
	"context"
	"schoolbell-service/internal/app/models"
	"schoolbell-service/internal/pkg/dto/requests"
	"schoolbell-service/internal/pkg/dto/responses"
)

// ScheduleReader is the read side of the in-memory schedule.
type ScheduleReader interface {
	Lessons() []models.Lesson
	LessonByID(lessonID int) (models.Lesson, bool)
	SpecificLessons() []models.SpecificLesson
	SpecificLessonsForDay(day models.Weekday) []models.SpecificLesson
}

type ScheduleUsecase interface {
	Load(ctx context.Context) error
	FindAllLessons(ctx context.Context) ([]responses.Lesson, error)
	FindLessonByID(ctx context.Context, lessonID int) (*responses.Lesson, error)
	CreateLesson(ctx context.Context, request *requests.CreateLesson) (*responses.Lesson, error)
	UpdateLesson(ctx context.Context, lessonID int, request *requests.UpdateLesson) (*responses.Lesson, error)
	UpdateHomework(ctx context.Context, lessonID int, request *requests.UpdateHomework) (*responses.Lesson, error)
	DeleteLesson(ctx context.Context, lessonID int) error
	FindSpecificLessons(ctx context.Context, day *models.Weekday) ([]responses.SpecificLesson, error)
	CreateSpecificLesson(ctx context.Context, request *requests.CreateSpecificLesson) (*responses.SpecificLesson, error)
	UpdateSpecificLesson(ctx context.Context, specificLessonID int, request *requests.UpdateSpecificLesson) (*responses.SpecificLesson, error)
	DeleteSpecificLesson(ctx context.Context, specificLessonID int) error
	ReplaceLessons(ctx context.Context, lessons []models.Lesson) error
	ReplaceSpecificLessons(ctx context.Context, specificLessons []models.SpecificLesson) error
	CleanInvalid(ctx context.Context) (int, error)
}
