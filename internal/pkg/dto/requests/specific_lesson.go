package requests

type CreateSpecificLesson struct {
	Day            string `json:"day" validate:"required,weekday"`
	LessonNumber   int    `json:"lessonNumber" validate:"gte=1,lte=50"`
	LessonID       *int   `json:"lessonId" validate:"required"`
	Cabinet        string `json:"cabinet" validate:"max=50"`
	AdditionalInfo string `json:"additionalInfo" validate:"max=500"`
}

// UpdateSpecificLesson fields are all optional; day and numbers are checked
// by the schedule usecase once resolved.
type UpdateSpecificLesson struct {
	Day            *string `json:"day"`
	LessonNumber   *int    `json:"lessonNumber"`
	LessonID       *int    `json:"lessonId"`
	Cabinet        *string `json:"cabinet"`
	AdditionalInfo *string `json:"additionalInfo"`
}
