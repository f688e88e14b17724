package responses

type Lesson struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Teacher  string `json:"teacher"`
	Homework string `json:"homework"`
}

type SpecificLesson struct {
	ID             int    `json:"id"`
	Day            string `json:"day"`
	LessonNumber   int    `json:"lessonNumber"`
	LessonID       int    `json:"lessonId"`
	Cabinet        string `json:"cabinet"`
	AdditionalInfo string `json:"additionalInfo"`
}
