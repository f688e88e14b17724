package responses

type Status struct {
	Kind             string          `json:"kind"`
	CountdownSeconds int             `json:"countdownSeconds"`
	Countdown        string          `json:"countdown"`
	Now              string          `json:"now"`
	Day              string          `json:"day"`
	SpecificLesson   *SpecificLesson `json:"specificLesson,omitempty"`
	Lesson           *Lesson         `json:"lesson,omitempty"`
}

type HomeworkDue struct {
	LessonID int    `json:"lessonId"`
	Name     string `json:"name"`
	Teacher  string `json:"teacher"`
	Homework string `json:"homework"`
	DueDays  int    `json:"dueDays"`
}

type Overview struct {
	Status      Status        `json:"status"`
	DisplayDay  string        `json:"displayDay"`
	IsTomorrow  bool          `json:"isTomorrow"`
	Grid        DayGrid       `json:"grid"`
	HomeworkDue []HomeworkDue `json:"homeworkDue"`
}
