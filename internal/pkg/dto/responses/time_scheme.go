package responses

type TimeScheme struct {
	Start                   string `json:"start"`
	LessonLength            int    `json:"lessonLength"`
	Breaks                  []int  `json:"breaks"`
	DefaultBreak            int    `json:"defaultBreak"`
	CoupleMiddleBreakLength int    `json:"coupleMiddleBreakLength"`
	IsPairMode              bool   `json:"isPairMode"`
}

type Period struct {
	LessonNumber   int    `json:"lessonNumber"`
	Start          string `json:"start"`
	FirstHalfEnd   string `json:"firstHalfEnd"`
	MiddleBreakEnd string `json:"middleBreakEnd"`
	SecondHalfEnd  string `json:"secondHalfEnd"`
	End            string `json:"end"`
	BreakAfter     int    `json:"breakAfter"`
}

type GridPeriod struct {
	Period
	SpecificLesson SpecificLesson `json:"specificLesson"`
	Lesson         *Lesson        `json:"lesson,omitempty"`
}

type DayGrid struct {
	Day     string       `json:"day"`
	Periods []GridPeriod `json:"periods"`
}
