package requests

type UpdateTimeScheme struct {
	Start                   *string `json:"start"`
	LessonLength            *int    `json:"lessonLength"`
	Breaks                  []int   `json:"breaks"`
	DefaultBreak            *int    `json:"defaultBreak"`
	CoupleMiddleBreakLength *int    `json:"coupleMiddleBreakLength"`
	IsPairMode              *bool   `json:"isPairMode"`
}

type BreakLength struct {
	Length int `json:"length"`
}
