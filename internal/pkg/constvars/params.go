package constvars

const (
	URLParamLessonID         = "lesson_id"
	URLParamSpecificLessonID = "specific_lesson_id"
	URLParamLessonNumber     = "lesson_number"
	URLParamBreakIndex       = "break_index"
)

const (
	QueryParamsDay      = "day"
	QueryParamsFileName = "file_name"
	FormFieldFile       = "file"
)
