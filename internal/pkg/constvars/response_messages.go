package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	GetLessonsSuccessMessage           = "get lessons successfully"
	GetLessonSuccessMessage            = "get lesson successfully"
	CreateLessonSuccessMessage         = "lesson created successfully"
	UpdateLessonSuccessMessage         = "lesson updated successfully"
	UpdateHomeworkSuccessMessage       = "homework updated successfully"
	DeleteLessonSuccessMessage         = "lesson deleted successfully"
	GetSpecificLessonsSuccessMessage   = "get timetable entries successfully"
	CreateSpecificLessonSuccessMessage = "timetable entry created successfully"
	UpdateSpecificLessonSuccessMessage = "timetable entry updated successfully"
	DeleteSpecificLessonSuccessMessage = "timetable entry deleted successfully"
	GetTimeSchemeSuccessMessage        = "get time scheme successfully"
	UpdateTimeSchemeSuccessMessage     = "time scheme updated successfully"
	ResetTimeSchemeSuccessMessage      = "time scheme reset to default"
	GetDayGridSuccessMessage           = "get day grid successfully"
	GetPeriodSuccessMessage            = "get period boundaries successfully"
	GetStatusSuccessMessage            = "get status successfully"
	GetOverviewSuccessMessage          = "get overview successfully"
	GetHomeworkDueSuccessMessage       = "get homework due list successfully"
	ExportSuccessMessage               = "export created successfully"
	ExportArchiveSuccessMessage        = "export archive uploaded successfully"
	ImportSuccessMessage               = "import finished successfully"
)
