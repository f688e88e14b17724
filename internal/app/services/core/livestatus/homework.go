package livestatus

import (
	"schoolbell-service/internal/app/models"
	"schoolbell-service/internal/app/services/core/timescheme"
	"sort"
)

// DaysUntilNextLesson counts the days until the lesson is next taught. It is
// 0 when the lesson still starts later today, the first matching offset of
// the coming six days otherwise, and -1 when no such occurrence exists. A
// lesson taught only today whose occurrence has already started is -1.
func DaysUntilNextLesson(lessonID int, today models.Weekday, now models.ClockTime, entries []models.SpecificLesson, scheme models.TimeScheme) int {
	for _, entry := range entries {
		if entry.LessonID != lessonID || entry.Day != today {
			continue
		}
		start, err := timescheme.StartOf(entry.LessonNumber, scheme)
		if err != nil {
			continue
		}
		if now.Before(start) {
			return 0
		}
	}

	for offset := 1; offset < models.DaysPerWeek; offset++ {
		day := today.Plus(offset)
		for _, entry := range entries {
			if entry.LessonID == lessonID && entry.Day == day {
				return offset
			}
		}
	}
	return -1
}

// DueList returns the lessons carrying homework, nearest first. Lessons that
// are not taught again within the week are left out.
func DueList(lessons []models.Lesson, today models.Weekday, now models.ClockTime, entries []models.SpecificLesson, scheme models.TimeScheme) []models.HomeworkDue {
	due := make([]models.HomeworkDue, 0)
	for _, lesson := range lessons {
		if !lesson.HasHomework() {
			continue
		}
		days := DaysUntilNextLesson(lesson.ID, today, now, entries, scheme)
		if days < 0 {
			continue
		}
		due = append(due, models.HomeworkDue{Lesson: lesson, DueDays: days})
	}

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].DueDays != due[j].DueDays {
			return due[i].DueDays < due[j].DueDays
		}
		return due[i].Lesson.ID < due[j].Lesson.ID
	})
	return due
}
