package livestatus

import (
	"schoolbell-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDueList(t *testing.T) {
	scheme := models.DefaultTimeScheme()
	lessons := []models.Lesson{
		{ID: 0, Name: "Math", Homework: "ex. 1"},
		{ID: 1, Name: "Physics", Homework: "p. 12"},
		{ID: 2, Name: "History", Homework: "essay"},
		{ID: 3, Name: "Art", Homework: "sketch"},
		{ID: 4, Name: "Music"},
		{ID: 5, Name: "Biology", Homework: "   "},
		{ID: 6, Name: "Chemistry", Homework: "lab"},
	}
	entries := []models.SpecificLesson{
		// Math only this morning.
		{ID: 0, Day: models.Monday, LessonNumber: 1, LessonID: 0},
		// Physics later today, period 5 starts at 13:00.
		{ID: 1, Day: models.Monday, LessonNumber: 5, LessonID: 1},
		{ID: 2, Day: models.Wednesday, LessonNumber: 1, LessonID: 2},
		{ID: 3, Day: models.Sunday, LessonNumber: 1, LessonID: 3},
		{ID: 4, Day: models.Tuesday, LessonNumber: 1, LessonID: 4},
		{ID: 5, Day: models.Tuesday, LessonNumber: 2, LessonID: 5},
		{ID: 6, Day: models.Monday, LessonNumber: 2, LessonID: 6},
		{ID: 7, Day: models.Tuesday, LessonNumber: 3, LessonID: 6},
	}
	now := models.NewClockTime(12, 0, 0)

	due := DueList(lessons, models.Monday, now, entries, scheme)

	require.Len(t, due, 4)
	assert.Equal(t, 1, due[0].Lesson.ID)
	assert.Equal(t, 0, due[0].DueDays)
	assert.Equal(t, 6, due[1].Lesson.ID)
	assert.Equal(t, 1, due[1].DueDays)
	assert.Equal(t, 2, due[2].Lesson.ID)
	assert.Equal(t, 2, due[2].DueDays)
	assert.Equal(t, 3, due[3].Lesson.ID)
	assert.Equal(t, 6, due[3].DueDays)
}

func TestDaysUntilNextLesson(t *testing.T) {
	scheme := models.DefaultTimeScheme()
	entries := []models.SpecificLesson{
		{ID: 0, Day: models.Saturday, LessonNumber: 1, LessonID: 0},
		{ID: 1, Day: models.Monday, LessonNumber: 1, LessonID: 1},
	}

	t.Run("Wraps Past Sunday", func(t *testing.T) {
		assert.Equal(t, 2, DaysUntilNextLesson(1, models.Saturday, models.NewClockTime(8, 0, 0), entries, scheme))
	})

	t.Run("Start Instant Counts As Passed", func(t *testing.T) {
		assert.Equal(t, -1, DaysUntilNextLesson(0, models.Saturday, models.NewClockTime(9, 0, 0), entries, scheme))
		assert.Equal(t, 0, DaysUntilNextLesson(0, models.Saturday, models.NewClockTime(8, 59, 59), entries, scheme))
	})

	t.Run("Unscheduled Lesson", func(t *testing.T) {
		assert.Equal(t, -1, DaysUntilNextLesson(9, models.Monday, 0, entries, scheme))
	})
}
