package schedule

import (
	"schoolbell-service/internal/app/models"
	"sort"
	"sync"
)

// Store owns the in-memory lessons and timetable entries. It performs no
// validation and no I/O; callers check slot uniqueness and flush after
// mutating. Every accessor returns copies.
type Store struct {
	mu              sync.RWMutex
	lessons         []models.Lesson
	specificLessons []models.SpecificLesson
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Lessons() []models.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Lesson{}, s.lessons...)
}

func (s *Store) LessonByID(lessonID int) (models.Lesson, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	index := s.lessonIndex(lessonID)
	if index < 0 {
		return models.Lesson{}, false
	}
	return s.lessons[index], true
}

// AddLesson assigns the minimal free id and appends the lesson.
func (s *Store) AddLesson(lesson models.Lesson) models.Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int, len(s.lessons))
	for i, existing := range s.lessons {
		ids[i] = existing.ID
	}
	lesson.ID = minimalFreeID(ids)
	s.lessons = append(s.lessons, lesson)
	return lesson
}

// UpdateLesson applies patch to the lesson with lessonID. It reports false and
// changes nothing when the id is unknown.
func (s *Store) UpdateLesson(lessonID int, patch models.LessonPatch) (models.Lesson, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	index := s.lessonIndex(lessonID)
	if index < 0 {
		return models.Lesson{}, false
	}
	s.lessons[index].Apply(patch)
	return s.lessons[index], true
}

func (s *Store) UpdateHomework(lessonID int, homework string) (models.Lesson, bool) {
	return s.UpdateLesson(lessonID, models.LessonPatch{Homework: &homework})
}

// DeleteLesson removes the lesson only; entries pointing at it stay until
// CleanInvalid runs.
func (s *Store) DeleteLesson(lessonID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	index := s.lessonIndex(lessonID)
	if index < 0 {
		return false
	}
	s.lessons = append(s.lessons[:index], s.lessons[index+1:]...)
	return true
}

func (s *Store) ReplaceLessons(lessons []models.Lesson) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lessons = append([]models.Lesson{}, lessons...)
}

func (s *Store) SpecificLessons() []models.SpecificLesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.SpecificLesson{}, s.specificLessons...)
}

func (s *Store) SpecificLessonByID(specificLessonID int) (models.SpecificLesson, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	index := s.specificLessonIndex(specificLessonID)
	if index < 0 {
		return models.SpecificLesson{}, false
	}
	return s.specificLessons[index], true
}

// SpecificLessonsForDay returns the day's entries ordered by lesson number.
func (s *Store) SpecificLessonsForDay(day models.Weekday) []models.SpecificLesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []models.SpecificLesson
	for _, entry := range s.specificLessons {
		if entry.Day == day {
			result = append(result, entry)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LessonNumber < result[j].LessonNumber
	})
	return result
}

// SpecificLessonAt finds the entry occupying day and lessonNumber.
func (s *Store) SpecificLessonAt(day models.Weekday, lessonNumber int) (models.SpecificLesson, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, entry := range s.specificLessons {
		if entry.SameSlot(day, lessonNumber) {
			return entry, true
		}
	}
	return models.SpecificLesson{}, false
}

func (s *Store) AddSpecificLesson(entry models.SpecificLesson) models.SpecificLesson {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int, len(s.specificLessons))
	for i, existing := range s.specificLessons {
		ids[i] = existing.ID
	}
	entry.ID = minimalFreeID(ids)
	s.specificLessons = append(s.specificLessons, entry)
	return entry
}

func (s *Store) UpdateSpecificLesson(specificLessonID int, patch models.SpecificLessonPatch) (models.SpecificLesson, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	index := s.specificLessonIndex(specificLessonID)
	if index < 0 {
		return models.SpecificLesson{}, false
	}
	s.specificLessons[index].Apply(patch)
	return s.specificLessons[index], true
}

func (s *Store) DeleteSpecificLesson(specificLessonID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	index := s.specificLessonIndex(specificLessonID)
	if index < 0 {
		return false
	}
	s.specificLessons = append(s.specificLessons[:index], s.specificLessons[index+1:]...)
	return true
}

func (s *Store) ReplaceSpecificLessons(entries []models.SpecificLesson) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.specificLessons = append([]models.SpecificLesson{}, entries...)
}

// CleanInvalid drops entries whose lesson no longer exists and returns how
// many were removed.
func (s *Store) CleanInvalid() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	known := make(map[int]struct{}, len(s.lessons))
	for _, lesson := range s.lessons {
		known[lesson.ID] = struct{}{}
	}

	kept := s.specificLessons[:0]
	for _, entry := range s.specificLessons {
		if _, ok := known[entry.LessonID]; ok {
			kept = append(kept, entry)
		}
	}
	removed := len(s.specificLessons) - len(kept)
	s.specificLessons = kept
	return removed
}

func (s *Store) lessonIndex(lessonID int) int {
	for i, lesson := range s.lessons {
		if lesson.ID == lessonID {
			return i
		}
	}
	return -1
}

func (s *Store) specificLessonIndex(specificLessonID int) int {
	for i, entry := range s.specificLessons {
		if entry.ID == specificLessonID {
			return i
		}
	}
	return -1
}

// minimalFreeID returns the smallest non-negative integer missing from ids.
func minimalFreeID(ids []int) int {
	used := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		used[id] = struct{}{}
	}
	candidate := 0
	for {
		if _, taken := used[candidate]; !taken {
			return candidate
		}
		candidate++
	}
}
