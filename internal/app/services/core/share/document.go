package share

import (
	"errors"
	"fmt"
	"math"
	"schoolbell-service/internal/app/models"
	"schoolbell-service/internal/app/services/core/timescheme"
	"schoolbell-service/internal/pkg/constvars"
	"schoolbell-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Document is the shareable snapshot of a schedule. Homework is personal and
// never leaves the installation.
type Document struct {
	Lessons         []LessonRecord          `json:"lessons"`
	SpecificLessons []models.SpecificLesson `json:"specificLessons"`
	TimeScheme      models.TimeScheme       `json:"timeScheme"`
}

type LessonRecord struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Teacher string `json:"teacher"`
}

func (r LessonRecord) IntoLesson() models.Lesson {
	return models.Lesson{ID: r.ID, Name: r.Name, Teacher: r.Teacher}
}

var errWrongType = errors.New("missing or wrong type")

type fieldKind int

const (
	kindString fieldKind = iota
	kindInteger
	kindBool
	kindArray
	kindObject
)

type fieldRule struct {
	name string
	kind fieldKind
}

var (
	lessonRules = []fieldRule{
		{"id", kindInteger},
		{"name", kindString},
		{"teacher", kindString},
	}
	specificLessonRules = []fieldRule{
		{"id", kindInteger},
		{"day", kindString},
		{"lessonNumber", kindInteger},
		{"lessonId", kindInteger},
		{"cabinet", kindString},
		{"additionalInfo", kindString},
	}
	timeSchemeRules = []fieldRule{
		{"start", kindString},
		{"lessonLength", kindInteger},
		{"breaks", kindArray},
		{"defaultBreak", kindInteger},
		{"coupleMiddleBreakLength", kindInteger},
		{"isPairMode", kindBool},
	}
)

// ParseDocument checks every field of payload and decodes it. The returned
// error names the first offending path, e.g. specificLessons.3.lessonNumber.
func ParseDocument(payload []byte) (Document, error) {
	if !gjson.ValidBytes(payload) {
		return Document{}, exceptions.ErrImportFormat(errors.New("payload is not valid JSON"), "$")
	}
	root := gjson.ParseBytes(payload)
	if !root.IsObject() {
		return Document{}, exceptions.ErrImportFormat(errWrongType, "$")
	}

	err := checkRecords(root, "lessons", lessonRules)
	if err != nil {
		return Document{}, err
	}
	err = checkRecords(root, "specificLessons", specificLessonRules)
	if err != nil {
		return Document{}, err
	}
	for i, entry := range root.Get("specificLessons").Array() {
		day := entry.Get("day").String()
		if _, err := models.ParseWeekday(day); err != nil {
			return Document{}, exceptions.ErrImportFormat(err, fmt.Sprintf("specificLessons.%d.day", i))
		}
	}
	scheme := root.Get("timeScheme")
	if !scheme.IsObject() {
		return Document{}, exceptions.ErrImportFormat(errWrongType, "timeScheme")
	}
	err = checkFields(scheme, "timeScheme", timeSchemeRules)
	if err != nil {
		return Document{}, err
	}
	if _, err := models.ParseClockTime(scheme.Get("start").String()); err != nil {
		return Document{}, exceptions.ErrImportFormat(err, "timeScheme.start")
	}
	for i, length := range scheme.Get("breaks").Array() {
		if !isInteger(length) {
			return Document{}, exceptions.ErrImportFormat(errWrongType, fmt.Sprintf("timeScheme.breaks.%d", i))
		}
	}

	var document Document
	err = json.Unmarshal(payload, &document)
	if err != nil {
		return Document{}, exceptions.ErrImportFormat(err, "$")
	}

	err = checkConsistency(document)
	if err != nil {
		return Document{}, err
	}
	return document, nil
}

func checkRecords(root gjson.Result, collection string, rules []fieldRule) error {
	records := root.Get(collection)
	if !records.IsArray() {
		return exceptions.ErrImportFormat(errWrongType, collection)
	}
	for i, record := range records.Array() {
		path := fmt.Sprintf("%s.%d", collection, i)
		if !record.IsObject() {
			return exceptions.ErrImportFormat(errWrongType, path)
		}
		err := checkFields(record, path, rules)
		if err != nil {
			return err
		}
	}
	return nil
}

func checkFields(object gjson.Result, path string, rules []fieldRule) error {
	for _, rule := range rules {
		value := object.Get(rule.name)
		if !matches(value, rule.kind) {
			return exceptions.ErrImportFormat(errWrongType, path+"."+rule.name)
		}
	}
	return nil
}

func matches(value gjson.Result, kind fieldKind) bool {
	switch kind {
	case kindString:
		return value.Type == gjson.String
	case kindInteger:
		return isInteger(value)
	case kindBool:
		return value.IsBool()
	case kindArray:
		return value.IsArray()
	case kindObject:
		return value.IsObject()
	}
	return false
}

func isInteger(value gjson.Result) bool {
	return value.Type == gjson.Number && value.Num == math.Trunc(value.Num)
}

// checkConsistency rejects documents whose records could not coexist in the
// store: repeated ids, taken slots and impossible timings.
func checkConsistency(document Document) error {
	lessonIDs := make(map[int]struct{}, len(document.Lessons))
	for i, lesson := range document.Lessons {
		if lesson.ID < 0 {
			return exceptions.ErrImportFormat(errors.New("negative id"), fmt.Sprintf("lessons.%d.id", i))
		}
		if _, seen := lessonIDs[lesson.ID]; seen {
			return exceptions.ErrImportFormat(errors.New("duplicate id"), fmt.Sprintf("lessons.%d.id", i))
		}
		lessonIDs[lesson.ID] = struct{}{}
	}

	type slot struct {
		day    models.Weekday
		number int
	}
	entryIDs := make(map[int]struct{}, len(document.SpecificLessons))
	slots := make(map[slot]struct{}, len(document.SpecificLessons))
	for i, entry := range document.SpecificLessons {
		if entry.ID < 0 {
			return exceptions.ErrImportFormat(errors.New("negative id"), fmt.Sprintf("specificLessons.%d.id", i))
		}
		if _, seen := entryIDs[entry.ID]; seen {
			return exceptions.ErrImportFormat(errors.New("duplicate id"), fmt.Sprintf("specificLessons.%d.id", i))
		}
		entryIDs[entry.ID] = struct{}{}

		if entry.LessonNumber < 1 || entry.LessonNumber > constvars.MaxLessonNumber {
			return exceptions.ErrImportFormat(exceptions.ErrInvalidLessonNumber(entry.LessonNumber), fmt.Sprintf("specificLessons.%d.lessonNumber", i))
		}
		key := slot{day: entry.Day, number: entry.LessonNumber}
		if _, taken := slots[key]; taken {
			return exceptions.ErrImportFormat(errors.New("slot already taken"), fmt.Sprintf("specificLessons.%d.lessonNumber", i))
		}
		slots[key] = struct{}{}
	}

	err := timescheme.Validate(document.TimeScheme)
	if err != nil {
		return exceptions.ErrImportFormat(err, "timeScheme")
	}
	return nil
}

// BuildDocument assembles the export snapshot. Homework is dropped.
func BuildDocument(lessons []models.Lesson, entries []models.SpecificLesson, scheme models.TimeScheme) Document {
	document := Document{
		Lessons:         make([]LessonRecord, 0, len(lessons)),
		SpecificLessons: append([]models.SpecificLesson{}, entries...),
		TimeScheme:      scheme.Clone(),
	}
	for _, lesson := range lessons {
		document.Lessons = append(document.Lessons, LessonRecord{ID: lesson.ID, Name: lesson.Name, Teacher: lesson.Teacher})
	}
	if document.TimeScheme.Breaks == nil {
		document.TimeScheme.Breaks = []int{}
	}
	return document
}
