package serviceImp

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"agriedu/entities"
	"agriedu/pkg/catalog"
	"agriedu/pkg/lesson/service"
)

type lessonSvc struct{}

func NewLessonService() service.LessonService { return &lessonSvc{} }

func (s *lessonSvc) List(category, level string, limit int) entities.LessonPage {
	if category == "" {
		category = catalog.DefaultCategory
	}
	if limit <= 0 {
		limit = service.DefaultLimit
	}

	lessons := filterLevel(catalog.Lessons(category), level)
	if len(lessons) > limit {
		lessons = lessons[:limit]
	}
	return entities.LessonPage{Category: category, Count: len(lessons), Lessons: lessons}
}

func filterLevel(in []entities.Lesson, level string) []entities.Lesson {
	if level == "" {
		return in
	}
	out := make([]entities.Lesson, 0, len(in))
	for _, l := range in {
		if l.Level == level {
			out = append(out, l)
		}
	}
	return out
}

var exportHeader = []any{"ID", "Title", "Description", "Duration", "Level", "Topics", "Video URL"}

func (s *lessonSvc) ExportXLSX(category, level string) (*bytes.Buffer, error) {
	categories := catalog.Categories()
	if category != "" {
		categories = []string{category}
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, cat := range categories {
		sheet := sheetName(cat)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("new sheet %s: %w", sheet, err)
		}

		if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
			return nil, fmt.Errorf("header %s: %w", sheet, err)
		}
		for r, l := range filterLevel(catalog.Lessons(cat), level) {
			cell, _ := excelize.CoordinatesToCellName(1, r+2)
			row := []any{l.ID, l.Title, l.Description, l.Duration, l.Level, strings.Join(l.Topics, ", "), l.VideoURL}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return nil, fmt.Errorf("row %s:%d: %w", sheet, r+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

// sheetName trims to Excel's 31 rune limit and strips forbidden characters.
func sheetName(category string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, category)
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	if name == "" {
		name = "lessons"
	}
	return name
}
