package service

import (
	"bytes"

	"agriedu/entities"
)

const DefaultLimit = 10

type LessonService interface {
	// List filters a category by exact level (when non-empty) and truncates
	// to limit. Unknown categories give an empty page, never an error.
	List(category, level string, limit int) entities.LessonPage
	// ExportXLSX writes one sheet per category; empty category means all.
	ExportXLSX(category, level string) (*bytes.Buffer, error)
}
