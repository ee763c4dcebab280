package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestList_DefaultCategory(t *testing.T) {
	page := NewLessonService().List("", "", 0)

	assert.Equal(t, "agriculture", page.Category)
	assert.Equal(t, 2, page.Count)
	assert.Len(t, page.Lessons, 2)
}

func TestList_LevelFilterIsExact(t *testing.T) {
	svc := NewLessonService()

	page := svc.List("agriculture", "Advanced", 10)
	require.Equal(t, 1, page.Count)
	for _, l := range page.Lessons {
		assert.Equal(t, "Advanced", l.Level)
	}

	assert.Equal(t, 0, svc.List("agriculture", "advanced", 10).Count, "case-sensitive")
	assert.Equal(t, 0, svc.List("agriculture", "Advanced ", 10).Count)
}

func TestList_Limit(t *testing.T) {
	page := NewLessonService().List("agriculture", "", 1)
	require.Len(t, page.Lessons, 1)
	assert.Equal(t, 1, page.Lessons[0].ID)
	assert.Equal(t, 1, page.Count)
}

func TestList_UnknownCategory(t *testing.T) {
	page := NewLessonService().List("nonexistent-category", "", 10)

	assert.Equal(t, "nonexistent-category", page.Category)
	assert.Equal(t, 0, page.Count)
	assert.NotNil(t, page.Lessons)
	assert.Empty(t, page.Lessons)
}

func TestList_Idempotent(t *testing.T) {
	svc := NewLessonService()
	assert.Equal(t, svc.List("ai_technology", "", 10), svc.List("ai_technology", "", 10))
}

func TestExportXLSX_AllCategories(t *testing.T) {
	buf, err := NewLessonService().ExportXLSX("", "")
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"agriculture", "ai_technology"}, f.GetSheetList())

	rows, err := f.GetRows("agriculture")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Title", rows[0][1])
	assert.Equal(t, "Fundamentals of modern crop production", rows[1][1])
	assert.Equal(t, "Soil science, Seed production, Irrigation, Plant protection", rows[1][5])
}

func TestExportXLSX_FilteredCategory(t *testing.T) {
	buf, err := NewLessonService().ExportXLSX("agriculture", "Advanced")
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"agriculture"}, f.GetSheetList())
	rows, err := f.GetRows("agriculture")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Advanced", rows[1][4])
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "a_b_c", sheetName("a/b?c"))
	assert.Equal(t, "lessons", sheetName(""))
	assert.Len(t, []rune(sheetName("a-very-long-category-name-that-exceeds-excel")), 31)
}
