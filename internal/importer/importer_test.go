package importer

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jochebedafua/icd-diagnosis-api/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCategoryRows(t *testing.T) {
	input := "category_code,category_title\n" +
		"A00-A09,Intestinal infectious diseases\n" +
		"A15-A19,Tuberculosis\n"

	rows, err := ReadCategoryRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, CategoryRow{Code: "A00-A09", Title: "Intestinal infectious diseases"}, rows[0])
	assert.Equal(t, CategoryRow{Code: "A15-A19", Title: "Tuberculosis"}, rows[1])
}

func TestReadCategoryRows_ColumnOrderDoesNotMatter(t *testing.T) {
	input := "category_title,category_code\n" +
		"Tuberculosis,A15-A19\n"

	rows, err := ReadCategoryRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A15-A19", rows[0].Code)
	assert.Equal(t, "Tuberculosis", rows[0].Title)
}

func TestReadCategoryRows_MissingColumnAborts(t *testing.T) {
	input := "category_code,title\nA00-A09,Whatever\n"

	_, err := ReadCategoryRows(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required column "category_title"`)
}

func TestReadCodeRows(t *testing.T) {
	input := "category_code,sub_code,full_code,short_description,long_description\n" +
		"A00-A09,1,A001,Cholera eltor,Cholera due to Vibrio cholerae el tor\n"

	rows, err := ReadCodeRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, CodeRow{
		CategoryCode:     "A00-A09",
		SubCode:          "1",
		FullCode:         "A001",
		ShortDescription: "Cholera eltor",
		LongDescription:  "Cholera due to Vibrio cholerae el tor",
	}, rows[0])
}

func TestReadCodeRows_MissingColumnAborts(t *testing.T) {
	input := "category_code,sub_code,full_code,short_description\n"

	_, err := ReadCodeRows(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required column "long_description"`)
}

func TestReadCodeRows_MalformedRowAborts(t *testing.T) {
	input := "category_code,sub_code,full_code,short_description,long_description\n" +
		"A00-A09,1,A001,short\n"

	_, err := ReadCodeRows(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

// fakeCatalog records upserts in memory so apply's counting and skip
// behavior can be checked without a database.
type fakeCatalog struct {
	categories map[string]*models.Category
	codes      map[string]bool
	nextID     uint
	failOn     string
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		categories: make(map[string]*models.Category),
		codes:      make(map[string]bool),
	}
}

func (f *fakeCatalog) key(code, version string) string {
	return version + "|" + code
}

func (f *fakeCatalog) UpsertCategory(_ context.Context, row CategoryRow, version string) (bool, error) {
	key := f.key(row.Code, version)
	if existing, ok := f.categories[key]; ok {
		existing.Title = row.Title
		return false, nil
	}
	f.nextID++
	f.categories[key] = &models.Category{ID: f.nextID, Code: row.Code, Title: row.Title, Version: version}
	return true, nil
}

func (f *fakeCatalog) ResolveCategory(_ context.Context, code, version string) (*models.Category, error) {
	return f.categories[f.key(code, version)], nil
}

func (f *fakeCatalog) UpsertCode(_ context.Context, row CodeRow, _ uint, version string) (bool, error) {
	if row.FullCode == f.failOn {
		return false, errors.New("insert failed")
	}
	key := f.key(row.FullCode, version)
	if f.codes[key] {
		return false, nil
	}
	f.codes[key] = true
	return true, nil
}

func newTestImporter() *Importer {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &Importer{logger: logger}
}

func TestApply_CountsCreatesUpdatesAndSkips(t *testing.T) {
	im := newTestImporter()
	cat := newFakeCatalog()

	categories := []CategoryRow{
		{Code: "A00-A09", Title: "Intestinal infectious diseases"},
		{Code: "A15-A19", Title: "Tuberculosis"},
	}
	codes := []CodeRow{
		{CategoryCode: "A00-A09", FullCode: "A000", ShortDescription: "s", LongDescription: "l"},
		{CategoryCode: "A00-A09", FullCode: "A001", ShortDescription: "s", LongDescription: "l"},
		{CategoryCode: "ZZZ", FullCode: "Z999", ShortDescription: "s", LongDescription: "l"},
	}

	summary := &Summary{Version: "ICD-10"}
	require.NoError(t, im.apply(context.Background(), cat, "ICD-10", categories, codes, summary))

	assert.Equal(t, 2, summary.CategoriesCreated)
	assert.Equal(t, 0, summary.CategoriesUpdated)
	assert.Equal(t, 2, summary.CodesCreated)
	assert.Equal(t, 0, summary.CodesUpdated)
	assert.Equal(t, 1, summary.CodesSkipped)
}

func TestApply_RerunIsIdempotent(t *testing.T) {
	im := newTestImporter()
	cat := newFakeCatalog()

	categories := []CategoryRow{{Code: "A00-A09", Title: "Intestinal infectious diseases"}}
	codes := []CodeRow{{CategoryCode: "A00-A09", FullCode: "A000", ShortDescription: "s", LongDescription: "l"}}

	first := &Summary{Version: "ICD-10"}
	require.NoError(t, im.apply(context.Background(), cat, "ICD-10", categories, codes, first))
	assert.Equal(t, 1, first.CategoriesCreated)
	assert.Equal(t, 1, first.CodesCreated)

	second := &Summary{Version: "ICD-10"}
	require.NoError(t, im.apply(context.Background(), cat, "ICD-10", categories, codes, second))
	assert.Equal(t, 0, second.CategoriesCreated)
	assert.Equal(t, 1, second.CategoriesUpdated)
	assert.Equal(t, 0, second.CodesCreated)
	assert.Equal(t, 1, second.CodesUpdated)
}

func TestApply_UpsertErrorAborts(t *testing.T) {
	im := newTestImporter()
	cat := newFakeCatalog()
	cat.failOn = "A001"

	categories := []CategoryRow{{Code: "A00-A09", Title: "Intestinal infectious diseases"}}
	codes := []CodeRow{
		{CategoryCode: "A00-A09", FullCode: "A000", ShortDescription: "s", LongDescription: "l"},
		{CategoryCode: "A00-A09", FullCode: "A001", ShortDescription: "s", LongDescription: "l"},
	}

	summary := &Summary{Version: "ICD-10"}
	err := im.apply(context.Background(), cat, "ICD-10", categories, codes, summary)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "A001")
}

func TestApply_SameVersionOnlyResolvesOwnCategories(t *testing.T) {
	im := newTestImporter()
	cat := newFakeCatalog()

	_, err := cat.UpsertCategory(context.Background(), CategoryRow{Code: "001-009", Title: "Intestinal"}, "ICD-9")
	require.NoError(t, err)

	codes := []CodeRow{{CategoryCode: "001-009", FullCode: "0010", ShortDescription: "s", LongDescription: "l"}}
	summary := &Summary{Version: "ICD-10"}
	require.NoError(t, im.apply(context.Background(), cat, "ICD-10", nil, codes, summary))
	assert.Equal(t, 1, summary.CodesSkipped)
	assert.Equal(t, 0, summary.CodesCreated)
}
