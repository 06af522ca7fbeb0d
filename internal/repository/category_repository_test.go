package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoryColumns() []string {
	return []string{"id", "code", "title", "version"}
}

func TestCategoryRepositoryDelete_RefusedWhileReferenced(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "diagnosis_codes" WHERE category_id = $1`)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCategoryReferenced))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepositoryDelete_Unreferenced(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "diagnosis_codes" WHERE category_id = $1`)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`DELETE FROM "diagnosis_categories" WHERE "diagnosis_categories"\."id" = \$1`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepositoryFindByCode(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "diagnosis_categories" WHERE code = \$1 AND version = \$2`).
		WithArgs("A00-A09", "ICD-10", 1).
		WillReturnRows(sqlmock.NewRows(categoryColumns()).
			AddRow(2, "A00-A09", "Intestinal infectious diseases", "ICD-10"))

	category, err := repo.FindByCode(context.Background(), "A00-A09", "ICD-10")
	require.NoError(t, err)
	require.NotNil(t, category)
	assert.Equal(t, uint(2), category.ID)

	mock.ExpectQuery(`SELECT \* FROM "diagnosis_categories" WHERE code = \$1 AND version = \$2`).
		WithArgs("XXX", "ICD-10", 1).
		WillReturnRows(sqlmock.NewRows(categoryColumns()))

	category, err = repo.FindByCode(context.Background(), "XXX", "ICD-10")
	require.NoError(t, err)
	assert.Nil(t, category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepositoryList_OrderedByVersionThenCode(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "diagnosis_categories" WHERE version = $1`)).
		WithArgs("ICD-9").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "diagnosis_categories" WHERE version = \$1 ORDER BY version ASC, code ASC LIMIT \$\d+`).
		WithArgs("ICD-9", 20).
		WillReturnRows(sqlmock.NewRows(categoryColumns()).
			AddRow(1, "001-009", "Intestinal infectious diseases", "ICD-9").
			AddRow(2, "010-018", "Tuberculosis", "ICD-9"))

	categories, total, err := repo.List(context.Background(), CategoryFilter{Version: "ICD-9"}, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, categories, 2)
	assert.Equal(t, "001-009", categories[0].Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
