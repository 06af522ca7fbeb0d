package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jochebedafua/icd-diagnosis-api/internal/database"
	"github.com/jochebedafua/icd-diagnosis-api/internal/models"

	"gorm.io/gorm"
)

// CodeFilter holds the optional list filters. Filters combine with AND;
// the search term matches any of the three text fields.
type CodeFilter struct {
	Version         string
	IncludeInactive bool
	CategoryID      *uint
	Search          string
}

type CodeRepository interface {
	Create(ctx context.Context, code *models.Code) error
	Save(ctx context.Context, code *models.Code) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Code, error)
	FindByFullCode(ctx context.Context, fullCode, version string) (*models.Code, error)
	List(ctx context.Context, filter CodeFilter, offset, limit int) ([]models.Code, int64, error)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}

type codeRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewCodeRepository(db *database.Database) CodeRepository {
	return &codeRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *codeRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *codeRepository) Create(ctx context.Context, code *models.Code) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(code).Error
}

func (r *codeRepository) Save(ctx context.Context, code *models.Code) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(code).Error
}

func (r *codeRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Code{}, id).Error
}

func (r *codeRepository) FindByID(ctx context.Context, id uint) (*models.Code, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var code models.Code
	err := r.db.WithContext(ctx).Preload("Category").First(&code, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &code, nil
}

func (r *codeRepository) FindByFullCode(ctx context.Context, fullCode, version string) (*models.Code, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var code models.Code
	err := r.db.WithContext(ctx).
		Where("full_code = ? AND version = ?", fullCode, version).
		First(&code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &code, nil
}

// List applies the filter set and returns one window of the ordered result
// plus the total count over the whole filtered set. Ordering is fixed to
// (version, full_code) ascending; there is no caller-supplied sort.
func (r *codeRepository) List(ctx context.Context, filter CodeFilter, offset, limit int) ([]models.Code, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var codes []models.Code
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Code{})

	if filter.Version != "" {
		query = query.Where("version = ?", filter.Version)
	}
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := "%" + EscapeLike(filter.Search) + "%"
		query = query.Where(
			"full_code ILIKE ? OR short_description ILIKE ? OR long_description ILIKE ?",
			pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Category").
		Order("version ASC, full_code ASC").
		Offset(offset).
		Limit(limit).
		Find(&codes).Error
	if err != nil {
		return nil, 0, err
	}

	return codes, total, nil
}

func (r *codeRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Code{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

// EscapeLike neutralizes LIKE metacharacters so a search term always matches
// as a literal substring.
func EscapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}
