package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jochebedafua/icd-diagnosis-api/internal/apperrors"
	"github.com/jochebedafua/icd-diagnosis-api/internal/models"
	"github.com/jochebedafua/icd-diagnosis-api/internal/pagination"
	"github.com/jochebedafua/icd-diagnosis-api/internal/repository"

	"github.com/sirupsen/logrus"
)

const (
	FieldCode  = "code"
	FieldTitle = "title"

	msgDuplicateCategory = "category with this code and version already exists"
	msgCategoryProtected = "Cannot delete category with associated diagnosis codes"
)

// CategoryInput is the write payload for a category. Categories have no
// optional fields, so no presence tracking is needed here.
type CategoryInput struct {
	Code    *string
	Title   *string
	Version *string
}

type CategoryService interface {
	ListCategories(ctx context.Context, filter repository.CategoryFilter, page pagination.Params) ([]models.Category, int64, error)
	GetCategory(ctx context.Context, id uint) (*models.Category, error)
	CreateCategory(ctx context.Context, in *CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uint, in *CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
}

type categoryService struct {
	repo   repository.CategoryRepository
	logger *logrus.Logger
}

func NewCategoryService(repo repository.CategoryRepository, logger *logrus.Logger) CategoryService {
	return &categoryService{
		repo:   repo,
		logger: logger,
	}
}

func (s *categoryService) ListCategories(ctx context.Context, filter repository.CategoryFilter, page pagination.Params) ([]models.Category, int64, error) {
	categories, total, err := s.repo.List(ctx, filter, page.Offset(), page.PageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}
	if err := pagination.CheckRange(page, total); err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load category: %w", err)
	}
	if category == nil {
		return nil, apperrors.ErrNotFound
	}
	return category, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, in *CategoryInput) (*models.Category, error) {
	if err := s.validate(ctx, in, nil); err != nil {
		return nil, err
	}

	category := &models.Category{
		Code:    *in.Code,
		Title:   *in.Title,
		Version: *in.Version,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uint, in *CategoryInput) (*models.Category, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load category: %w", err)
	}
	if existing == nil {
		return nil, apperrors.ErrNotFound
	}

	if err := s.validate(ctx, in, existing); err != nil {
		return nil, err
	}

	existing.Code = *in.Code
	existing.Title = *in.Title
	existing.Version = *in.Version
	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return existing, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load category: %w", err)
	}
	if existing == nil {
		return apperrors.ErrNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryReferenced) {
			return &apperrors.ProtectedError{Message: msgCategoryProtected}
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func (s *categoryService) validate(ctx context.Context, in *CategoryInput, exclude *models.Category) error {
	verr := &apperrors.ValidationError{}
	checkRequired(verr, FieldCode, in.Code)
	checkRequired(verr, FieldTitle, in.Title)
	checkRequired(verr, FieldVersion, in.Version)
	if !verr.Empty() {
		return verr
	}

	existing, err := s.repo.FindByCode(ctx, *in.Code, *in.Version)
	if err != nil {
		return fmt.Errorf("failed to check category uniqueness: %w", err)
	}
	if existing != nil && (exclude == nil || existing.ID != exclude.ID) {
		return apperrors.NewValidation(FieldCode, msgDuplicateCategory)
	}
	return nil
}
