package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jochebedafua/icd-diagnosis-api/internal/apperrors"
	"github.com/jochebedafua/icd-diagnosis-api/internal/models"
	"github.com/jochebedafua/icd-diagnosis-api/internal/pagination"
	"github.com/jochebedafua/icd-diagnosis-api/internal/repository"

	"github.com/sirupsen/logrus"
)

// Field names as they appear in request bodies.
const (
	FieldCategory         = "category"
	FieldSubCode          = "sub_code"
	FieldFullCode         = "full_code"
	FieldShortDescription = "short_description"
	FieldLongDescription  = "long_description"
	FieldVersion          = "version"
	FieldIsActive         = "is_active"
	FieldValidFrom        = "valid_from"
	FieldValidTo          = "valid_to"
)

const (
	msgRequired        = "this field is required"
	msgBlank           = "this field may not be blank"
	msgInvalidCategory = "category does not exist"
	msgVersionMismatch = "category version must match diagnosis code version"
	msgDuplicateCode   = "diagnosis code with this full_code and version already exists"
)

// CodeInput is a sparse write payload. Pointer fields carry the value when
// the key appeared in the request; the presence set records which keys
// appeared at all, so a present-but-null category (clear the reference) is
// distinguishable from an absent one (leave it alone).
type CodeInput struct {
	CategoryID       *uint
	SubCode          *string
	FullCode         *string
	ShortDescription *string
	LongDescription  *string
	Version          *string
	IsActive         *bool
	ValidFrom        *time.Time
	ValidTo          *time.Time

	present map[string]bool
}

func (in *CodeInput) MarkPresent(field string) {
	if in.present == nil {
		in.present = make(map[string]bool)
	}
	in.present[field] = true
}

func (in *CodeInput) Has(field string) bool {
	return in.present[field]
}

type CodeService interface {
	ListCodes(ctx context.Context, filter repository.CodeFilter, page pagination.Params) ([]models.Code, int64, error)
	GetCode(ctx context.Context, id uint) (*models.Code, error)
	CreateCode(ctx context.Context, in *CodeInput) (*models.Code, error)
	UpdateCode(ctx context.Context, id uint, in *CodeInput) (*models.Code, error)
	PatchCode(ctx context.Context, id uint, in *CodeInput) (*models.Code, error)
	DeleteCode(ctx context.Context, id uint) error
}

type codeService struct {
	repo         repository.CodeRepository
	categoryRepo repository.CategoryRepository
	logger       *logrus.Logger
}

func NewCodeService(repo repository.CodeRepository, categoryRepo repository.CategoryRepository, logger *logrus.Logger) CodeService {
	return &codeService{
		repo:         repo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *codeService) ListCodes(ctx context.Context, filter repository.CodeFilter, page pagination.Params) ([]models.Code, int64, error) {
	codes, total, err := s.repo.List(ctx, filter, page.Offset(), page.PageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list diagnosis codes: %w", err)
	}
	if err := pagination.CheckRange(page, total); err != nil {
		return nil, 0, err
	}
	return codes, total, nil
}

func (s *codeService) GetCode(ctx context.Context, id uint) (*models.Code, error) {
	code, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load diagnosis code: %w", err)
	}
	if code == nil {
		return nil, apperrors.ErrNotFound
	}
	return code, nil
}

func (s *codeService) CreateCode(ctx context.Context, in *CodeInput) (*models.Code, error) {
	if err := s.validateFull(ctx, in, nil); err != nil {
		return nil, err
	}

	code := &models.Code{
		CategoryID:       in.CategoryID,
		SubCode:          *in.SubCode,
		FullCode:         *in.FullCode,
		ShortDescription: *in.ShortDescription,
		LongDescription:  *in.LongDescription,
		Version:          *in.Version,
		IsActive:         true,
		ValidFrom:        in.ValidFrom,
		ValidTo:          in.ValidTo,
	}
	if in.IsActive != nil {
		code.IsActive = *in.IsActive
	}

	if err := s.repo.Create(ctx, code); err != nil {
		return nil, fmt.Errorf("failed to create diagnosis code: %w", err)
	}
	return s.GetCode(ctx, code.ID)
}

// UpdateCode is a full replacement: optional fields omitted from the payload
// reset to their defaults.
func (s *codeService) UpdateCode(ctx context.Context, id uint, in *CodeInput) (*models.Code, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load diagnosis code: %w", err)
	}
	if existing == nil {
		return nil, apperrors.ErrNotFound
	}

	if err := s.validateFull(ctx, in, existing); err != nil {
		return nil, err
	}

	code := &models.Code{
		ID:               existing.ID,
		CategoryID:       in.CategoryID,
		SubCode:          *in.SubCode,
		FullCode:         *in.FullCode,
		ShortDescription: *in.ShortDescription,
		LongDescription:  *in.LongDescription,
		Version:          *in.Version,
		IsActive:         true,
		ValidFrom:        in.ValidFrom,
		ValidTo:          in.ValidTo,
		CreatedAt:        existing.CreatedAt,
	}
	if in.IsActive != nil {
		code.IsActive = *in.IsActive
	}

	if err := s.repo.Save(ctx, code); err != nil {
		return nil, fmt.Errorf("failed to update diagnosis code: %w", err)
	}
	return s.GetCode(ctx, code.ID)
}

// PatchCode touches only the fields present in the payload. The
// category/version cross-check fires only when both keys are in the same
// request; a patch flipping is_active alone never re-validates the pairing.
func (s *codeService) PatchCode(ctx context.Context, id uint, in *CodeInput) (*models.Code, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load diagnosis code: %w", err)
	}
	if existing == nil {
		return nil, apperrors.ErrNotFound
	}

	verr := &apperrors.ValidationError{}
	checkBlank(verr, in, FieldSubCode, in.SubCode)
	checkBlank(verr, in, FieldFullCode, in.FullCode)
	checkBlank(verr, in, FieldShortDescription, in.ShortDescription)
	checkBlank(verr, in, FieldLongDescription, in.LongDescription)
	checkBlank(verr, in, FieldVersion, in.Version)
	if !verr.Empty() {
		return nil, verr
	}

	if in.Has(FieldCategory) && in.CategoryID != nil {
		category, err := s.categoryRepo.FindByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve category: %w", err)
		}
		if category == nil {
			return nil, apperrors.NewValidation(FieldCategory, msgInvalidCategory)
		}
		if in.Has(FieldVersion) && category.Version != *in.Version {
			return nil, apperrors.NewValidation(FieldVersion, msgVersionMismatch)
		}
	}

	merged := *existing
	merged.Category = nil
	if in.Has(FieldCategory) {
		merged.CategoryID = in.CategoryID
	}
	if in.Has(FieldSubCode) {
		merged.SubCode = *in.SubCode
	}
	if in.Has(FieldFullCode) {
		merged.FullCode = *in.FullCode
	}
	if in.Has(FieldShortDescription) {
		merged.ShortDescription = *in.ShortDescription
	}
	if in.Has(FieldLongDescription) {
		merged.LongDescription = *in.LongDescription
	}
	if in.Has(FieldVersion) {
		merged.Version = *in.Version
	}
	if in.Has(FieldIsActive) && in.IsActive != nil {
		merged.IsActive = *in.IsActive
	}
	if in.Has(FieldValidFrom) {
		merged.ValidFrom = in.ValidFrom
	}
	if in.Has(FieldValidTo) {
		merged.ValidTo = in.ValidTo
	}

	if in.Has(FieldFullCode) || in.Has(FieldVersion) {
		if err := s.checkUnique(ctx, merged.FullCode, merged.Version, &merged.ID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, &merged); err != nil {
		return nil, fmt.Errorf("failed to update diagnosis code: %w", err)
	}
	return s.GetCode(ctx, merged.ID)
}

func (s *codeService) DeleteCode(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load diagnosis code: %w", err)
	}
	if existing == nil {
		return apperrors.ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete diagnosis code: %w", err)
	}
	return nil
}

// validateFull covers create and PUT: all required fields, category
// resolution, the version cross-check, and uniqueness. exclude is the record
// being replaced, if any.
func (s *codeService) validateFull(ctx context.Context, in *CodeInput, exclude *models.Code) error {
	verr := &apperrors.ValidationError{}
	checkRequired(verr, FieldSubCode, in.SubCode)
	checkRequired(verr, FieldFullCode, in.FullCode)
	checkRequired(verr, FieldShortDescription, in.ShortDescription)
	checkRequired(verr, FieldLongDescription, in.LongDescription)
	checkRequired(verr, FieldVersion, in.Version)
	if !verr.Empty() {
		return verr
	}

	if in.CategoryID != nil {
		category, err := s.categoryRepo.FindByID(ctx, *in.CategoryID)
		if err != nil {
			return fmt.Errorf("failed to resolve category: %w", err)
		}
		if category == nil {
			return apperrors.NewValidation(FieldCategory, msgInvalidCategory)
		}
		if category.Version != *in.Version {
			return apperrors.NewValidation(FieldVersion, msgVersionMismatch)
		}
	}

	var excludeID *uint
	if exclude != nil {
		excludeID = &exclude.ID
	}
	return s.checkUnique(ctx, *in.FullCode, *in.Version, excludeID)
}

func (s *codeService) checkUnique(ctx context.Context, fullCode, version string, excludeID *uint) error {
	existing, err := s.repo.FindByFullCode(ctx, fullCode, version)
	if err != nil {
		return fmt.Errorf("failed to check diagnosis code uniqueness: %w", err)
	}
	if existing != nil && (excludeID == nil || existing.ID != *excludeID) {
		return apperrors.NewValidation(FieldFullCode, msgDuplicateCode)
	}
	return nil
}

func checkRequired(verr *apperrors.ValidationError, field string, value *string) {
	if value == nil {
		verr.Add(field, msgRequired)
	} else if *value == "" {
		verr.Add(field, msgBlank)
	}
}

func checkBlank(verr *apperrors.ValidationError, in *CodeInput, field string, value *string) {
	if in.Has(field) && (value == nil || *value == "") {
		verr.Add(field, msgBlank)
	}
}
