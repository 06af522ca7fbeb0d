package services

import (
	"context"
	"sort"
	"strings"

	"github.com/jochebedafua/icd-diagnosis-api/internal/models"
	"github.com/jochebedafua/icd-diagnosis-api/internal/repository"
)

// In-memory repository fakes. They mirror the store semantics the services
// rely on: not-found lookups return (nil, nil), List applies the filter set
// and the fixed ordering, and category deletes are guarded.

type fakeStore struct {
	categories map[uint]models.Category
	codes      map[uint]models.Code
	nextID     uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		categories: make(map[uint]models.Category),
		codes:      make(map[uint]models.Code),
	}
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) addCategory(code, title, version string) *models.Category {
	category := models.Category{ID: s.id(), Code: code, Title: title, Version: version}
	s.categories[category.ID] = category
	return &category
}

func (s *fakeStore) addCode(code models.Code) *models.Code {
	code.ID = s.id()
	code.Category = nil
	s.codes[code.ID] = code
	return &code
}

type fakeCategoryRepo struct {
	store *fakeStore
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	category.ID = r.store.id()
	r.store.categories[category.ID] = *category
	return nil
}

func (r *fakeCategoryRepo) Save(_ context.Context, category *models.Category) error {
	r.store.categories[category.ID] = *category
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uint) error {
	for _, code := range r.store.codes {
		if code.CategoryID != nil && *code.CategoryID == id {
			return repository.ErrCategoryReferenced
		}
	}
	delete(r.store.categories, id)
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uint) (*models.Category, error) {
	if category, ok := r.store.categories[id]; ok {
		return &category, nil
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindByCode(_ context.Context, code, version string) (*models.Category, error) {
	for _, category := range r.store.categories {
		if category.Code == code && category.Version == version {
			match := category
			return &match, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List(_ context.Context, filter repository.CategoryFilter, offset, limit int) ([]models.Category, int64, error) {
	var matched []models.Category
	for _, category := range r.store.categories {
		if filter.Version != "" && category.Version != filter.Version {
			continue
		}
		matched = append(matched, category)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Version != matched[j].Version {
			return matched[i].Version < matched[j].Version
		}
		return matched[i].Code < matched[j].Code
	})
	return window(matched, offset, limit), int64(len(matched)), nil
}

type fakeCodeRepo struct {
	store *fakeStore
}

func (r *fakeCodeRepo) Create(_ context.Context, code *models.Code) error {
	code.ID = r.store.id()
	stored := *code
	stored.Category = nil
	r.store.codes[code.ID] = stored
	return nil
}

func (r *fakeCodeRepo) Save(_ context.Context, code *models.Code) error {
	stored := *code
	stored.Category = nil
	r.store.codes[code.ID] = stored
	return nil
}

func (r *fakeCodeRepo) Delete(_ context.Context, id uint) error {
	delete(r.store.codes, id)
	return nil
}

func (r *fakeCodeRepo) FindByID(_ context.Context, id uint) (*models.Code, error) {
	code, ok := r.store.codes[id]
	if !ok {
		return nil, nil
	}
	return r.withCategory(code), nil
}

func (r *fakeCodeRepo) FindByFullCode(_ context.Context, fullCode, version string) (*models.Code, error) {
	for _, code := range r.store.codes {
		if code.FullCode == fullCode && code.Version == version {
			match := code
			return &match, nil
		}
	}
	return nil, nil
}

func (r *fakeCodeRepo) List(_ context.Context, filter repository.CodeFilter, offset, limit int) ([]models.Code, int64, error) {
	var matched []models.Code
	for _, code := range r.store.codes {
		if filter.Version != "" && code.Version != filter.Version {
			continue
		}
		if !filter.IncludeInactive && !code.IsActive {
			continue
		}
		if filter.CategoryID != nil && (code.CategoryID == nil || *code.CategoryID != *filter.CategoryID) {
			continue
		}
		if filter.Search != "" && !matchesSearch(code, filter.Search) {
			continue
		}
		matched = append(matched, *r.withCategory(code))
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Version != matched[j].Version {
			return matched[i].Version < matched[j].Version
		}
		return matched[i].FullCode < matched[j].FullCode
	})
	return window(matched, offset, limit), int64(len(matched)), nil
}

func (r *fakeCodeRepo) CountByCategory(_ context.Context, categoryID uint) (int64, error) {
	var count int64
	for _, code := range r.store.codes {
		if code.CategoryID != nil && *code.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *fakeCodeRepo) withCategory(code models.Code) *models.Code {
	if code.CategoryID != nil {
		if category, ok := r.store.categories[*code.CategoryID]; ok {
			code.Category = &category
		}
	}
	return &code
}

func matchesSearch(code models.Code, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(code.FullCode), term) ||
		strings.Contains(strings.ToLower(code.ShortDescription), term) ||
		strings.Contains(strings.ToLower(code.LongDescription), term)
}

func window[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
