// Package importer loads ICD catalog CSVs into the store. A run is
// idempotent (upsert keyed on the uniqueness tuples) and transactional: any
// failure rolls back the whole run.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jochebedafua/icd-diagnosis-api/internal/database"
	"github.com/jochebedafua/icd-diagnosis-api/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	colCategoryCode     = "category_code"
	colCategoryTitle    = "category_title"
	colSubCode          = "sub_code"
	colFullCode         = "full_code"
	colShortDescription = "short_description"
	colLongDescription  = "long_description"
)

type Options struct {
	Version        string
	CategoriesPath string
	CodesPath      string
}

// Summary is the run report. CodesSkipped counts code rows whose category
// could not be resolved; those are warnings, not failures.
type Summary struct {
	RunID             string
	Version           string
	CategoriesCreated int
	CategoriesUpdated int
	CodesCreated      int
	CodesUpdated      int
	CodesSkipped      int
}

type CategoryRow struct {
	Code  string
	Title string
}

type CodeRow struct {
	CategoryCode     string
	SubCode          string
	FullCode         string
	ShortDescription string
	LongDescription  string
}

// catalog is the transactional store surface an import run writes through.
type catalog interface {
	UpsertCategory(ctx context.Context, row CategoryRow, version string) (created bool, err error)
	ResolveCategory(ctx context.Context, code, version string) (*models.Category, error)
	UpsertCode(ctx context.Context, row CodeRow, categoryID uint, version string) (created bool, err error)
}

type Importer struct {
	db     *database.Database
	logger *logrus.Logger
}

func NewImporter(db *database.Database, logger *logrus.Logger) *Importer {
	return &Importer{
		db:     db,
		logger: logger,
	}
}

// Run parses both files up front, then applies everything in one
// transaction. Parsing first means a malformed file aborts before a single
// row is written.
func (im *Importer) Run(ctx context.Context, opts Options) (*Summary, error) {
	categories, err := readFile(opts.CategoriesPath, ReadCategoryRows)
	if err != nil {
		return nil, fmt.Errorf("categories file: %w", err)
	}
	codes, err := readFile(opts.CodesPath, ReadCodeRows)
	if err != nil {
		return nil, fmt.Errorf("codes file: %w", err)
	}

	summary := &Summary{
		RunID:   uuid.NewString(),
		Version: opts.Version,
	}

	im.logger.WithFields(logrus.Fields{
		"run_id":     summary.RunID,
		"version":    opts.Version,
		"categories": len(categories),
		"codes":      len(codes),
	}).Info("Starting catalog import")

	err = im.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return im.apply(ctx, &gormCatalog{tx: tx}, opts.Version, categories, codes, summary)
	})
	if err != nil {
		return nil, err
	}

	im.logger.WithFields(logrus.Fields{
		"run_id":             summary.RunID,
		"version":            summary.Version,
		"categories_created": summary.CategoriesCreated,
		"categories_updated": summary.CategoriesUpdated,
		"codes_created":      summary.CodesCreated,
		"codes_updated":      summary.CodesUpdated,
		"codes_skipped":      summary.CodesSkipped,
	}).Info("Catalog import completed")

	return summary, nil
}

func (im *Importer) apply(ctx context.Context, cat catalog, version string, categories []CategoryRow, codes []CodeRow, summary *Summary) error {
	for _, row := range categories {
		created, err := cat.UpsertCategory(ctx, row, version)
		if err != nil {
			return fmt.Errorf("failed to upsert category %s: %w", row.Code, err)
		}
		if created {
			summary.CategoriesCreated++
		} else {
			summary.CategoriesUpdated++
		}
	}

	for i, row := range codes {
		category, err := cat.ResolveCategory(ctx, row.CategoryCode, version)
		if err != nil {
			return fmt.Errorf("failed to resolve category %s: %w", row.CategoryCode, err)
		}
		if category == nil {
			im.logger.WithFields(logrus.Fields{
				"full_code":     row.FullCode,
				"category_code": row.CategoryCode,
			}).Warn("Category not found, skipping code row")
			summary.CodesSkipped++
			continue
		}

		created, err := cat.UpsertCode(ctx, row, category.ID, version)
		if err != nil {
			return fmt.Errorf("failed to upsert code %s: %w", row.FullCode, err)
		}
		if created {
			summary.CodesCreated++
		} else {
			summary.CodesUpdated++
		}

		if (i+1)%100 == 0 {
			im.logger.Infof("Processed %d code rows...", i+1)
		}
	}

	return nil
}

// ReadCategoryRows parses the category table. A missing header column is
// fatal: continuing under a malformed schema risks silently dropping data.
func ReadCategoryRows(r io.Reader) ([]CategoryRow, error) {
	reader := csv.NewReader(r)
	header, err := readHeader(reader, colCategoryCode, colCategoryTitle)
	if err != nil {
		return nil, err
	}

	var rows []CategoryRow
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		rows = append(rows, CategoryRow{
			Code:  record[header[colCategoryCode]],
			Title: record[header[colCategoryTitle]],
		})
	}
	return rows, nil
}

// ReadCodeRows parses the code table with the same fatal-on-format-error
// policy.
func ReadCodeRows(r io.Reader) ([]CodeRow, error) {
	reader := csv.NewReader(r)
	header, err := readHeader(reader,
		colCategoryCode, colSubCode, colFullCode, colShortDescription, colLongDescription)
	if err != nil {
		return nil, err
	}

	var rows []CodeRow
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		rows = append(rows, CodeRow{
			CategoryCode:     record[header[colCategoryCode]],
			SubCode:          record[header[colSubCode]],
			FullCode:         record[header[colFullCode]],
			ShortDescription: record[header[colShortDescription]],
			LongDescription:  record[header[colLongDescription]],
		})
	}
	return rows, nil
}

func readHeader(reader *csv.Reader, required ...string) (map[string]int, error) {
	record, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	header := make(map[string]int, len(record))
	for i, name := range record {
		header[name] = i
	}
	for _, col := range required {
		if _, ok := header[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}
	return header, nil
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return read(f)
}

// gormCatalog binds the catalog surface to one transaction.
type gormCatalog struct {
	tx *gorm.DB
}

func (g *gormCatalog) UpsertCategory(ctx context.Context, row CategoryRow, version string) (bool, error) {
	var existing models.Category
	err := g.tx.WithContext(ctx).
		Where("code = ? AND version = ?", row.Code, version).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		category := models.Category{
			Code:    row.Code,
			Title:   row.Title,
			Version: version,
		}
		return true, g.tx.WithContext(ctx).Create(&category).Error
	}
	if err != nil {
		return false, err
	}

	existing.Title = row.Title
	return false, g.tx.WithContext(ctx).Save(&existing).Error
}

func (g *gormCatalog) ResolveCategory(ctx context.Context, code, version string) (*models.Category, error) {
	var category models.Category
	err := g.tx.WithContext(ctx).
		Where("code = ? AND version = ?", code, version).
		First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (g *gormCatalog) UpsertCode(ctx context.Context, row CodeRow, categoryID uint, version string) (bool, error) {
	var existing models.Code
	err := g.tx.WithContext(ctx).
		Where("full_code = ? AND version = ?", row.FullCode, version).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		code := models.Code{
			CategoryID:       &categoryID,
			SubCode:          row.SubCode,
			FullCode:         row.FullCode,
			ShortDescription: row.ShortDescription,
			LongDescription:  row.LongDescription,
			Version:          version,
			IsActive:         true,
		}
		return true, g.tx.WithContext(ctx).Create(&code).Error
	}
	if err != nil {
		return false, err
	}

	existing.CategoryID = &categoryID
	existing.SubCode = row.SubCode
	existing.ShortDescription = row.ShortDescription
	existing.LongDescription = row.LongDescription
	existing.IsActive = true
	return false, g.tx.WithContext(ctx).Save(&existing).Error
}
