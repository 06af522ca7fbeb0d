package cmd

import (
	"context"
	"os"

	"github.com/jochebedafua/icd-diagnosis-api/internal/config"
	"github.com/jochebedafua/icd-diagnosis-api/internal/database"
	"github.com/jochebedafua/icd-diagnosis-api/internal/importer"
	"github.com/jochebedafua/icd-diagnosis-api/internal/services"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	importVersion    string
	importCategories string
	importCodes      string
	importFromBucket bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import an ICD catalog from CSV files",
	Long: `Import loads a category table and a code table into the store for one
coding-standard version. Rows are upserted keyed on (code, version) and
(full_code, version), so re-running the same import is safe. The whole run
executes in a single transaction; a malformed file aborts it entirely.

Examples:
  # Import ICD-10 data from local files
  ./icd-api import --version ICD-10 --categories data/categories.csv --codes data/codes.csv

  # Import from the configured object-store bucket
  ./icd-api import --version ICD-11 --from-bucket --categories icd11/categories.csv --codes icd11/codes.csv`,
	Run: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importVersion, "version", "v", "ICD-10", "Coding-standard version tag being imported")
	importCmd.Flags().StringVar(&importCategories, "categories", "data/categories.csv", "Category CSV path (or object key with --from-bucket)")
	importCmd.Flags().StringVar(&importCodes, "codes", "data/codes.csv", "Code CSV path (or object key with --from-bucket)")
	importCmd.Flags().BoolVar(&importFromBucket, "from-bucket", false, "Fetch both files from the configured object-store bucket")
}

func runImport(cmd *cobra.Command, args []string) {
	log := setupLogger()
	loadEnvFile(log)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	categoriesPath := importCategories
	codesPath := importCodes

	if importFromBucket {
		if err := cfg.ValidateObjectStore(); err != nil {
			log.Fatalf("Invalid object store configuration: %v", err)
		}

		store, err := services.NewObjectStore(&cfg.ObjectStore, log)
		if err != nil {
			log.Fatalf("Failed to initialize object store: %v", err)
		}

		tmpDir, err := os.MkdirTemp("", "icd-import-")
		if err != nil {
			log.Fatalf("Failed to create temp directory: %v", err)
		}
		defer os.RemoveAll(tmpDir)

		if categoriesPath, err = store.Download(ctx, importCategories, tmpDir); err != nil {
			log.Fatalf("Failed to fetch categories file: %v", err)
		}
		if codesPath, err = store.Download(ctx, importCodes, tmpDir); err != nil {
			log.Fatalf("Failed to fetch codes file: %v", err)
		}
	}

	if _, err := os.Stat(categoriesPath); err != nil {
		log.Fatalf("Categories file not found: %s", categoriesPath)
	}
	if _, err := os.Stat(codesPath); err != nil {
		log.Fatalf("Codes file not found: %s", codesPath)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	summary, err := importer.NewImporter(db, log).Run(ctx, importer.Options{
		Version:        importVersion,
		CategoriesPath: categoriesPath,
		CodesPath:      codesPath,
	})
	if err != nil {
		log.Fatalf("Import failed, no changes applied: %v", err)
	}

	log.WithFields(logrus.Fields{
		"run_id":             summary.RunID,
		"version":            summary.Version,
		"categories_created": summary.CategoriesCreated,
		"categories_updated": summary.CategoriesUpdated,
		"codes_created":      summary.CodesCreated,
		"codes_updated":      summary.CodesUpdated,
		"codes_skipped":      summary.CodesSkipped,
	}).Info("Import summary")
}
