package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/terraincognita07/nutriplate/internal/catalog"
	"github.com/terraincognita07/nutriplate/internal/db"
)

// RunImportCatalogCommand loads a YAML or JSON catalog file and upserts its foods by id.
func RunImportCatalogCommand(out io.Writer, driver string, dsn string, path string) error {
	trimmedPath := strings.TrimSpace(path)
	if trimmedPath == "" {
		return errors.New("catalog file is required")
	}

	format, err := catalog.FormatFromPath(trimmedPath)
	if err != nil {
		return err
	}

	file, err := os.Open(trimmedPath)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()

	foods, err := catalog.Decode(file, format)
	if err != nil {
		return fmt.Errorf("decode catalog %s: %w", trimmedPath, err)
	}

	database, err := db.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := db.NewFoodRepository(database).Upsert(foods); err != nil {
		return fmt.Errorf("import foods: %w", err)
	}

	fmt.Fprintf(out, "Imported %d foods from %s\n", len(foods), trimmedPath)
	return nil
}
