// Package jsonstore loads the static catalog data set from a directory
// of JSON files. The load is all-or-nothing: either the full collection
// is returned as a value or the load fails, and the result is cached by
// the caller for the process lifetime. There is no reload; the
// invalidation rule is a restart.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hava-distribution/catalog/internal/core/domain"
)

const (
	productsFile   = "products.json"
	brandsFile     = "brands.json"
	categoriesFile = "categories.json"
	smartFindFile  = "smartfind.json"
)

// Load reads the whole catalog from dir. Products and brands are
// required; a missing categories file leaves the collection empty so the
// core renders the structure from its hierarchy table, and a missing
// smart-find file leaves guided navigation empty.
func Load(dir string) (domain.Catalog, error) {
	const op = "jsonstore.Load"
	log := slog.With("op", op)

	var products []productJSON
	if err := readJSON(dir, productsFile, &products); err != nil {
		return domain.Catalog{}, fmt.Errorf("%s: %w", op, err)
	}

	var brands []brandJSON
	if err := readJSON(dir, brandsFile, &brands); err != nil {
		return domain.Catalog{}, fmt.Errorf("%s: %w", op, err)
	}

	var categories []categoryJSON
	err := readJSON(dir, categoriesFile, &categories)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Info("no categories file, structure comes from the hierarchy table")
	case err != nil:
		return domain.Catalog{}, fmt.Errorf("%s: %w", op, err)
	}

	var smartFind smartFindJSON
	err = readJSON(dir, smartFindFile, &smartFind)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Info("no smart-find file, guided navigation disabled")
	case err != nil:
		return domain.Catalog{}, fmt.Errorf("%s: %w", op, err)
	}

	c := domain.Catalog{
		Products:   productsToDomain(products),
		Brands:     brandsToDomain(brands),
		Categories: categoriesToDomain(categories),
		SmartFind:  smartFindToDomain(smartFind),
	}

	log.Info("catalog loaded",
		"products", len(c.Products),
		"brands", len(c.Brands),
		"categories", len(c.Categories),
		"sectors", len(c.SmartFind.Sectors),
	)
	return c, nil
}

func readJSON(dir, name string, v any) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
