// Package store loads optional user-supplied YAML extensions to the
// built-in merchant and product-keyword tables. The built-ins always
// apply; files only add to them. A missing file is not an error.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/GiraffosCom/boleta-scan/internal/catalog"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// CatalogStore resolves and reads the catalog override files.
type CatalogStore struct {
	CategoriesFile string
	MerchantsFile  string
}

// NewCatalogStore creates a store for the given override file names.
func NewCatalogStore(categoriesFile, merchantsFile string) *CatalogStore {
	return &CatalogStore{
		CategoriesFile: categoriesFile,
		MerchantsFile:  merchantsFile,
	}
}

// categoriesConfig mirrors the categories YAML layout.
type categoriesConfig struct {
	Categories []struct {
		Name     string   `yaml:"name"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"categories"`
}

// merchantsConfig mirrors the merchants YAML layout.
type merchantsConfig struct {
	Merchants []struct {
		Name     string   `yaml:"name"`
		Category string   `yaml:"category"`
		Stores   []string `yaml:"stores"`
	} `yaml:"merchants"`
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *CatalogStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "boleta-scan", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadKeywordOverrides reads extra product keywords. Returns an empty
// slice when no override file exists.
func (s *CatalogStore) LoadKeywordOverrides() ([]catalog.CategoryKeywords, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	path, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", filename).Debug("No category override file")
			return nil, nil
		}
		return nil, fmt.Errorf("resolving categories file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading categories file: %w", err)
	}

	var cfg categoriesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing categories file: %w", err)
	}

	out := make([]catalog.CategoryKeywords, 0, len(cfg.Categories))
	for _, c := range cfg.Categories {
		out = append(out, catalog.CategoryKeywords{Category: c.Name, Keywords: c.Keywords})
	}
	log.WithFields(logrus.Fields{"file": path, "count": len(out)}).Debug("Loaded category overrides")
	return out, nil
}

// LoadMerchantOverrides reads extra known-merchant groups. Returns an
// empty slice when no override file exists.
func (s *CatalogStore) LoadMerchantOverrides() ([]catalog.MerchantGroup, error) {
	filename := s.MerchantsFile
	if filename == "" {
		filename = "merchants.yaml"
	}

	path, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", filename).Debug("No merchant override file")
			return nil, nil
		}
		return nil, fmt.Errorf("resolving merchants file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading merchants file: %w", err)
	}

	var cfg merchantsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing merchants file: %w", err)
	}

	out := make([]catalog.MerchantGroup, 0, len(cfg.Merchants))
	for _, m := range cfg.Merchants {
		out = append(out, catalog.MerchantGroup{Name: m.Name, Category: m.Category, Stores: m.Stores})
	}
	log.WithFields(logrus.Fields{"file": path, "count": len(out)}).Debug("Loaded merchant overrides")
	return out, nil
}
