package rating

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/haskel/mentalload/internal/catalog"
)

const documentVersion = 1

// Document is a saved questionnaire: the household it was answered for,
// the raw ratings and any free-text notes.
type Document struct {
	Version   int               `json:"version" yaml:"version"`
	Household catalog.Household `json:"household" yaml:"household"`
	Ratings   []Input           `json:"ratings" yaml:"ratings"`
	Notes     map[string]string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewDocument wraps a set for saving.
func NewDocument(h catalog.Household, set *Set, notes map[string]string) *Document {
	return &Document{
		Version:   documentVersion,
		Household: h,
		Ratings:   set.Inputs(),
		Notes:     notes,
	}
}

// Set resolves the document's ratings against the catalog.
func (d *Document) Set(lookup catalog.Lookup) (*Set, error) {
	return Resolve(lookup, d.Ratings)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadFile reads a document. Files ending in .yaml or .yml are parsed as
// YAML, anything else as JSON.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ratings file: %w", err)
	}

	// A file without a household section answers for the default one.
	doc := Document{Household: catalog.DefaultHousehold()}
	if isYAML(path) {
		err = yaml.Unmarshal(data, &doc)
	} else {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse ratings file: %w", err)
	}

	if doc.Version > documentVersion {
		return nil, fmt.Errorf("ratings file version %d is newer than supported version %d", doc.Version, documentVersion)
	}
	if doc.Version == 0 {
		doc.Version = documentVersion
	}

	return &doc, nil
}

// SaveFile writes a document through a temp file and rename so readers
// never observe a partial write.
func SaveFile(path string, doc *Document) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode ratings: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		os.Remove(tempPath)
		return err
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return err
	}

	return nil
}
