// Package dataset provides implementations of the emoji.Source collaborator:
// an embedded builtin set, JSON files, a SQLite table, and the gomoji
// library inventory.
package dataset

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/haytac/emojify/internal/emoji"
)

//go:embed data/emoji.json
var builtinFS embed.FS

// Builtin serves the dataset compiled into the binary.
type Builtin struct{}

// Load decodes the embedded JSON dataset.
func (Builtin) Load(_ context.Context) ([]emoji.Record, error) {
	raw, err := builtinFS.ReadFile("data/emoji.json")
	if err != nil {
		return nil, fmt.Errorf("reading builtin dataset: %w", err)
	}
	return decodeRecords(raw)
}

// File serves a dataset from a JSON file on disk.
type File struct {
	Path string
}

// NewFile creates a File source for the given path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Load reads and decodes the file. The file handle is not retained.
func (f *File) Load(_ context.Context) ([]emoji.Record, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset file %s: %w", f.Path, err)
	}
	records, err := decodeRecords(raw)
	if err != nil {
		return nil, fmt.Errorf("dataset file %s: %w", f.Path, err)
	}
	log.Debug().Str("path", f.Path).Int("records", len(records)).Msg("Dataset file loaded")
	return records, nil
}

func decodeRecords(raw []byte) ([]emoji.Record, error) {
	var records []emoji.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decoding dataset JSON: %w", err)
	}
	for i, rec := range records {
		if rec.Name == "" || rec.Unicode == "" {
			return nil, fmt.Errorf("dataset record %d is missing name or unicode", i)
		}
	}
	return records, nil
}
