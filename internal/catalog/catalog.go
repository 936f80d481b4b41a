// Package catalog reads the emoji metadata catalog (emoji_pretty.json).
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var (
	// ErrParse reports a catalog file that is missing, unreadable or not a JSON array.
	ErrParse = errors.New("catalog parse error")
	// ErrSchema reports an element without a string "unified" field.
	ErrSchema = errors.New("catalog schema error")
)

// EmojiRecord is one catalog entry. Only Unified drives the theme output;
// the naming fields are carried for diagnostics.
type EmojiRecord struct {
	Unified    string   `json:"unified"`
	Name       string   `json:"name,omitempty"`
	ShortName  string   `json:"short_name,omitempty"`
	ShortNames []string `json:"short_names,omitempty"`
	Image      string   `json:"image,omitempty"`
}

// Loader reads catalogs from a filesystem.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a Loader backed by fs.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// LoadRecords implements interfaces.RecordLoader.
func (l *Loader) LoadRecords(path string) ([]EmojiRecord, error) {
	return LoadRecords(l.fs, path)
}

// LoadRecords reads the JSON array at path, preserving element order.
func LoadRecords(fs afero.Fs, path string) ([]EmojiRecord, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrParse, path, err)
	}
	return ParseRecords(data, path)
}

// ParseRecords decodes catalog bytes. source only labels errors.
func ParseRecords(data []byte, source string) ([]EmojiRecord, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrParse, source, err)
	}
	if elements == nil {
		// a literal null is valid JSON but not an array
		return nil, fmt.Errorf("%w: %s does not contain a JSON array", ErrParse, source)
	}

	records := make([]EmojiRecord, 0, len(elements))
	for i, raw := range elements {
		rec, err := parseRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s element %d: %w", ErrSchema, source, i, err)
		}
		records = append(records, rec)
	}

	log.Debug().Str("source", source).Int("records", len(records)).Msg("Catalog loaded")
	return records, nil
}

func parseRecord(raw json.RawMessage) (EmojiRecord, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return EmojiRecord{}, errors.New("element is not an object")
	}
	unifiedRaw, ok := fields["unified"]
	if !ok {
		return EmojiRecord{}, errors.New(`missing "unified" field`)
	}
	var unified string
	if err := json.Unmarshal(unifiedRaw, &unified); err != nil || string(unifiedRaw) == "null" {
		return EmojiRecord{}, errors.New(`"unified" field is not a string`)
	}

	var rec EmojiRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		// Optional fields of an unexpected type are dropped rather than failing the record.
		log.Debug().Err(err).Str("unified", unified).Msg("Ignoring malformed optional catalog fields")
		rec = EmojiRecord{}
	}
	rec.Unified = unified
	return rec, nil
}
