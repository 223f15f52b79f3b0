package modlist

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"wabbex/internal/logging"
)

var (
	// ErrMissingState reports that an entry has no usable State object.
	ErrMissingState = errors.New("entry does not contain a State object")
	// ErrMissingType reports that an entry's State has no usable type discriminator.
	ErrMissingType = errors.New("entry does not contain a type")
)

// UnsupportedTypeError reports a download source wabbex does not handle.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported download type %s", e.Type)
}

// MissingFieldsError reports required State fields that are absent or null.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("entry is missing required fields: %s", strings.Join(e.Fields, ", "))
}

// Record is the validated, normalized representation of a Nexus-sourced
// archive entry.
type Record struct {
	Name   string
	Author string
	FileID string
	ModID  string
	Game   string
}

// FileURL returns the link to the record's specific file on Nexus.
func (r Record) FileURL(base string) string {
	return fmt.Sprintf("%s/%s/mods/%s?tab=files&file_id=%s", base, r.Game, r.ModID, r.FileID)
}

// ModURL returns the link to the record's mod page on Nexus.
func (r Record) ModURL(base string) string {
	return fmt.Sprintf("%s/%s/mods/%s", base, r.Game, r.ModID)
}

// Validator turns raw archive entries into Records.
type Validator struct {
	typeMarker string
}

// NewValidator builds a Validator that accepts entries whose type
// discriminator contains marker.
func NewValidator(marker string) *Validator {
	return &Validator{typeMarker: marker}
}

// Validate checks one archive entry. The zero-based index is carried in the
// returned error for reporting.
func (v *Validator) Validate(index int, raw any) (Record, error) {
	entry, ok := raw.(map[string]any)
	if !ok {
		return Record{}, entryError(index, ErrMissingState)
	}

	state := Object(entry).object("State")
	if len(state) == 0 {
		return Record{}, entryError(index, ErrMissingState)
	}

	entryType, ok := state.stringField("$type")
	if !ok || entryType == "" {
		return Record{}, entryError(index, ErrMissingType)
	}
	if !strings.Contains(entryType, v.typeMarker) {
		return Record{}, entryError(index, &UnsupportedTypeError{Type: entryType})
	}

	record := Record{}
	var missing []string
	assign := func(dst *string, key string) {
		value, ok := state.scalarField(key)
		if !ok {
			missing = append(missing, key)
			return
		}
		*dst = value
	}
	assign(&record.Name, "Name")
	assign(&record.Author, "Author")
	assign(&record.FileID, "FileID")
	assign(&record.ModID, "ModID")
	assign(&record.Game, "GameName")
	if len(missing) > 0 {
		return Record{}, entryError(index, &MissingFieldsError{Fields: missing})
	}

	return record, nil
}

// CollectRecords validates every entry in order, logging a warning for each
// rejection and continuing. The returned records preserve input order.
func (v *Validator) CollectRecords(archives []any, logger *slog.Logger) []Record {
	logger = logging.NewComponentLogger(logger, "validator")
	records := make([]Record, 0, len(archives))
	for i, raw := range archives {
		record, err := v.Validate(i, raw)
		if err != nil {
			logger.Warn("skipping archive entry",
				logging.Args(logging.Int(logging.FieldEntry, i), logging.Error(err))...,
			)
			continue
		}
		records = append(records, record)
	}
	return records
}

func entryError(index int, err error) error {
	return fmt.Errorf("entry %d: %w", index, err)
}
