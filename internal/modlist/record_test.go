package modlist_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"wabbex/internal/modlist"
)

const nexusBase = "https://www.nexusmods.com"

func decodeEntry(t *testing.T, raw string) any {
	t.Helper()
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()
	var entry any
	if err := decoder.Decode(&entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	return entry
}

func TestValidateAcceptsNexusEntry(t *testing.T) {
	validator := modlist.NewValidator("NexusDownloader")
	entry := decodeEntry(t, `{
		"State": {
			"$type": "NexusDownloader, Wabbajack.Lib",
			"Name": "Foo",
			"Author": "Bar",
			"FileID": 1,
			"ModID": 2,
			"GameName": "skyrimspecialedition"
		}
	}`)

	record, err := validator.Validate(0, entry)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if record.Name != "Foo" || record.Author != "Bar" {
		t.Fatalf("unexpected record: %+v", record)
	}
	if record.FileID != "1" || record.ModID != "2" {
		t.Fatalf("expected numeric ids normalized to strings, got %+v", record)
	}

	wantFile := "https://www.nexusmods.com/skyrimspecialedition/mods/2?tab=files&file_id=1"
	if got := record.FileURL(nexusBase); got != wantFile {
		t.Fatalf("FileURL = %q, want %q", got, wantFile)
	}
	wantMod := "https://www.nexusmods.com/skyrimspecialedition/mods/2"
	if got := record.ModURL(nexusBase); got != wantMod {
		t.Fatalf("ModURL = %q, want %q", got, wantMod)
	}
}

func TestValidateAcceptsStringIdentifiers(t *testing.T) {
	validator := modlist.NewValidator("NexusDownloader")
	entry := decodeEntry(t, `{
		"State": {
			"$type": "NexusDownloader",
			"Name": "Foo",
			"Author": "Bar",
			"FileID": "101",
			"ModID": "202",
			"GameName": "morrowind"
		}
	}`)

	record, err := validator.Validate(0, entry)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if record.FileID != "101" || record.ModID != "202" {
		t.Fatalf("unexpected ids: %+v", record)
	}
}

func TestValidateRejectsMissingState(t *testing.T) {
	validator := modlist.NewValidator("NexusDownloader")
	cases := map[string]string{
		"no state key":     `{"Hash":"abc"}`,
		"null state":       `{"State":null}`,
		"empty state":      `{"State":{}}`,
		"state not object": `{"State":"nope"}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := validator.Validate(4, decodeEntry(t, raw))
			if !errors.Is(err, modlist.ErrMissingState) {
				t.Fatalf("expected ErrMissingState, got %v", err)
			}
			if !strings.Contains(err.Error(), "entry 4") {
				t.Fatalf("error should carry entry index: %v", err)
			}
		})
	}
}

func TestValidateRejectsNonObjectEntry(t *testing.T) {
	validator := modlist.NewValidator("NexusDownloader")
	_, err := validator.Validate(0, decodeEntry(t, `"just a string"`))
	if !errors.Is(err, modlist.ErrMissingState) {
		t.Fatalf("expected ErrMissingState, got %v", err)
	}
}

func TestValidateRejectsMissingType(t *testing.T) {
	validator := modlist.NewValidator("NexusDownloader")
	cases := map[string]string{
		"absent": `{"State":{"Name":"Foo"}}`,
		"empty":  `{"State":{"$type":""}}`,
		"null":   `{"State":{"$type":null}}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := validator.Validate(1, decodeEntry(t, raw))
			if !errors.Is(err, modlist.ErrMissingType) {
				t.Fatalf("expected ErrMissingType, got %v", err)
			}
		})
	}
}

func TestValidateRejectsUnsupportedType(t *testing.T) {
	validator := modlist.NewValidator("NexusDownloader")
	entry := decodeEntry(t, `{"State":{"$type":"GoogleDriveDownloader"}}`)

	_, err := validator.Validate(2, entry)
	var unsupported *modlist.UnsupportedTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedTypeError, got %v", err)
	}
	if unsupported.Type != "GoogleDriveDownloader" {
		t.Fatalf("unexpected type in error: %q", unsupported.Type)
	}
}

func TestValidateRejectsMissingFields(t *testing.T) {
	validator := modlist.NewValidator("NexusDownloader")
	entry := decodeEntry(t, `{
		"State": {
			"$type": "NexusDownloader",
			"Name": "Foo",
			"Author": null,
			"ModID": 2
		}
	}`)

	_, err := validator.Validate(3, entry)
	var missing *modlist.MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
	want := []string{"Author", "FileID", "GameName"}
	if len(missing.Fields) != len(want) {
		t.Fatalf("unexpected missing fields: %v", missing.Fields)
	}
	for i, field := range want {
		if missing.Fields[i] != field {
			t.Fatalf("missing fields = %v, want %v", missing.Fields, want)
		}
	}
}

func TestValidateAcceptsEmptyStringFields(t *testing.T) {
	// Absent and null are rejected; an explicit empty string is not.
	validator := modlist.NewValidator("NexusDownloader")
	entry := decodeEntry(t, `{
		"State": {
			"$type": "NexusDownloader",
			"Name": "",
			"Author": "Bar",
			"FileID": 1,
			"ModID": 2,
			"GameName": "oblivion"
		}
	}`)

	record, err := validator.Validate(0, entry)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if record.Name != "" {
		t.Fatalf("unexpected name: %q", record.Name)
	}
}

func TestCollectRecordsSkipsInvalidEntriesAndPreservesOrder(t *testing.T) {
	validator := modlist.NewValidator("NexusDownloader")
	archives := []any{
		decodeEntry(t, `{"State":{"$type":"NexusDownloader","Name":"First","Author":"A","FileID":1,"ModID":10,"GameName":"skyrim"}}`),
		decodeEntry(t, `{"State":{"$type":"OtherDownloader"}}`),
		decodeEntry(t, `{"Hash":"no state"}`),
		decodeEntry(t, `{"State":{"$type":"NexusDownloader","Name":"Second","Author":"B","FileID":2,"ModID":20,"GameName":"skyrim"}}`),
		decodeEntry(t, `{"State":{"$type":"NexusDownloader","Name":"Incomplete"}}`),
	}

	records := validator.CollectRecords(archives, nil)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Name != "First" || records[1].Name != "Second" {
		t.Fatalf("order not preserved: %+v", records)
	}
}
