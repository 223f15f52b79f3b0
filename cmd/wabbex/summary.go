package main

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"wabbex/internal/modlist"
)

// renderRecordSummary produces the per-record table shown after a successful
// extraction. Returns the empty string when nothing was extracted.
func renderRecordSummary(records []modlist.Record) string {
	if len(records) == 0 {
		return ""
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Name,
			record.Author,
			displayGame(record.Game),
			record.ModID,
			record.FileID,
		})
	}
	return renderTable([]string{"Name", "Author", "Game", "Mod", "File"}, rows, 3, 4)
}

// displayGame title-cases the Nexus game domain for presentation. The
// manifest stores lowercase identifiers such as "skyrimspecialedition".
func displayGame(game string) string {
	game = strings.TrimSpace(game)
	if game == "" {
		return ""
	}
	return cases.Title(language.English).String(game)
}
