package common

import (
	"strings"
)

// ConversionConfig stores configuration options for opening a workbook.
type ConversionConfig struct {
	Delimiter rune   // Delimiter used for CSV parsing, 0 means detect
	Sheet     string // Sheet to read, empty means the first sheet
}

// DetectDelimiter attempts to detect the delimiter from a raw line of text.
// It checks common delimiters and returns the one that produces the most fields.
// Defaults to comma if line is empty or no clear winner.
func DetectDelimiter(line string) rune {
	if line == "" {
		return ','
	}

	delimiters := []rune{',', '\t', ';', '|'}
	maxCount := -1
	winner := ','

	for _, delim := range delimiters {
		count := strings.Count(line, string(delim))
		if count > maxCount {
			maxCount = count
			winner = delim
		}
	}

	return winner
}

// SelectSheet returns the sheet named in config, or the first sheet of the
// workbook when config does not name one. It returns "" if the named sheet
// does not exist.
func SelectSheet(provider RowProvider, config *ConversionConfig) string {
	sheets := provider.SheetNames()
	if len(sheets) == 0 {
		return ""
	}
	if config == nil || config.Sheet == "" {
		return sheets[0]
	}
	for _, s := range sheets {
		if s == config.Sheet {
			return s
		}
	}
	return ""
}
