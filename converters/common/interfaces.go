package common

import (
	"context"
	"io"
)

// Driver opens a RowProvider over a source stream.
type Driver interface {
	Open(source io.Reader, config *ConversionConfig) (RowProvider, error)
}

// RowProvider defines the interface for reading tabular rows out of a workbook
type RowProvider interface {
	// SheetNames returns the sheets in workbook order.
	SheetNames() []string
	// Headers returns the raw header row of the sheet, trimmed.
	Headers(sheet string) []string
	// Width is the number of columns a row of the sheet spans.
	Width(sheet string) int
	// ScanRows iterates over every row of the sheet, header row included.
	// It calls the yield function for each row.
	// If yield returns an error, iteration stops and that error is returned.
	ScanRows(ctx context.Context, sheet string, yield func(row []string) error) error
}

// ScanRecords iterates over the data rows of a sheet, skipping the header
// row, and yields each one as a Record keyed by the sheet headers.
func ScanRecords(ctx context.Context, provider RowProvider, sheet string, yield func(rec Record) error) error {
	headers := provider.Headers(sheet)
	first := true
	return provider.ScanRows(ctx, sheet, func(row []string) error {
		if first {
			first = false
			return nil
		}
		return yield(NewRecord(headers, row))
	})
}
