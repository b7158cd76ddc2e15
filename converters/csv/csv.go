package csv

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/darianmavgo/internseed/converters"
	"github.com/darianmavgo/internseed/converters/common"
)

// SheetName is the single sheet a CSV source exposes.
const SheetName = "Sheet1"

// ErrConsumed is returned when a streamed CSV source is scanned twice.
var ErrConsumed = errors.New("csv source already scanned")

func init() {
	converters.Register("csv", &csvDriver{})
}

type csvDriver struct{}

func (d *csvDriver) Open(source io.Reader, config *common.ConversionConfig) (common.RowProvider, error) {
	return NewCSVSheetWithConfig(source, config)
}

// CSVSheet streams rows from a CSV export of a sheet.
// Note: ScanRows can only be called once.
type CSVSheet struct {
	headers   []string
	rawHeader []string
	csvReader *csv.Reader
	consumed  bool
}

// Ensure CSVSheet implements RowProvider
var _ common.RowProvider = (*CSVSheet)(nil)

// NewCSVSheet creates a CSVSheet from an io.Reader, detecting the delimiter.
func NewCSVSheet(r io.Reader) (*CSVSheet, error) {
	return NewCSVSheetWithConfig(r, nil)
}

// NewCSVSheetWithConfig creates a CSVSheet from an io.Reader with optional config.
func NewCSVSheetWithConfig(r io.Reader, config *common.ConversionConfig) (*CSVSheet, error) {
	br := bufio.NewReaderSize(r, 65536)

	delimiter := rune(0)
	if config != nil {
		delimiter = config.Delimiter
	}
	// Detect delimiter if not set
	if delimiter == 0 {
		peekBytes, _ := br.Peek(2048)
		sample := string(peekBytes)
		if idx := strings.IndexAny(sample, "\r\n"); idx != -1 {
			sample = sample[:idx]
		}
		delimiter = common.DetectDelimiter(sample)
	}

	reader := csv.NewReader(br)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	s := &CSVSheet{csvReader: reader}

	header, err := reader.Read()
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if header != nil {
		// Strip a UTF-8 byte order mark left by spreadsheet exports
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
		s.rawHeader = header
		s.headers = make([]string, len(header))
		for i, h := range header {
			s.headers[i] = strings.TrimSpace(h)
		}
	}

	return s, nil
}

// SheetNames implements RowProvider
func (s *CSVSheet) SheetNames() []string {
	return []string{SheetName}
}

// Headers implements RowProvider
func (s *CSVSheet) Headers(sheet string) []string {
	if sheet != SheetName {
		return nil
	}
	return s.headers
}

// Width implements RowProvider
func (s *CSVSheet) Width(sheet string) int {
	return len(s.Headers(sheet))
}

// ScanRows implements RowProvider
func (s *CSVSheet) ScanRows(ctx context.Context, sheet string, yield func([]string) error) error {
	if sheet != SheetName {
		return fmt.Errorf("sheet %q not found", sheet)
	}
	if s.consumed {
		return ErrConsumed
	}
	s.consumed = true

	if s.rawHeader == nil {
		return nil
	}
	if err := yield(s.rawHeader); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		row, err := s.csvReader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read CSV row: %w", err)
		}
		if err := yield(row); err != nil {
			return err
		}
	}
}
