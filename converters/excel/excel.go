package excel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/darianmavgo/internseed/converters"
	"github.com/darianmavgo/internseed/converters/common"

	"github.com/xuri/excelize/v2"
)

// ErrNoSheets is returned for a workbook without worksheets.
var ErrNoSheets = errors.New("no sheets found in Excel file")

func init() {
	converters.Register("excel", &excelDriver{})
}

type excelDriver struct{}

func (d *excelDriver) Open(source io.Reader, config *common.ConversionConfig) (common.RowProvider, error) {
	return NewWorkbook(source)
}

// Workbook reads rows out of an xlsx workbook.
type Workbook struct {
	file    *excelize.File
	sheets  []string
	headers map[string][]string
	widths  map[string]int
}

// Ensure Workbook implements RowProvider
var _ common.RowProvider = (*Workbook)(nil)

// Ensure Workbook implements io.Closer
var _ io.Closer = (*Workbook)(nil)

// NewWorkbook opens an Excel workbook from an io.Reader and reads the
// header row of every sheet.
func NewWorkbook(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel stream: %w", err)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, ErrNoSheets
	}

	w := &Workbook{
		file:    f,
		sheets:  sheets,
		headers: make(map[string][]string, len(sheets)),
		widths:  make(map[string]int, len(sheets)),
	}

	for _, sheet := range sheets {
		header, err := w.readHeader(sheet)
		if err != nil {
			f.Close()
			return nil, err
		}
		w.headers[sheet] = header
		w.widths[sheet] = max(len(header), dimensionWidth(f, sheet))
	}

	return w, nil
}

func (w *Workbook) readHeader(sheet string) ([]string, error) {
	rows, err := w.file.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows iterator for sheet %s: %w", sheet, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Error()
	}
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row for sheet %s: %w", sheet, err)
	}
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = strings.TrimSpace(c)
	}
	return header, nil
}

// dimensionWidth reads the used-range width recorded in the sheet, or 0.
func dimensionWidth(f *excelize.File, sheet string) int {
	dim, err := f.GetSheetDimension(sheet)
	if err != nil || dim == "" {
		return 0
	}
	ref := dim
	if i := strings.IndexByte(dim, ':'); i >= 0 {
		ref = dim[i+1:]
	}
	col, _, err := excelize.CellNameToCoordinates(ref)
	if err != nil {
		return 0
	}
	return col
}

// SheetNames implements RowProvider
func (w *Workbook) SheetNames() []string {
	return w.sheets
}

// Headers implements RowProvider
func (w *Workbook) Headers(sheet string) []string {
	return w.headers[sheet]
}

// Width implements RowProvider
func (w *Workbook) Width(sheet string) int {
	return w.widths[sheet]
}

// ScanRows implements RowProvider. Cells are read as their stored values,
// so number formats such as "#,##0" do not leak into the row text.
func (w *Workbook) ScanRows(ctx context.Context, sheet string, yield func([]string) error) error {
	if _, ok := w.headers[sheet]; !ok {
		return fmt.Errorf("sheet %q not found", sheet)
	}

	rows, err := w.file.Rows(sheet)
	if err != nil {
		return fmt.Errorf("failed to get rows iterator for sheet %s: %w", sheet, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		row, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return fmt.Errorf("failed to read row: %w", err)
		}
		if err := yield(row); err != nil {
			return err
		}
	}

	return rows.Error()
}

// Close closes the underlying Excel file
func (w *Workbook) Close() error {
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}
