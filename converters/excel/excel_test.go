package excel

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/darianmavgo/internseed/converters"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, sheets map[string][][]interface{}, order []string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("failed to rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("failed to add sheet %s: %v", name, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("bad coordinates: %v", err)
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("failed to write row: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("failed to write workbook: %v", err)
	}
	return buf
}

func TestWorkbookScanRows(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]interface{}{
		"Listings": {
			{"ID", "Title", "Sector", "Total Hours"},
			{"L-1", "Community Tree Planting", "Environment", 12},
			{"L-2", "Farmer's Market Helper"},
		},
		"Notes": {
			{"free text"},
		},
	}, []string{"Listings", "Notes"})

	wb, err := NewWorkbook(buf)
	if err != nil {
		t.Fatalf("NewWorkbook failed: %v", err)
	}
	defer wb.Close()

	sheets := wb.SheetNames()
	if len(sheets) != 2 || sheets[0] != "Listings" || sheets[1] != "Notes" {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	headers := wb.Headers("Listings")
	if strings.Join(headers, ",") != "ID,Title,Sector,Total Hours" {
		t.Errorf("unexpected headers: %v", headers)
	}
	if wb.Width("Listings") < 4 {
		t.Errorf("expected width >= 4, got %d", wb.Width("Listings"))
	}

	var rows [][]string
	err = wb.ScanRows(context.Background(), "Listings", func(row []string) error {
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		t.Fatalf("ScanRows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[1][3] != "12" {
		t.Errorf("expected numeric cell as 12, got %q", rows[1][3])
	}
	if rows[2][1] != "Farmer's Market Helper" {
		t.Errorf("unexpected title %q", rows[2][1])
	}
}

func TestWorkbookScanRowsIgnoresNumberFormats(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetRow("Sheet1", "A1", &[]interface{}{"ID", "Total Hours", "Cost (INR)"}); err != nil {
		t.Fatalf("failed to write header: %v", err)
	}
	if err := f.SetSheetRow("Sheet1", "A2", &[]interface{}{"L-1", 1250, 1500.5}); err != nil {
		t.Fatalf("failed to write row: %v", err)
	}
	thousands, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	if err != nil {
		t.Fatalf("failed to create style: %v", err)
	}
	rupees := "\u20b9#,##0.00"
	currency, err := f.NewStyle(&excelize.Style{CustomNumFmt: &rupees})
	if err != nil {
		t.Fatalf("failed to create style: %v", err)
	}
	if err := f.SetCellStyle("Sheet1", "B2", "B2", thousands); err != nil {
		t.Fatalf("failed to style cell: %v", err)
	}
	if err := f.SetCellStyle("Sheet1", "C2", "C2", currency); err != nil {
		t.Fatalf("failed to style cell: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("failed to write workbook: %v", err)
	}

	wb, err := NewWorkbook(buf)
	if err != nil {
		t.Fatalf("NewWorkbook failed: %v", err)
	}
	defer wb.Close()

	var rows [][]string
	err = wb.ScanRows(context.Background(), "Sheet1", func(row []string) error {
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		t.Fatalf("ScanRows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1][1] != "1250" {
		t.Errorf("expected hours as 1250, got %q", rows[1][1])
	}
	if rows[1][2] != "1500.5" {
		t.Errorf("expected cost as 1500.5, got %q", rows[1][2])
	}
}

func TestWorkbookScanRowsStopsOnYieldError(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]interface{}{
		"Sheet1": {{"ID"}, {"1"}, {"2"}},
	}, []string{"Sheet1"})

	wb, err := NewWorkbook(buf)
	if err != nil {
		t.Fatalf("NewWorkbook failed: %v", err)
	}
	defer wb.Close()

	stop := errors.New("stop")
	count := 0
	err = wb.ScanRows(context.Background(), "Sheet1", func(row []string) error {
		count++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("expected stop error, got %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 yield, got %d", count)
	}
}

func TestWorkbookCancelled(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]interface{}{
		"Sheet1": {{"ID"}, {"1"}},
	}, []string{"Sheet1"})

	wb, err := NewWorkbook(buf)
	if err != nil {
		t.Fatalf("NewWorkbook failed: %v", err)
	}
	defer wb.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = wb.ScanRows(ctx, "Sheet1", func(row []string) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestWorkbookUnknownSheet(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]interface{}{
		"Sheet1": {{"ID"}},
	}, []string{"Sheet1"})

	wb, err := NewWorkbook(buf)
	if err != nil {
		t.Fatalf("NewWorkbook failed: %v", err)
	}
	defer wb.Close()

	if err := wb.ScanRows(context.Background(), "Nope", func([]string) error { return nil }); err == nil {
		t.Error("expected error for unknown sheet")
	}
}

func TestCorruptWorkbook(t *testing.T) {
	_, err := NewWorkbook(strings.NewReader("this is not a zip archive"))
	if err == nil {
		t.Fatal("expected error for corrupt workbook")
	}
}

func TestRegisteredDriver(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]interface{}{
		"Sheet1": {{"ID", "Title"}},
	}, []string{"Sheet1"})

	provider, err := converters.Open("excel", buf, nil)
	if err != nil {
		t.Fatalf("Open(excel) failed: %v", err)
	}
	if wb, ok := provider.(*Workbook); ok {
		defer wb.Close()
	} else {
		t.Fatalf("expected *Workbook, got %T", provider)
	}
	if got := provider.Headers("Sheet1"); len(got) != 2 {
		t.Errorf("unexpected headers %v", got)
	}
}
