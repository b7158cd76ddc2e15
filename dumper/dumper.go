// Package dumper prints workbook rows as delimited lines for inspection.
package dumper

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/darianmavgo/internseed/converters/common"
)

// DefaultDelimiter separates cell values on a line.
const DefaultDelimiter = "|"

// Lines yields one line per sheet row, header included, in sheet order.
// Rows are padded to the sheet width so missing cells render as "".
func Lines(ctx context.Context, provider common.RowProvider, sheet, delimiter string, yield func(line string) error) error {
	width := provider.Width(sheet)
	return provider.ScanRows(ctx, sheet, func(row []string) error {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			row = padded
		}
		return yield(strings.Join(row, delimiter))
	})
}

// Dump writes every line of the sheet to w and returns the number of rows.
func Dump(ctx context.Context, provider common.RowProvider, sheet, delimiter string, w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)
	count := 0
	err := Lines(ctx, provider, sheet, delimiter, func(line string) error {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
		count++
		return nil
	})
	if flushErr := bw.Flush(); flushErr != nil && err == nil {
		err = fmt.Errorf("failed to flush output: %w", flushErr)
	}
	return count, err
}
