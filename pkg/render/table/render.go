package table

import (
	"io"
	"strings"

	apperrors "github.com/matzehuels/checkcrates/pkg/errors"
	"github.com/matzehuels/checkcrates/pkg/integrations/crates"
)

const (
	// margin prefixes every line.
	margin = "  "

	// gap separates adjacent columns.
	gap = "  "

	separatorRune = "="
)

// ErrFieldOverflow is returned when a value is wider than its column.
// Widths from [ComputeWidths] never trigger it.
var ErrFieldOverflow = apperrors.New(apperrors.ErrCodeInternal, "field wider than its column")

// Render lays out records as text lines: a header line, a separator line of
// '=' runs, then one line per record in input order. Every field is
// right-aligned to its column width.
//
// Render returns an error wrapping [ErrFieldOverflow], and no lines, if any
// field would have to be truncated.
func Render(records []crates.Crate, w Widths) ([]string, error) {
	lines := make([]string, 0, len(records)+2)

	header, err := row(w, func(col column) string { return col.header })
	if err != nil {
		return nil, err
	}
	lines = append(lines, header)

	sep, err := row(w, func(col column) string {
		return strings.Repeat(separatorRune, *col.width(&w))
	})
	if err != nil {
		return nil, err
	}
	lines = append(lines, sep)

	for _, c := range records {
		line, err := row(w, func(col column) string { return col.value(c) })
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Write renders records and writes the lines to out, one per line.
// Nothing is written if rendering fails.
func Write(out io.Writer, records []crates.Crate, w Widths) error {
	lines, err := Render(records, w)
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	_, err = io.WriteString(out, b.String())
	return err
}

func row(w Widths, cell func(column) string) (string, error) {
	var b strings.Builder
	b.WriteString(margin)
	for i, col := range columns {
		if i > 0 {
			b.WriteString(gap)
		}
		padded, err := padLeft(cell(col), *col.width(&w))
		if err != nil {
			return "", apperrors.Wrap(apperrors.ErrCodeInternal, err, "column %s", col.header)
		}
		b.WriteString(padded)
	}
	return b.String(), nil
}

// padLeft right-aligns s in a field of the given display width.
func padLeft(s string, width int) (string, error) {
	n := width - displayWidth(s)
	if n < 0 {
		return "", ErrFieldOverflow
	}
	return strings.Repeat(" ", n) + s, nil
}
