package table

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	apperrors "github.com/matzehuels/checkcrates/pkg/errors"
	"github.com/matzehuels/checkcrates/pkg/integrations/crates"
)

// cells splits a rendered line back into its column fields.
func cells(t *testing.T, line string, w Widths) []string {
	t.Helper()
	if !strings.HasPrefix(line, margin) {
		t.Fatalf("line %q lacks margin", line)
	}
	rest := line[len(margin):]
	var out []string
	for i, width := range []int{w.Name, w.MaxStableVersion, w.UpdatedAt} {
		if i > 0 {
			if !strings.HasPrefix(rest, gap) {
				t.Fatalf("line %q lacks gap before column %d", line, i)
			}
			rest = rest[len(gap):]
		}
		if len(rest) < width {
			t.Fatalf("line %q too short for column %d", line, i)
		}
		out = append(out, rest[:width])
		rest = rest[width:]
	}
	if rest != "" {
		t.Fatalf("line %q has trailing text %q", line, rest)
	}
	return out
}

func TestRenderScenario(t *testing.T) {
	records := sampleRecords()
	w := ComputeWidths(records)

	lines, err := Render(records, w)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	want := []string{
		"  name  max_stable_version" + strings.Repeat(" ", 12) + "updated_at",
		"  ====  ==================  ====================",
		"   abc  " + strings.Repeat(" ", 13) + "1.0.0  " + strings.Repeat(" ", 10) + "2024-01-01",
		"    de  " + strings.Repeat(" ", 18) + "  2023-06-15T00:00:00Z",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), strings.Join(lines, "\n"))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d:\n got %q\nwant %q", i, lines[i], want[i])
		}
	}

	if got := cells(t, lines[0], w)[0]; got != "name" {
		t.Errorf("header name cell = %q, want %q", got, "name")
	}
	if got := cells(t, lines[2], w)[0]; got != " abc" {
		t.Errorf("first row name cell = %q, want %q", got, " abc")
	}
	if got := cells(t, lines[3], w)[0]; got != "  de" {
		t.Errorf("second row name cell = %q, want %q", got, "  de")
	}
}

func TestRenderEmpty(t *testing.T) {
	w := ComputeWidths(nil)
	lines, err := Render(nil, w)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	want := []string{
		"  name  max_stable_version  updated_at",
		"  ====  ==================  ==========",
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("Render(nil) =\n%s\nwant\n%s", strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}
}

func TestRenderSeparator(t *testing.T) {
	records := []crates.Crate{
		{Name: "serde_json", MaxStableVersion: strPtr("1.0.145"), UpdatedAt: "2025-09-14T17:30:12.123456Z"},
	}
	w := ComputeWidths(records)
	lines, err := Render(records, w)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	sep := cells(t, lines[1], w)
	for i, width := range []int{w.Name, w.MaxStableVersion, w.UpdatedAt} {
		if len(sep[i]) != width {
			t.Errorf("separator column %d length = %d, want %d", i, len(sep[i]), width)
		}
		if strings.Trim(sep[i], "=") != "" {
			t.Errorf("separator column %d = %q, want only '='", i, sep[i])
		}
	}
}

func TestRenderPreservesOrder(t *testing.T) {
	names := []string{"zeta", "alpha", "mu", "beta"}
	var records []crates.Crate
	for _, n := range names {
		records = append(records, crates.Crate{Name: n, UpdatedAt: "2024-01-01"})
	}
	w := ComputeWidths(records)
	lines, err := Render(records, w)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	for i, n := range names {
		if got := strings.TrimSpace(cells(t, lines[i+2], w)[0]); got != n {
			t.Errorf("data line %d name = %q, want %q", i, got, n)
		}
	}
}

func TestRenderAbsentStableVersion(t *testing.T) {
	records := []crates.Crate{{Name: "pre", UpdatedAt: "2024-01-01"}}
	w := ComputeWidths(records)
	lines, err := Render(records, w)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got, want := cells(t, lines[2], w)[1], strings.Repeat(" ", w.MaxStableVersion); got != want {
		t.Errorf("absent stable version cell = %q, want %d spaces", got, w.MaxStableVersion)
	}
}

func TestRenderIdempotent(t *testing.T) {
	records := sampleRecords()
	w := ComputeWidths(records)

	first, err := Render(records, w)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	second, err := Render(records, w)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.Join(first, "\n") != strings.Join(second, "\n") {
		t.Error("rendering twice produced different output")
	}
}

func TestRenderOverflow(t *testing.T) {
	records := sampleRecords()
	w := ComputeWidths(records)
	w.UpdatedAt = 5

	lines, err := Render(records, w)
	if !errors.Is(err, ErrFieldOverflow) {
		t.Fatalf("Render() error = %v, want ErrFieldOverflow", err)
	}
	if !apperrors.Is(err, apperrors.ErrCodeInternal) {
		t.Errorf("Render() code = %v, want %s", apperrors.GetCode(err), apperrors.ErrCodeInternal)
	}
	if lines != nil {
		t.Errorf("expected no lines on overflow, got %d", len(lines))
	}
}

func TestWrite(t *testing.T) {
	records := sampleRecords()
	w := ComputeWidths(records)

	var buf bytes.Buffer
	if err := Write(&buf, records, w); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	lines, _ := Render(records, w)
	if want := strings.Join(lines, "\n") + "\n"; buf.String() != want {
		t.Errorf("Write() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestWriteOverflowWritesNothing(t *testing.T) {
	records := sampleRecords()
	w := ComputeWidths(records)
	w.Name = 1

	var buf bytes.Buffer
	if err := Write(&buf, records, w); err == nil {
		t.Fatal("Write() should fail on overflow")
	}
	if buf.Len() != 0 {
		t.Errorf("Write() wrote %q on failure", buf.String())
	}
}

func TestPadLeft(t *testing.T) {
	tests := []struct {
		s       string
		width   int
		want    string
		wantErr bool
	}{
		{"abc", 5, "  abc", false},
		{"abc", 3, "abc", false},
		{"", 3, "   ", false},
		{"", 0, "", false},
		{"日本", 6, "  日本", false},
		{"abcd", 3, "", true},
		{"日本", 3, "", true},
	}
	for _, tt := range tests {
		got, err := padLeft(tt.s, tt.width)
		if (err != nil) != tt.wantErr {
			t.Errorf("padLeft(%q, %d) error = %v, wantErr %v", tt.s, tt.width, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("padLeft(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}
