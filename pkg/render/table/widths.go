package table

import (
	runewidth "github.com/mattn/go-runewidth"

	"github.com/matzehuels/checkcrates/pkg/integrations/crates"
)

// Header labels, in column order.
const (
	HeaderName             = "name"
	HeaderMaxStableVersion = "max_stable_version"
	HeaderUpdatedAt        = "updated_at"
)

// Widths holds the display width of each rendered column.
//
// A Widths produced by [ComputeWidths] is never narrower than its header
// label or any value in the records it was computed from.
type Widths struct {
	Name             int
	MaxStableVersion int
	UpdatedAt        int
}

// column binds a header label to the value it renders and the width slot it
// occupies in [Widths].
type column struct {
	header string
	value  func(crates.Crate) string
	width  func(*Widths) *int
}

var columns = []column{
	{
		header: HeaderName,
		value:  func(c crates.Crate) string { return c.Name },
		width:  func(w *Widths) *int { return &w.Name },
	},
	{
		header: HeaderMaxStableVersion,
		value:  stableVersion,
		width:  func(w *Widths) *int { return &w.MaxStableVersion },
	},
	{
		header: HeaderUpdatedAt,
		value:  func(c crates.Crate) string { return c.UpdatedAt },
		width:  func(w *Widths) *int { return &w.UpdatedAt },
	},
}

// stableVersion renders an absent stable version as the empty string.
func stableVersion(c crates.Crate) string {
	v, _ := c.StableVersion()
	return v
}

// ComputeWidths returns, for each column, the widest of its header label
// and every record's rendered value. With no records the widths are the
// header label widths. The result does not depend on record order.
func ComputeWidths(records []crates.Crate) Widths {
	var w Widths
	for _, col := range columns {
		slot := col.width(&w)
		*slot = displayWidth(col.header)
		for _, c := range records {
			*slot = max(*slot, displayWidth(col.value(c)))
		}
	}
	return w
}

// widthCondition fixes ambiguous-width runes at one cell. The package-level
// runewidth functions consult LANG, LC_ALL and RUNEWIDTH_EASTASIAN.
var widthCondition = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// displayWidth is the number of terminal cells s occupies. For ASCII text
// it equals len(s).
func displayWidth(s string) int {
	return widthCondition.StringWidth(s)
}
