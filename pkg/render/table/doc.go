// Package table renders crates.io search results as a column-aligned text
// table.
//
// # Overview
//
// Rendering is two steps. [ComputeWidths] measures every column, then
// [Render] (or [Write]) lays the records out against those widths:
//
//	w := table.ComputeWidths(found)
//	if err := table.Write(os.Stdout, found, w); err != nil {
//	    return err
//	}
//
// # Layout
//
// Three columns are printed, in this order: name, max_stable_version and
// updated_at. Each line starts with a two-space margin (left out below) and
// columns are separated by two spaces:
//
//	name  max_stable_version            updated_at
//	====  ==================  ====================
//	 abc               1.0.0            2024-01-01
//	  de                      2023-06-15T00:00:00Z
//
// Every cell is right-aligned by padding on the left. A crate without a
// stable release gets a blank max_stable_version cell.
//
// # Widths
//
// A column is as wide as the widest of its header label and its values.
// Widths are display widths (see github.com/mattn/go-runewidth), not byte
// lengths: "ééééé" is five cells wide and East Asian wide characters count
// as two. For ASCII the two agree. Ambiguous-width runes always count as one
// cell, whatever the locale (LANG, LC_ALL, RUNEWIDTH_EASTASIAN), so output
// depends only on the records. Cells are never truncated:
// a value wider than its column makes [Render] fail with [ErrFieldOverflow].
package table
