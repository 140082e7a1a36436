package crates

import (
	packageurl "github.com/package-url/packageurl-go"
)

// Crate is one entry of a crates.io search result.
//
// ID, Name, MaxVersion and UpdatedAt are always set on a decoded Crate.
// MaxStableVersion is nil when the crate has no stable release; renderers
// decide how to display that. UpdatedAt and CreatedAt are kept exactly as
// the registry sent them.
//
// The remaining fields are carried through from the registry response and
// are not used by the table output.
type Crate struct {
	ID               string
	Name             string
	MaxVersion       string
	MaxStableVersion *string
	UpdatedAt        string
	CreatedAt        string

	Description     *string
	License         *string
	Documentation   *string
	Homepage        *string
	Repository      *string
	Downloads       uint64
	RecentDownloads *uint64
	Categories      []string
	Keywords        []string
	Versions        []uint64
	Links           map[string]string
	ExactMatch      *bool
}

// StableVersion returns the latest stable version and whether one exists.
func (c Crate) StableVersion() (string, bool) {
	if c.MaxStableVersion == nil {
		return "", false
	}
	return *c.MaxStableVersion, true
}

// PURL returns the package URL of the crate's latest version,
// e.g. "pkg:cargo/serde@1.0.228".
func (c Crate) PURL() string {
	return packageurl.NewPackageURL(packageurl.TypeCargo, "", c.Name, c.MaxVersion, nil, "").ToString()
}
