package crates

import (
	"encoding/json"
	"fmt"

	apperrors "github.com/matzehuels/checkcrates/pkg/errors"
)

// searchResponse mirrors GET /api/v1/crates. Pointers distinguish a missing
// field from its zero value so required fields can be enforced.
type searchResponse struct {
	Crates *[]crateJSON `json:"crates"`
}

type crateJSON struct {
	ID               *string            `json:"id"`
	Name             *string            `json:"name"`
	MaxVersion       *string            `json:"max_version"`
	MaxStableVersion *string            `json:"max_stable_version"`
	UpdatedAt        *string            `json:"updated_at"`
	CreatedAt        *string            `json:"created_at"`
	Description      *string            `json:"description"`
	License          *string            `json:"license"`
	Documentation    *string            `json:"documentation"`
	Homepage         *string            `json:"homepage"`
	Repository       *string            `json:"repository"`
	Downloads        *uint64            `json:"downloads"`
	RecentDownloads  *uint64            `json:"recent_downloads"`
	Categories       []string           `json:"categories"`
	Keywords         []string           `json:"keywords"`
	Versions         []uint64           `json:"versions"`
	Links            *map[string]string `json:"links"`
	ExactMatch       *bool              `json:"exact_match"`
}

// Decode parses a crates.io search response body into crates, in the order
// the registry returned them.
//
// The body must be a JSON object with a "crates" array. Every entry needs a
// non-empty id, name and max_version, plus updated_at, created_at,
// downloads and links present and non-null. Any violation, including a value of the wrong JSON type, returns an
// [apperrors.ErrCodeDecode] error and no crates.
func Decode(text string) ([]Crate, error) {
	var resp searchResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeDecode, err, "failed to deserialize")
	}
	if resp.Crates == nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeDecode, errMissingField("crates"), "failed to deserialize")
	}

	out := make([]Crate, 0, len(*resp.Crates))
	for i, raw := range *resp.Crates {
		c, err := raw.toCrate()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeDecode, fmt.Errorf("crates[%d]: %w", i, err), "failed to deserialize")
		}
		out = append(out, c)
	}
	return out, nil
}

func (r crateJSON) toCrate() (Crate, error) {
	required := []struct {
		name  string
		value *string
	}{
		{"id", r.ID},
		{"name", r.Name},
		{"max_version", r.MaxVersion},
	}
	for _, f := range required {
		if f.value == nil {
			return Crate{}, errMissingField(f.name)
		}
		if *f.value == "" {
			return Crate{}, fmt.Errorf("empty field `%s`", f.name)
		}
	}
	present := []struct {
		name string
		ok   bool
	}{
		{"updated_at", r.UpdatedAt != nil},
		{"created_at", r.CreatedAt != nil},
		{"downloads", r.Downloads != nil},
		{"links", r.Links != nil},
	}
	for _, f := range present {
		if !f.ok {
			return Crate{}, errMissingField(f.name)
		}
	}

	return Crate{
		ID:               *r.ID,
		Name:             *r.Name,
		MaxVersion:       *r.MaxVersion,
		MaxStableVersion: r.MaxStableVersion,
		UpdatedAt:        *r.UpdatedAt,
		CreatedAt:        *r.CreatedAt,
		Description:      r.Description,
		License:          r.License,
		Documentation:    r.Documentation,
		Homepage:         r.Homepage,
		Repository:       r.Repository,
		Downloads:        *r.Downloads,
		RecentDownloads:  r.RecentDownloads,
		Categories:       r.Categories,
		Keywords:         r.Keywords,
		Versions:         r.Versions,
		Links:            *r.Links,
		ExactMatch:       r.ExactMatch,
	}, nil
}

func errMissingField(name string) error {
	return fmt.Errorf("missing field `%s`", name)
}
