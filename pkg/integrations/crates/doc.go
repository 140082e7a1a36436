// Package crates provides an HTTP client for the crates.io search API.
//
// # Overview
//
// This package searches crates.io (https://crates.io), the Rust community's
// package registry, by name:
//
//	client := crates.NewClient("", "")
//	found, err := client.Search(ctx, "serde")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range found {
//	    fmt.Println(c.Name, c.MaxVersion)
//	}
//
// [Client.Search] is [Client.Fetch] followed by [Decode]. The two halves are
// exported separately so callers can log or inspect the raw body.
//
// # Crate
//
// [Decode] returns a [Crate] per search hit:
//
//   - ID, Name, MaxVersion: required, never empty
//   - MaxStableVersion: nil when the crate has no stable release
//   - UpdatedAt, CreatedAt: timestamps as sent by the registry
//   - Description, License, Links, Downloads and friends: carried through
//
// # User-Agent
//
// crates.io requires a User-Agent header; the client always sends one,
// [DefaultUserAgent] unless overridden.
package crates
