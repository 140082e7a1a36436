// Package integrations provides HTTP clients for package registry APIs.
//
// # Overview
//
// The shared [Client] sends one GET request per call with a fixed set of
// default headers and maps failures onto error codes:
//
//   - the request could not complete, or the status was not 200:
//     NETWORK_ERROR
//   - the body could not be read: RESPONSE_READ_ERROR
//
// Decoding is left to the registry subpackages, which report schema
// mismatches as DECODE_ERROR.
//
// Registry subpackages:
//
//   - [crates]: Rust crates.io search
//
// # Client Pattern
//
//	client := crates.NewClient("", "")
//	found, err := client.Search(ctx, "serde")
//
// [crates]: github.com/matzehuels/checkcrates/pkg/integrations/crates
package integrations
