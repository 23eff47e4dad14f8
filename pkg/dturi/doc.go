// Package dturi provides type-safe resource identification for the IETF
// Datatracker API.
//
// Every record the Datatracker serves is addressed by a resource URI such as
// "/api/v1/person/person/20209/". This package wraps each kind of URI in its
// own Go type so that, for example, a person identifier can never be passed
// where a group identifier is required — the distinction is enforced by the
// compiler, not by runtime checks.
//
// # Core Concepts
//
//  1. Kind: the fixed enumeration of resource kinds the Datatracker exposes
//     (person, email, group, document, and their auxiliary name/state kinds).
//
//  2. Typed URIs: one immutable value type per kind (PersonURI, EmailURI,
//     GroupURI, DocumentURI, ...), each storing only its validated key and
//     rendering the canonical path on demand. Two URIs of the same kind are
//     equal exactly when their normalized paths are equal.
//
//  3. Parsing: construction from a string fails with a validation error
//     unless the string matches the structural pattern for its kind.
//     Absolute Datatracker URLs, missing leading slashes, and missing
//     trailing slashes are normalized before matching.
//
// # Usage Examples
//
//	uri, err := dturi.ParsePersonURI("/api/v1/person/person/20209/")
//	if err != nil {
//	    return err
//	}
//	uri.ID()     // 20209
//	uri.Path()   // "/api/v1/person/person/20209/"
//
//	// Building from a raw key
//	doc, err := dturi.DocumentURIForName("draft-ietf-quic-transport")
//
// Typed URIs marshal to and from JSON as their canonical path strings, so a
// decoded entity's resource_uri field round-trips through this package
// unchanged.
package dturi
