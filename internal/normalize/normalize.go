// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize canonicalizes the identifiers every downstream stage
// keys on. This is the only place the "same identifier" decision is made;
// other stages treat normalized DOIs and titles as opaque keys.
package normalize

import "strings"

// doiPrefixes are resolver-URL prefixes stripped from DOI values. Matched
// after lowercasing, so one spelling per host suffices.
var doiPrefixes = []string{
	"https://doi.org/",
	"http://doi.org/",
	"https://dx.doi.org/",
	"http://dx.doi.org/",
	"doi.org/",
	"doi:",
}

// DOI returns the canonical form of a DOI: trimmed, lowercased, with any
// resolver-URL prefix removed. Empty input stays empty. Idempotent:
// DOI(DOI(x)) == DOI(x).
func DOI(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, prefix := range doiPrefixes {
		if strings.HasPrefix(v, prefix) {
			v = v[len(prefix):]
			break
		}
	}
	return strings.TrimSpace(v)
}

// Title returns the canonical form of a title: trimmed, lowercased, with
// internal whitespace runs collapsed to a single space. Empty input stays
// empty. Idempotent.
func Title(value string) string {
	return strings.Join(strings.Fields(strings.ToLower(value)), " ")
}
