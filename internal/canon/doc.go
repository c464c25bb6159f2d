// Package canon produces canonical JSON and content-addressed hashes for
// harness traces and golden snapshots.
//
// Canonical JSON follows RFC 8785 for the value subset the harness emits:
// object keys sorted by UTF-16 code units, strings NFC normalized, no HTML
// escaping, no insignificant whitespace. Floats and nulls are rejected so
// that the same trace always serializes to the same bytes.
package canon
