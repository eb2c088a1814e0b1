// Package uds provides the identifier catalogs of the ISO 14229 Unified
// Diagnostic Services protocol: service identifiers (SID), sub-function
// identifiers, and negative response codes (NRC).
//
// The catalogs are closed, immutable value sets fixed by the standard. Every
// identifier is exposed under two names resolving to the same constant: the
// full ISO name and the short mnemonic the standard's tables use, e.g.
//
//	uds.DiagnosticSessionControl == uds.DSC == 0x10
//
// Sub-function identifiers are grouped by the service they belong to. The
// grouping is documentation only; no service to sub-function validation is
// performed anywhere in this module.
//
// Request construction lives in the request package; this package holds no
// behavior beyond name lookup.
package uds
