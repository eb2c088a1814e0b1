// Package request encodes ISO 14229 (UDS) diagnostic requests as
// space-separated, 2-digit uppercase hexadecimal byte tokens, e.g. "10 01"
// for a default-session DiagnosticSessionControl request.
//
// One method exists per UDS service. Every encoded request starts with the
// service identifier byte; field order follows the standard's byte layout.
// Encoding is pure and allocation-local: no transmission, no response
// handling, no session state.
//
// The encoder is permissive. Integer parameters wider than their field are
// silently masked to the low bits rather than rejected; with strict mode
// enabled the truncation is additionally reported through the builder's
// logger, but the output never changes. The only other diagnostic the
// encoder emits is a warning for an unrecognized
// DynamicallyDefineDataIdentifier definition type, in which case the request
// still contains the service identifier and the definition type byte.
//
// Usage Example:
//
//	b := request.New()
//	b.DiagnosticSessionControl(uds.DefaultSession) // "10 01"
//	b.ReadDataByIdentifier(0xF190)                 // "22 F1 90"
//
//	// or through the package-level default builder
//	request.ECUReset(uds.HardReset) // "11 01"
package request
