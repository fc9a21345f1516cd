// Package hashstring is the default façade (C5) over store.Engine: it
// adapts the core's optional 64-bit hashes to the decimal strings an
// external caller (an HTTP handler, a CLI flag, a test fixture) naturally
// works with, and specializes the core's generic value type to NullString,
// a nullable string.
//
// Parsing is strict base-10: an empty or unparseable string is treated as
// an absent hash everywhere an absent hash is a legal input. Where a
// concrete hash is required (Seed) an unparseable string instead reports
// store.InvalidInput, since the core itself never receives anything but a
// well-formed optional hash.
package hashstring
