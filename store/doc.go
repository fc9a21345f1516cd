// Package store implements an in-memory, transactional token state
// machine: a pool of identity-bearing values addressable by numeric
// hashes, with staged mutations that commit or discard atomically.
//
// A token's hash names it at a point in time; its identity is hidden and
// stable across renames. The package is organized around the pipeline a
// caller drives: Seed or Stage a change against an Engine, then Commit or
// Discard it. Reads (TryGetSnapshot, GetCommittedDiff, GetUncommittedDiff,
// GetFullDiff, GetFullCurrentSnapshot) are derived on demand from the same
// underlying state and never fail.
package store
