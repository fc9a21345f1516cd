package hashstring

import (
	"strconv"

	"github.com/GMalynovsky/statekeeper/store"
)

// ParseHash parses s as a strict base-10 signed 64-bit integer. An empty or
// unparseable string yields a nil (absent) hash rather than an error — the
// core never sees anything but a well-formed optional hash.
func ParseHash(s string) *store.Hash {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	h := store.Hash(v)
	return &h
}

// FormatHash renders h in decimal, or the empty string if h is absent.
func FormatHash(h *store.Hash) string {
	if h == nil {
		return ""
	}
	return strconv.FormatInt(int64(*h), 10)
}

// Snapshot is the string-hash rendering of store.Snapshot[NullString].
type Snapshot struct {
	InitialHash  string
	PreviousHash string
	CurrentHash  string

	InitialValue  NullString
	PreviousValue NullString
	CurrentValue  NullString
}

// Diff is the string-hash rendering of store.Diff[NullString].
type Diff struct {
	LeftHash  string
	RightHash string

	LeftValue  NullString
	RightValue NullString
}

func toSnapshot(s store.Snapshot[NullString]) Snapshot {
	return Snapshot{
		InitialHash:   FormatHash(s.InitialHash),
		PreviousHash:  FormatHash(s.PreviousHash),
		CurrentHash:   FormatHash(s.CurrentHash),
		InitialValue:  s.InitialValue,
		PreviousValue: s.PreviousValue,
		CurrentValue:  s.CurrentValue,
	}
}

func toDiff(d store.Diff[NullString]) Diff {
	return Diff{
		LeftHash:   FormatHash(d.LeftHash),
		RightHash:  FormatHash(d.RightHash),
		LeftValue:  d.LeftValue,
		RightValue: d.RightValue,
	}
}

// Store is the default string-hash façade over a store.Engine[NullString].
type Store struct {
	engine *store.Engine[NullString]
}

// New constructs an empty Store.
func New(opts ...store.Option) *Store {
	return &Store{engine: store.NewEngine[NullString](opts...)}
}

// Seed registers a new, already-committed token at hashString with value.
// An empty or unparseable hashString reports store.InvalidInput, since Seed
// requires a concrete hash.
func (s *Store) Seed(hashString string, value NullString) store.OpResult {
	h := ParseHash(hashString)
	if h == nil {
		return store.InvalidInput
	}
	return s.engine.Seed(*h, value)
}

// Stage records a pending insert, modify, or delete for the next Commit.
// Empty or unparseable hash strings are treated as absent hashes, dispatched
// per §4.2 (both absent reports store.InvalidInput).
func (s *Store) Stage(oldHashString, newHashString string, value NullString) store.OpResult {
	return s.engine.Stage(ParseHash(oldHashString), ParseHash(newHashString), value)
}

// Commit applies every currently staged change.
func (s *Store) Commit() {
	s.engine.Commit()
}

// Discard clears every pending staged change.
func (s *Store) Discard() {
	s.engine.Discard()
}

// TryGetSnapshot returns the committed view of the token currently named by
// hashString.
func (s *Store) TryGetSnapshot(hashString string) (Snapshot, bool) {
	h := ParseHash(hashString)
	if h == nil {
		return Snapshot{}, false
	}
	snap, ok := s.engine.TryGetSnapshot(*h)
	if !ok {
		return Snapshot{}, false
	}
	return toSnapshot(snap), true
}

// GetCommittedDiff returns the change produced by the most recent Commit.
func (s *Store) GetCommittedDiff() []Diff {
	return mapDiffs(s.engine.GetCommittedDiff())
}

// GetUncommittedDiff returns the pending change each staged identity would
// produce if Commit were called now.
func (s *Store) GetUncommittedDiff() []Diff {
	return mapDiffs(s.engine.GetUncommittedDiff())
}

// GetFullDiff returns the net committed change from each token's seed hash
// (if any) to its current hash.
func (s *Store) GetFullDiff() []Diff {
	return mapDiffs(s.engine.GetFullDiff())
}

// GetFullCurrentSnapshot returns one Snapshot per token reflecting the
// uncommitted image.
func (s *Store) GetFullCurrentSnapshot() []Snapshot {
	raw := s.engine.GetFullCurrentSnapshot()
	out := make([]Snapshot, len(raw))
	for i, snap := range raw {
		out[i] = toSnapshot(snap)
	}
	return out
}

func mapDiffs(raw []store.Diff[NullString]) []Diff {
	out := make([]Diff, len(raw))
	for i, d := range raw {
		out[i] = toDiff(d)
	}
	return out
}
