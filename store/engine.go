package store

import (
	"log"
	"sync"
)

// Engine is the concurrency wrapper (C4): a single mutex serializes every
// Store-touching operation. Reader methods copy their results into freshly
// allocated slices before releasing the mutex, so callers always iterate a
// frozen, point-in-time image rather than a live view (§5).
//
// Engine is the package's main export — callers construct one with
// NewEngine and drive it for the lifetime of one logical token domain.
type Engine[V comparable] struct {
	mu    sync.Mutex
	store *rawStore[V]
}

// NewEngine constructs an empty Engine ready to Seed and Stage tokens.
func NewEngine[V comparable](opts ...Option) *Engine[V] {
	cfg := applyOptions(opts)
	return &Engine[V]{store: newRawStore[V](cfg.initialCapacity)}
}

// Seed registers a new, already-committed token at hash h with value v.
// It fails with DuplicateHash if h already names a token.
func (e *Engine[V]) Seed(h Hash, v V) OpResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	result := e.store.seed(h, v)
	if result == Success {
		log.Printf("store: seed hash=%d success", h)
	} else {
		log.Printf("store: seed hash=%d result=%s", h, result)
	}
	return result
}

// Stage records a pending insert, modify, or delete for the next Commit.
// old/new follow §4.2's dispatch: old=nil,new=nil is InvalidInput;
// old=Some,new=nil stages a delete; old=nil,new=Some stages an insert;
// both Some stages a modify (a rename, optionally changing the value).
func (e *Engine[V]) Stage(old, new *Hash, v V) OpResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	result := e.store.stageDispatch(old, new, v)
	log.Printf("store: stage old=%s new=%s result=%s", hashLog(old), hashLog(new), result)
	return result
}

// Commit applies every currently staged change atomically: it updates each
// staged identity's (previous, current) pair, refills the committed-change
// log, clears staging, and prunes the value pool.
func (e *Engine[V]) Commit() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.store.commit()
	log.Printf("store: commit applied")
}

// Discard clears every pending staged change without altering committed
// state, then prunes the value pool.
func (e *Engine[V]) Discard() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.store.discard()
	log.Printf("store: discard applied")
}

// TryGetSnapshot returns the committed view of the token currently named by
// h. It returns false if h is unmapped, the token is staged for deletion,
// or the token is already committed-deleted.
func (e *Engine[V]) TryGetSnapshot(h Hash) (Snapshot[V], bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.store.tryGetSnapshot(h)
}

// GetCommittedDiff returns the change produced by the most recent Commit,
// one entry per identity whose current hash actually changed.
func (e *Engine[V]) GetCommittedDiff() []Diff[V] {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.store.getCommittedDiff()
}

// GetUncommittedDiff returns the pending change each staged identity would
// produce if Commit were called now.
func (e *Engine[V]) GetUncommittedDiff() []Diff[V] {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.store.getUncommittedDiff()
}

// GetFullDiff returns the net committed change from each token's seed hash
// (if any) to its current hash, collapsing every intermediate commit.
func (e *Engine[V]) GetFullDiff() []Diff[V] {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.store.getFullDiff()
}

// GetFullCurrentSnapshot returns one Snapshot per token reflecting the
// uncommitted image: staged identities report their staged target as
// current and their committed current as previous.
func (e *Engine[V]) GetFullCurrentSnapshot() []Snapshot[V] {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.store.getFullCurrentSnapshot()
}

func hashLog(h *Hash) string {
	if h == nil {
		return "<none>"
	}
	return h.String()
}
