package store

// Mutator (C2) implements the state machine's write path: Seed, Stage,
// Commit, Discard and Prune. Every method here operates on a *rawStore and
// enforces the invariants of §3; callers reach it only through Engine
// (engine.go), which adds the concurrency guarantees of §5.

// seed creates a new, already-committed token at hash h with value v.
// Precondition: h must be absent from the hash index. Returns DuplicateHash
// if that precondition fails, Success otherwise.
func (s *rawStore[V]) seed(h Hash, v V) OpResult {
	if _, exists := s.lookupHash(h); exists {
		return DuplicateHash
	}

	id := NewIdentity()
	s.setHash(h, id)
	s.setValue(h, v)
	s.setInitialValue(id, v)
	hh := h
	s.setState(id, tokenState{initial: &hh, previous: cloneHash(&hh), current: cloneHash(&hh)})
	return Success
}

// stageDispatch implements the four-way dispatch of §4.2's Stage: delete,
// insert, modify, or InvalidInput when both hashes are absent.
func (s *rawStore[V]) stageDispatch(old, target *Hash, v V) OpResult {
	switch {
	case old == nil && target == nil:
		return InvalidInput
	case old != nil && target == nil:
		return s.stageDelete(*old)
	case old == nil && target != nil:
		return s.stageInsert(*target, v)
	default:
		return s.stageModify(*old, *target, v)
	}
}

func (s *rawStore[V]) stageDelete(old Hash) OpResult {
	id, ok := s.lookupHash(old)
	if !ok {
		return UnknownHash
	}
	if s.isStaged(id) {
		return AlreadyStaged
	}
	s.stage(id, nil)
	return Success
}

func (s *rawStore[V]) stageInsert(target Hash, v V) OpResult {
	if _, exists := s.lookupHash(target); exists {
		return DuplicateHash
	}

	id := NewIdentity()
	s.setHash(target, id)
	s.setValue(target, v)
	s.setInitialValue(id, v)
	s.setState(id, tokenState{})
	s.stage(id, &target)
	return Success
}

func (s *rawStore[V]) stageModify(old, target Hash, v V) OpResult {
	id, ok := s.lookupHash(old)
	if !ok {
		return UnknownHash
	}

	if owner, exists := s.lookupHash(target); exists && owner != id {
		return Collision
	}
	if s.isStaged(id) {
		return AlreadyStaged
	}
	if existing, ok := s.getValue(target); ok && existing != v {
		return Collision
	}

	s.setHash(target, id)
	s.setValue(target, v)
	s.stage(id, &target)
	return Success
}

// commit applies every staged change, recording a committed-change entry
// per identity, then clears staging and prunes the value pool.
func (s *rawStore[V]) commit() {
	s.clearLog()

	for _, change := range s.allStaged() {
		st, ok := s.getState(change.id)
		if !ok {
			continue
		}

		s.appendChange(changeRecord{id: change.id, left: cloneHash(st.current), right: cloneHash(change.target)})

		if st.current != nil && !hashEqual(st.current, change.target) {
			s.removeHash(*st.current)
		}

		st.previous = cloneHash(st.current)
		st.current = cloneHash(change.target)
		s.setState(change.id, st)

		if change.target != nil {
			s.setHash(*change.target, change.id)
		}
	}

	s.clearStaging()
	s.prune(s.liveHashes())
}

// discard abandons all pending staged changes without altering committed
// state. Unlike commit, staging here is not merely advisory: stageInsert and
// stageModify both install a byHash entry for their target eagerly (that's
// what makes a second concurrent stage on the same target collide), so
// discard must undo those eager writes itself, not just empty the staging
// map. A staged insert also has no committed state to roll back to — its
// identity never existed before the stage — so it is removed entirely
// rather than left behind as a phantom.
func (s *rawStore[V]) discard() {
	for _, change := range s.allStaged() {
		st, ok := s.getState(change.id)
		if !ok {
			continue
		}

		if st.current == nil {
			if change.target != nil {
				s.removeHash(*change.target)
			}
			s.removeState(change.id)
			continue
		}

		if change.target != nil && !hashEqual(change.target, st.current) {
			s.removeHash(*change.target)
		}
	}

	s.clearStaging()
	s.prune(s.liveHashes())
}

// liveHashes computes the set of hashes referenced by any state slot or any
// current staged target, the universe Prune preserves in the value pool.
func (s *rawStore[V]) liveHashes() map[Hash]struct{} {
	live := make(map[Hash]struct{})
	for _, is := range s.allStates() {
		if is.state.initial != nil {
			live[*is.state.initial] = struct{}{}
		}
		if is.state.previous != nil {
			live[*is.state.previous] = struct{}{}
		}
		if is.state.current != nil {
			live[*is.state.current] = struct{}{}
		}
	}
	for _, change := range s.allStaged() {
		if change.target != nil {
			live[*change.target] = struct{}{}
		}
	}
	return live
}
