package store

// Reader (C3) derives the three diff views and the two snapshot views from
// rawStore state. Every method here is read-only and never fails; absence
// is expressed as a zero-value/empty-sequence result, never an error.

// tryGetSnapshot implements §4.3's TryGetSnapshot: it reports the committed
// image of a token, hiding it entirely if the hash is unmapped or the
// token is staged for deletion or already committed-deleted.
func (s *rawStore[V]) tryGetSnapshot(h Hash) (Snapshot[V], bool) {
	id, ok := s.lookupHash(h)
	if !ok {
		return Snapshot[V]{}, false
	}
	if target, staged := s.staged[id]; staged && target == nil {
		return Snapshot[V]{}, false
	}

	st, ok := s.getState(id)
	if !ok || st.current == nil {
		return Snapshot[V]{}, false
	}

	initialValue, _ := s.getInitialValue(id)
	previousValue := s.poolValueOrZero(st.previous)
	currentValue := s.poolValueOrZero(st.current)

	return Snapshot[V]{
		InitialHash:   cloneHash(st.initial),
		PreviousHash:  cloneHash(st.previous),
		CurrentHash:   cloneHash(st.current),
		InitialValue:  initialValue,
		PreviousValue: previousValue,
		CurrentValue:  currentValue,
	}, true
}

// getCommittedDiff implements §4.3's GetCommittedDiff over the most recent
// Commit's change log.
func (s *rawStore[V]) getCommittedDiff() []Diff[V] {
	out := make([]Diff[V], 0, len(s.changelog))
	for _, rec := range s.changelog {
		if hashEqual(rec.left, rec.right) {
			continue
		}

		st, _ := s.getState(rec.id)
		leftValue := s.sanctuaryOrPoolValue(rec.id, rec.left, st.initial)
		rightValue := s.poolValueOrZero(rec.right)

		out = append(out, Diff[V]{
			LeftHash:   cloneHash(rec.left),
			RightHash:  cloneHash(rec.right),
			LeftValue:  leftValue,
			RightValue: rightValue,
		})
	}
	return out
}

// getUncommittedDiff implements §4.3's GetUncommittedDiff over pending
// staged changes that have not yet been committed.
func (s *rawStore[V]) getUncommittedDiff() []Diff[V] {
	out := make([]Diff[V], 0, len(s.staged))
	for _, change := range s.allStaged() {
		st, ok := s.getState(change.id)
		if !ok {
			continue
		}
		if hashEqual(st.current, change.target) {
			continue
		}

		currentValue := s.sanctuaryOrPoolValue(change.id, st.current, st.initial)
		stagedValue := s.poolValueOrZero(change.target)

		out = append(out, Diff[V]{
			LeftHash:   cloneHash(st.current),
			RightHash:  cloneHash(change.target),
			LeftValue:  currentValue,
			RightValue: stagedValue,
		})
	}
	return out
}

// getFullDiff implements §4.3's GetFullDiff: the net change from each
// token's seed (if any) to its current committed hash, ignoring every
// intermediate commit. Per the resolved Open Question (§9), a committed
// deletion still contributes an (initial → None) entry; a token that was
// inserted (never seeded) and later deleted contributes nothing, whether or
// not its insert was committed first.
func (s *rawStore[V]) getFullDiff() []Diff[V] {
	out := make([]Diff[V], 0, len(s.states))
	for _, is := range s.allStates() {
		st := is.state
		switch {
		case st.initial != nil && !hashEqual(st.initial, st.current):
			initialValue, _ := s.getInitialValue(is.id)
			out = append(out, Diff[V]{
				LeftHash:   cloneHash(st.initial),
				RightHash:  cloneHash(st.current),
				LeftValue:  initialValue,
				RightValue: s.poolValueOrZero(st.current),
			})
		case st.initial == nil && st.current != nil:
			out = append(out, Diff[V]{
				LeftHash:   nil,
				RightHash:  cloneHash(st.current),
				RightValue: s.poolValueOrZero(st.current),
			})
		}
	}
	return out
}

// getFullCurrentSnapshot implements §4.3's GetFullCurrentSnapshot: the
// uncommitted image of every token, including committed-deleted ones.
func (s *rawStore[V]) getFullCurrentSnapshot() []Snapshot[V] {
	out := make([]Snapshot[V], 0, len(s.states))
	for _, is := range s.allStates() {
		st := is.state
		initialValue, _ := s.getInitialValue(is.id)

		snap := Snapshot[V]{
			InitialHash:  cloneHash(st.initial),
			InitialValue: initialValue,
		}

		if target, staged := s.staged[is.id]; staged {
			snap.PreviousHash = cloneHash(st.current)
			snap.PreviousValue = s.poolValueOrZero(st.current)
			snap.CurrentHash = cloneHash(target)
			snap.CurrentValue = s.poolValueOrZero(target)
		} else {
			snap.PreviousHash = cloneHash(st.previous)
			snap.PreviousValue = s.poolValueOrZero(st.previous)
			snap.CurrentHash = cloneHash(st.current)
			snap.CurrentValue = s.poolValueOrZero(st.current)
		}

		out = append(out, snap)
	}
	return out
}

// poolValueOrZero looks up h in the pool, returning the value type's zero
// value when h is nil or has no pool entry.
func (s *rawStore[V]) poolValueOrZero(h *Hash) V {
	var zero V
	if h == nil {
		return zero
	}
	v, ok := s.getValue(*h)
	if !ok {
		return zero
	}
	return v
}

// sanctuaryOrPoolValue implements the recurring "use the sanctuary when
// this hash is the identity's seed hash, otherwise use the pool" rule
// shared by GetCommittedDiff and GetUncommittedDiff.
func (s *rawStore[V]) sanctuaryOrPoolValue(id Identity, h *Hash, initial *Hash) V {
	if h != nil && hashEqual(h, initial) {
		v, _ := s.getInitialValue(id)
		return v
	}
	return s.poolValueOrZero(h)
}
