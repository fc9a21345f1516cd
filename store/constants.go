package store

// defaultInitialCapacity seeds the internal maps' initial size when a
// caller doesn't supply WithInitialCapacity. Small enough to cost nothing
// for a throwaway Engine, large enough to dodge the first few growth
// rehashes for a typical workload.
const defaultInitialCapacity = 64
