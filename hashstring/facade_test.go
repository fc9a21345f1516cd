package hashstring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GMalynovsky/statekeeper/hashstring"
	"github.com/GMalynovsky/statekeeper/store"
)

func TestParseHashEmptyOrUnparseableIsAbsent(t *testing.T) {
	assert.Nil(t, hashstring.ParseHash(""))
	assert.Nil(t, hashstring.ParseHash("not-a-number"))
	assert.Nil(t, hashstring.ParseHash("12.5"))
}

func TestParseHashRoundTrip(t *testing.T) {
	got := hashstring.ParseHash("42")
	require.NotNil(t, got)
	assert.Equal(t, store.Hash(42), *got)
	assert.Equal(t, "42", hashstring.FormatHash(got))
}

func TestFormatHashNoneIsEmptyString(t *testing.T) {
	assert.Equal(t, "", hashstring.FormatHash(nil))
}

func TestSeedWithUnparseableHashIsInvalidInput(t *testing.T) {
	s := hashstring.New()
	assert.Equal(t, store.InvalidInput, s.Seed("not-a-hash", hashstring.Some("A")))
	assert.Equal(t, store.InvalidInput, s.Seed("", hashstring.Some("A")))
}

func TestBasicSeedModifyCommitOverStrings(t *testing.T) {
	s := hashstring.New()

	require.Equal(t, store.Success, s.Seed("1", hashstring.Some("A")))
	require.Equal(t, store.Success, s.Stage("1", "2", hashstring.Some("B")))
	s.Commit()

	snap, ok := s.TryGetSnapshot("2")
	require.True(t, ok)
	assert.Equal(t, "1", snap.InitialHash)
	assert.Equal(t, "1", snap.PreviousHash)
	assert.Equal(t, "2", snap.CurrentHash)
	assert.Equal(t, hashstring.Some("A"), snap.InitialValue)
	assert.Equal(t, hashstring.Some("A"), snap.PreviousValue)
	assert.Equal(t, hashstring.Some("B"), snap.CurrentValue)

	_, ok = s.TryGetSnapshot("1")
	assert.False(t, ok)
}

func TestStageBothEmptyIsInvalidInput(t *testing.T) {
	s := hashstring.New()
	assert.Equal(t, store.InvalidInput, s.Stage("", "", hashstring.None))
}

func TestMixedBatchCommittedDiffOverStrings(t *testing.T) {
	s := hashstring.New()

	require.Equal(t, store.Success, s.Seed("1", hashstring.Some("A")))
	require.Equal(t, store.Success, s.Seed("2", hashstring.Some("B")))

	require.Equal(t, store.Success, s.Stage("1", "11", hashstring.Some("A2")))
	require.Equal(t, store.Success, s.Stage("2", "", hashstring.None))
	s.Commit()

	diffs := s.GetCommittedDiff()
	require.Len(t, diffs, 2)

	var sawModify, sawDelete bool
	for _, d := range diffs {
		switch d.RightHash {
		case "11":
			sawModify = true
			assert.Equal(t, "1", d.LeftHash)
			assert.Equal(t, hashstring.Some("A2"), d.RightValue)
		case "":
			sawDelete = true
			assert.Equal(t, "2", d.LeftHash)
			assert.Equal(t, hashstring.None, d.RightValue)
		}
	}
	assert.True(t, sawModify)
	assert.True(t, sawDelete)
}
