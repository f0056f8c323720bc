package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_ApplyReplace(t *testing.T) {
	s := State{"score": 10.0}
	err := s.Apply(Delta{"score": 20.0, "tier": "hot"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 20.0, s["score"])
	assert.Equal(t, "hot", s["tier"])
}

func TestState_ApplyAppend(t *testing.T) {
	rules := map[string]MergeRule{"findings": MergeAppend}

	s := State{}
	require.NoError(t, s.Apply(Delta{"findings": "a"}, rules))
	require.NoError(t, s.Apply(Delta{"findings": []interface{}{"b", "c"}}, rules))

	assert.Equal(t, []interface{}{"a", "b", "c"}, s["findings"])
}

func TestState_ApplyMax(t *testing.T) {
	rules := map[string]MergeRule{"confidence": MergeMax}

	s := State{}
	require.NoError(t, s.Apply(Delta{"confidence": 0.4}, rules))
	require.NoError(t, s.Apply(Delta{"confidence": 0.9}, rules))
	require.NoError(t, s.Apply(Delta{"confidence": 0.6}, rules))

	assert.Equal(t, 0.9, s["confidence"])

	err := s.Apply(Delta{"confidence": "high"}, rules)
	assert.Error(t, err)
}

func TestState_ApplyUnion(t *testing.T) {
	rules := map[string]MergeRule{"channels": MergeUnion}

	s := State{}
	require.NoError(t, s.Apply(Delta{"channels": []interface{}{"email", "phone"}}, rules))
	require.NoError(t, s.Apply(Delta{"channels": []interface{}{"phone", "linkedin"}}, rules))

	assert.Equal(t, []interface{}{"email", "phone", "linkedin"}, s["channels"])
}

func TestState_MergeParallelDeterministic(t *testing.T) {
	rules := map[string]MergeRule{
		"notes": MergeAppend,
		"best":  MergeMax,
	}

	deltas := map[string]Delta{
		"branch_b": {"notes": "from b", "best": 3.0},
		"branch_a": {"notes": "from a", "best": 7.0},
	}

	// Branch-name order, regardless of map iteration order.
	for i := 0; i < 10; i++ {
		s := State{}
		require.NoError(t, s.MergeParallel(deltas, rules))
		assert.Equal(t, []interface{}{"from a", "from b"}, s["notes"])
		assert.Equal(t, 7.0, s["best"])
	}
}

func TestState_EncodeDecodeRoundTrip(t *testing.T) {
	s := State{
		"company": "Acme",
		"score":   85.0,
		"tags":    []interface{}{"hot", "expansion"},
	}

	blob, err := EncodeState(s)
	require.NoError(t, err)

	restored, err := DecodeState(blob)
	require.NoError(t, err)
	assert.Equal(t, s, restored)

	empty, err := DecodeState(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestState_FloatTolerantOfForms(t *testing.T) {
	s := State{"a": 1.5, "b": 2, "c": "x"}

	v, ok := s.Float("a")
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)

	v, ok = s.Float("b")
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)

	_, ok = s.Float("c")
	assert.False(t, ok)

	_, ok = s.Float("missing")
	assert.False(t, ok)
}
