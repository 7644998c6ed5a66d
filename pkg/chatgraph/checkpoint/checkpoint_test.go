package checkpoint

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCheckpoint_New tests defaults set by the constructor.
func TestCheckpoint_New(t *testing.T) {
	cp := New("run-1", "classify", 3, []byte(`{"value":1}`), "joke_teller")

	assert.Equal(t, Version, cp.Version)
	assert.Equal(t, "run-1", cp.RunID)
	assert.Equal(t, "classify", cp.NodeID)
	assert.Equal(t, 3, cp.Sequence)
	assert.Equal(t, "joke_teller", cp.NextNode)
	assert.Equal(t, 1, cp.Attempt)
	assert.False(t, cp.Timestamp.IsZero())
}

// TestCheckpoint_Builders tests the chained setters.
func TestCheckpoint_Builders(t *testing.T) {
	cp := New("run-1", "b", 2, nil, "c").
		WithAttempt(3).
		WithPrevNode("a")

	assert.Equal(t, 3, cp.Attempt)
	assert.Equal(t, "a", cp.PrevNodeID)
}

// TestCheckpoint_RoundTrip tests marshal/unmarshal fidelity.
func TestCheckpoint_RoundTrip(t *testing.T) {
	state, err := json.Marshal(map[string]int{"value": 42})
	require.NoError(t, err)

	original := New("run-1", "classify", 1, state, "advisor").WithPrevNode("")

	data, err := original.Marshal()
	require.NoError(t, err)

	restored, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, original.RunID, restored.RunID)
	assert.Equal(t, original.NodeID, restored.NodeID)
	assert.Equal(t, original.NextNode, restored.NextNode)
	assert.JSONEq(t, string(original.State), string(restored.State))
}

// TestUnmarshal_Invalid tests malformed input.
func TestUnmarshal_Invalid(t *testing.T) {
	_, err := Unmarshal([]byte("not json"))
	assert.Error(t, err)
}
