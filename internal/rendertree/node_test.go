package rendertree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMetaKey(t *testing.T) {
	testCases := []struct {
		key      string
		expected bool
	}{
		{key: "#type", expected: true},
		{key: "#attributes", expected: true},
		{key: "#custom", expected: true},
		{key: "0", expected: false},
		{key: "header", expected: false},
		{key: "", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsMetaKey(tc.key))
		})
	}
}

func TestNode_Attributes(t *testing.T) {
	n := New()
	assert.Nil(t, n.Attributes(), "fresh node has no attribute map")

	attrs := n.EnsureAttributes()
	require.NotNil(t, attrs)
	attrs["id"] = "main"

	require.Equal(t, attrs["id"], n.Attributes()["id"], "EnsureAttributes must install the map on the node")

	n.SetAttribute("lang", "en")
	assert.Equal(t, "en", n.Attributes()["lang"])
}

func TestNode_ChildKeys_Ordering(t *testing.T) {
	n := Node{
		"#type":  "container",
		"10":     New(),
		"2":      New(),
		"0":      New(),
		"header": New(),
		"aside":  New(),
	}

	keys := n.ChildKeys()
	require.Len(t, keys, 5)
	assert.Equal(t, []string{"0", "2", "10"}, keys[:3], "positional keys sort numerically")
	assert.Equal(t, []string{"aside", "header"}, keys[3:], "named keys sort lexically after positional ones")
	assert.Equal(t, 5, n.ChildCount())
}

func TestNode_NextIndex(t *testing.T) {
	n := New()
	assert.Equal(t, 0, n.NextIndex())

	n["0"] = New()
	n["1"] = New()
	assert.Equal(t, 2, n.NextIndex())

	// Named and metadata keys never influence positional indexing.
	n["header"] = New()
	n["#type"] = "container"
	assert.Equal(t, 2, n.NextIndex())

	// Gaps are not refilled; appending continues past the highest index.
	n["7"] = New()
	assert.Equal(t, 8, n.NextIndex())
}
