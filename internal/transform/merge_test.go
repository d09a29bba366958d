package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/treemarkgo/internal/rendertree"
)

func entry(name string, node rendertree.Node) childEntry {
	return childEntry{name: name, value: node}
}

func TestMergeChildren_Direct(t *testing.T) {
	parent := rendertree.Node{rendertree.TypeKey: "parent", "0": rendertree.Node{}}
	children := []childEntry{
		entry("", rendertree.Node{rendertree.TypeKey: "first"}),
		entry("hero", rendertree.Node{rendertree.TypeKey: "second"}),
	}

	require.NoError(t, mergeChildren(parent, children, false, "x_panel_component"))

	assert.Equal(t, rendertree.Node{rendertree.TypeKey: "first"}, parent["1"],
		"positional children append after existing indexes")
	assert.Equal(t, rendertree.Node{rendertree.TypeKey: "second"}, parent["hero"])
}

func TestMergeChildren_RepeatedNamesCollapseToList(t *testing.T) {
	parent := rendertree.New()
	children := []childEntry{
		entry("item", rendertree.Node{rendertree.ValueKey: "one"}),
		entry("item", rendertree.Node{rendertree.ValueKey: "two"}),
		entry("item", rendertree.Node{rendertree.ValueKey: "three"}),
	}

	require.NoError(t, mergeChildren(parent, children, false, ""))

	list, ok := parent["item"].([]any)
	require.True(t, ok, "second occurrence wraps the slot into a list")
	require.Len(t, list, 3)
	assert.Equal(t, rendertree.Node{rendertree.ValueKey: "one"}, list[0])
	assert.Equal(t, rendertree.Node{rendertree.ValueKey: "three"}, list[2])
}

func TestMergeChildren_BubbleFindsTheLeaf(t *testing.T) {
	leaf := rendertree.New()
	parent := rendertree.Node{
		rendertree.TypeKey: "panel",
		"body":             rendertree.Node{"content": leaf},
	}

	require.NoError(t, mergeChildren(parent, []childEntry{
		entry("", rendertree.Node{rendertree.TagKey: "p"}),
	}, true, "x_panel_component"))

	assert.Equal(t, rendertree.Node{rendertree.TagKey: "p"}, leaf["0"],
		"children land at the single zero-child leaf")
	_, topLevel := parent["0"]
	assert.False(t, topLevel)
}

func TestMergeChildren_BubbleWithNoSlotsMergesHere(t *testing.T) {
	parent := rendertree.Node{rendertree.TypeKey: "panel"}

	require.NoError(t, mergeChildren(parent, []childEntry{
		entry("hero", rendertree.Node{rendertree.TagKey: "img"}),
	}, true, "x_panel_component"))

	assert.Equal(t, rendertree.Node{rendertree.TagKey: "img"}, parent["hero"])
}

func TestMergeChildren_BubbleRejectsSeveralSlots(t *testing.T) {
	parent := rendertree.Node{
		"header": rendertree.New(),
		"footer": rendertree.New(),
	}

	err := mergeChildren(parent, []childEntry{entry("", rendertree.New())}, true, "x_panel_component")

	var ambiguous *AmbiguousDeepEmbedError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, "x_panel_component", ambiguous.DispatchKey)
	assert.Equal(t, []string{"footer", "header"}, ambiguous.Slots)
}

func TestMergeChildren_BubbleRejectsNonNodeSlot(t *testing.T) {
	parent := rendertree.Node{"title": "plain string"}

	err := mergeChildren(parent, []childEntry{entry("", rendertree.New())}, true, "x_panel_component")

	var ambiguous *AmbiguousDeepEmbedError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, []string{"title"}, ambiguous.Slots,
		"descent needs a render-node slot to recurse into")
}

func TestMergeChildren_NothingToMergeNeverFails(t *testing.T) {
	parent := rendertree.Node{
		"header": rendertree.New(),
		"footer": rendertree.New(),
	}

	require.NoError(t, mergeChildren(parent, nil, true, "x_panel_component"),
		"an ambiguous shape without children is not an error")
}
