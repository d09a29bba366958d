package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_SimpleTree(t *testing.T) {
	p := NewParser(nil)

	root, warnings, err := p.Parse(`<section id="s1" class="a b"><h1>Title</h1><p>Hello <em>there</em>!</p></section>`)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.Equal(t, "section", root.Tag)
	require.Equal(t, []Attr{{Name: "id", Value: "s1"}, {Name: "class", Value: "a b"}}, root.Attrs)
	require.Len(t, root.Children, 2)

	h1 := root.Children[0]
	assert.Equal(t, "h1", h1.Tag)
	assert.Equal(t, "Title", h1.Text)

	p1 := root.Children[1]
	assert.Equal(t, "p", p1.Tag)
	assert.Equal(t, "Hello !", p1.Text, "only directly-contained text belongs to the element")
	require.Len(t, p1.Children, 1)
	assert.Equal(t, "there", p1.Children[0].Text)
}

func TestParser_SelfClosingAndVoid(t *testing.T) {
	p := NewParser(nil)

	root, _, err := p.Parse(`<div><x-widget name="a"/><br><img src="x.png"></div>`)
	require.NoError(t, err)
	require.Len(t, root.Children, 3)
	assert.Equal(t, "x-widget", root.Children[0].Tag)
	assert.Equal(t, "br", root.Children[1].Tag)
	assert.Equal(t, "img", root.Children[2].Tag)
}

func TestParser_EntityDecoding(t *testing.T) {
	p := NewParser(nil)

	root, _, err := p.Parse(`<p title="a&amp;b">fish &amp; chips&nbsp;!</p>`)
	require.NoError(t, err)

	title, ok := root.Attr("title")
	require.True(t, ok)
	assert.Equal(t, "a&b", title)
	assert.Equal(t, "fish & chips\u00a0!", root.Text)
}

func TestParser_NamespaceWarnings(t *testing.T) {
	p := NewParser(nil)

	t.Run("undeclared prefix warns", func(t *testing.T) {
		root, warnings, err := p.Parse(`<card:banner>x</card:banner>`)
		require.NoError(t, err)
		require.Equal(t, "card:banner", root.Tag)
		require.Len(t, warnings, 1)
		assert.Equal(t, WarnUnknownNamespace, warnings[0].Kind)
		assert.Equal(t, "card", warnings[0].Detail)
	})

	t.Run("declared prefix does not warn", func(t *testing.T) {
		_, warnings, err := p.Parse(`<card:banner xmlns:card="urn:x-cards">x</card:banner>`)
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("declaration retires with its element", func(t *testing.T) {
		_, warnings, err := p.Parse(`<div><a xmlns:ns="u"><ns:b/></a><ns:c/></div>`)
		require.NoError(t, err)
		require.Len(t, warnings, 1, "ns is out of scope again for <ns:c>")
		assert.Equal(t, "ns", warnings[0].Detail)
	})
}

func TestParser_MissingRoot(t *testing.T) {
	p := NewParser(nil)

	t.Run("two sibling roots", func(t *testing.T) {
		_, _, err := p.Parse(`<td>a</td><td>b</td>`)
		var missing *MissingRootError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, 2, missing.Roots)
	})

	t.Run("empty input", func(t *testing.T) {
		_, _, err := p.Parse("  \n ")
		var missing *MissingRootError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, 0, missing.Roots)
	})

	t.Run("stray text beside the root", func(t *testing.T) {
		_, _, err := p.Parse(`<div>x</div>oops`)
		var missing *MissingRootError
		require.ErrorAs(t, err, &missing)
		assert.True(t, missing.StrayText)
	})
}

func TestParser_Malformed(t *testing.T) {
	p := NewParser(nil)

	t.Run("mismatched closing tag", func(t *testing.T) {
		_, _, err := p.Parse("<div>\n<p>x</div>")
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Message, "</div>")
		assert.Equal(t, 2, parseErr.Line)
	})

	t.Run("unclosed element", func(t *testing.T) {
		_, _, err := p.Parse("<div><p>x")
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Message, "never closed")
	})

	t.Run("closing tag without opener", func(t *testing.T) {
		_, _, err := p.Parse("<div>x</div></div>")
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Message, "unexpected closing tag")
	})
}

func TestParser_DuplicateAttributeFirstWins(t *testing.T) {
	p := NewParser(nil)

	root, _, err := p.Parse(`<div data-x="first" data-x="second"/>`)
	require.NoError(t, err)
	v, ok := root.Attr("data-x")
	require.True(t, ok)
	assert.Equal(t, "first", v)
}
