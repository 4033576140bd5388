package dom_test

import (
	"testing"

	"github.com/delaneyj/morphparty/dom"
	"github.com/stretchr/testify/assert"
)

// tree mutation should keep parent pointers and order consistent
func TestTreeMutation(t *testing.T) {
	p := dom.El("ul")
	a := dom.El("li")
	b := dom.El("li")
	c := dom.El("li")

	p.AppendChild(a, b)
	assert.Equal(t, []dom.Node{a, b}, p.Children())
	assert.Equal(t, p, a.Parent())

	p.InsertBefore(c, b)
	assert.Equal(t, []dom.Node{a, c, b}, p.Children())
	assert.Equal(t, c, dom.NextSibling(a))
	assert.Nil(t, dom.NextSibling(b))

	// InsertBefore doubles as the move primitive.
	p.InsertBefore(b, a)
	assert.Equal(t, []dom.Node{b, a, c}, p.Children())

	p.RemoveChild(a)
	assert.Equal(t, []dom.Node{b, c}, p.Children())
	assert.Nil(t, a.Parent())

	p.RemoveChildren()
	assert.Zero(t, p.ChildCount())
	assert.Nil(t, b.Parent())
}

// inserting before a non-child should fail loudly
func TestInsertBeforeForeignRefPanics(t *testing.T) {
	p := dom.El("div")
	other := dom.El("span")
	assert.Panics(t, func() {
		p.InsertBefore(dom.Txt("x"), other)
	})
}

// key derivation: id wins, then data-key, text nodes are unkeyed
func TestNodeKey(t *testing.T) {
	assert.Equal(t, "", dom.NodeKey(dom.Txt("hi")))
	assert.Equal(t, "", dom.NodeKey(dom.El("div")))

	byID := dom.ElAttrs("div", map[string]string{"id": "row-1", dom.KeyAttr: "ignored"})
	assert.Equal(t, "row-1", dom.NodeKey(byID))

	byKey := dom.ElAttrs("div", map[string]string{dom.KeyAttr: "k7"})
	assert.Equal(t, "k7", dom.NodeKey(byKey))
}

// descendant ids collect strictly below the root
func TestDescendantIDs(t *testing.T) {
	e := dom.ElAttrs("section", map[string]string{"id": "root"},
		dom.El("div",
			dom.ElAttrs("span", map[string]string{"id": "a"}),
		),
		dom.ElAttrs("p", map[string]string{"id": "b"}),
		dom.Txt("text"),
	)

	ids := dom.DescendantIDs(e)
	assert.ElementsMatch(t, []string{"a", "b"}, ids.ToSlice())
	assert.False(t, ids.Contains("root"), "the element's own id is not a descendant id")
}

// structural equality and hashing should agree
func TestEqualAndHash(t *testing.T) {
	mk := func() dom.Node {
		return dom.ElAttrs("div", map[string]string{"class": "card"},
			dom.El("h1", dom.Txt("title")),
			dom.Txt("body"),
		)
	}

	a, b := mk(), mk()
	assert.True(t, dom.Equal(a, b))
	assert.Equal(t, dom.Hash(a), dom.Hash(b))

	c := dom.ElAttrs("div", map[string]string{"class": "card"},
		dom.El("h1", dom.Txt("other")),
		dom.Txt("body"),
	)
	assert.False(t, dom.Equal(a, c))
	assert.NotEqual(t, dom.Hash(a), dom.Hash(c))

	assert.False(t, dom.Equal(dom.Txt("x"), dom.El("x")))
	assert.True(t, dom.Equal(dom.Txt("x"), dom.Txt("x")))
}
