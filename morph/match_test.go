package morph_test

import (
	"testing"

	"github.com/delaneyj/morphparty/dom"
	"github.com/delaneyj/morphparty/morph"
	"github.com/stretchr/testify/assert"
)

// absent nodes never match
func TestMatchAbsent(t *testing.T) {
	assert.Equal(t, morph.OpNone, morph.MatchNodes(nil, dom.Txt("x")))
	assert.Equal(t, morph.OpNone, morph.MatchNodes(dom.Txt("x"), nil))
}

// identity short-circuits to equal
func TestMatchIdentity(t *testing.T) {
	n := dom.El("div")
	assert.Equal(t, morph.OpEqual, morph.MatchNodes(n, n))
}

// text vs element can never be morphed in place
func TestMatchKindMismatch(t *testing.T) {
	assert.Equal(t, morph.OpNone, morph.MatchNodes(dom.Txt("x"), dom.El("div")))
}

// differing explicit keys are a hard veto
func TestMatchKeyVeto(t *testing.T) {
	a := dom.ElAttrs("div", map[string]string{"id": "a"})
	b := dom.ElAttrs("div", map[string]string{"id": "b"})
	assert.Equal(t, morph.OpNone, morph.MatchNodes(a, b))

	sameKey := dom.ElAttrs("div", map[string]string{"id": "a", "class": "x"})
	assert.Equal(t, morph.OpSame, morph.MatchNodes(a, sameKey))
}

// text nodes: equal content is equal, differing content morphs
func TestMatchText(t *testing.T) {
	assert.Equal(t, morph.OpEqual, morph.MatchNodes(dom.Txt("x"), dom.Txt("x")))
	assert.Equal(t, morph.OpSame, morph.MatchNodes(dom.Txt("x"), dom.Txt("y")))
}

// differing tags force replacement
func TestMatchTagMismatch(t *testing.T) {
	assert.Equal(t, morph.OpNone, morph.MatchNodes(dom.El("div"), dom.El("span")))
}

// a checkbox input must never be reused as a text input
func TestMatchInputTypeMismatch(t *testing.T) {
	checkbox := dom.ElAttrs("input", map[string]string{"type": "checkbox"})
	text := dom.ElAttrs("input", map[string]string{"type": "text"})
	assert.Equal(t, morph.OpNone, morph.MatchNodes(checkbox, text))
	assert.Equal(t, morph.OpEqual, morph.MatchNodes(checkbox, dom.ElAttrs("input", map[string]string{"type": "checkbox"})))
}

type stubCtrl struct {
	key string
}

func (s *stubCtrl) Key() string { return s.key }

func (s *stubCtrl) HasRender() bool { return false }

func (s *stubCtrl) MorphProps(next *dom.Element) bool { return false }

func (s *stubCtrl) RequestUpdate() {}

func (s *stubCtrl) Mount() {}

func (s *stubCtrl) Unmount() {}

// controller-owned elements are always reusable, never structurally compared
func TestMatchControllerOwned(t *testing.T) {
	owned := dom.El("x-widget", dom.Txt("live state"))
	owned.Ctrl = &stubCtrl{}

	declared := dom.El("x-widget")
	assert.Equal(t, morph.OpSame, morph.MatchNodes(owned, declared))

	// Key veto still outranks ownership.
	owned.Ctrl = &stubCtrl{key: "a"}
	keyed := dom.El("x-widget")
	keyed.Ctrl = &stubCtrl{key: "b"}
	assert.Equal(t, morph.OpNone, morph.MatchNodes(owned, keyed))
}

// structurally identical plain elements are equal, different ones morph
func TestMatchStructural(t *testing.T) {
	a := dom.El("div", dom.Txt("x"))
	b := dom.El("div", dom.Txt("x"))
	c := dom.El("div", dom.Txt("y"))
	assert.Equal(t, morph.OpEqual, morph.MatchNodes(a, b))
	assert.Equal(t, morph.OpSame, morph.MatchNodes(a, c))
}
