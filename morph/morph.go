package morph

import "github.com/delaneyj/morphparty/dom"

// MorphNode updates the live node from in place to represent to's declared
// state, keeping from's identity. Text nodes rewrite their value. Controller
// owned elements get the new prop bag applied; the prop-signal writes are the
// one and only re-render trigger for components with a render function, so
// MorphNode never calls RequestUpdate itself. Plain elements sync attributes
// and recursively reconcile children.
func MorphNode(from, to dom.Node) Stats {
	var stats Stats
	switch f := from.(type) {
	case *dom.Text:
		t := to.(*dom.Text)
		if f.Value != t.Value {
			f.Value = t.Value
			stats.Morphed++
		}
	case *dom.Element:
		t := to.(*dom.Element)
		if f.Ctrl != nil {
			if f.Ctrl.MorphProps(t) {
				// A direct content-replacement prop was applied; the
				// subtree is no longer ours to recurse into.
				return stats
			}
			stats.Morphed++
			if f.Ctrl.HasRender() {
				return stats
			}
			stats.add(Reconcile(f, f.Children(), t.Children()))
			return stats
		}
		if syncAttrs(f, t) {
			stats.Morphed++
		}
		stats.add(Reconcile(f, f.Children(), t.Children()))
	}
	return stats
}

// syncAttrs copies attributes from to onto from, writing only when the value
// differs to avoid redundant attribute-changed callbacks, and removes
// attributes absent from to. Reports whether anything changed.
func syncAttrs(from, to *dom.Element) (changed bool) {
	for k, v := range to.Attrs {
		if cur, ok := from.Attr(k); !ok || cur != v {
			from.SetAttr(k, v)
			changed = true
		}
	}
	for k := range from.Attrs {
		if _, ok := to.Attrs[k]; !ok {
			from.RemoveAttr(k)
			changed = true
		}
	}
	return changed
}
