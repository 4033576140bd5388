package dom

import mapset "github.com/deckarep/golang-set/v2"

// KeyAttr is the explicit identity hint for nodes that should not take an id.
const KeyAttr = "data-key"

// NodeKey derives a node's explicit key: the id attribute, else the data-key
// attribute, else the owning controller's key prop. "" means unkeyed. Text
// nodes are always unkeyed.
func NodeKey(n Node) string {
	e, ok := n.(*Element)
	if !ok {
		return ""
	}
	if id, ok := e.Attr("id"); ok && id != "" {
		return id
	}
	if k, ok := e.Attr(KeyAttr); ok && k != "" {
		return k
	}
	if e.Ctrl != nil {
		return e.Ctrl.Key()
	}
	return ""
}

// DescendantIDs collects the id attributes of elements strictly below e.
// Reconciliation uses set overlap to re-match subtrees whose root lacks a key
// but whose children carry stable ids.
func DescendantIDs(e *Element) mapset.Set[string] {
	ids := mapset.NewThreadUnsafeSet[string]()
	var walk func(el *Element)
	walk = func(el *Element) {
		for _, kid := range el.kids {
			ke, ok := kid.(*Element)
			if !ok {
				continue
			}
			if id, ok := ke.Attr("id"); ok && id != "" {
				ids.Add(id)
			}
			walk(ke)
		}
	}
	walk(e)
	return ids
}
