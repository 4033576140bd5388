package dom

import (
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a canonical structural hash of n's subtree: kind, tag, sorted
// attributes, children, in document order. Equal trees hash equal; the
// structural matching pass uses it to filter candidates before confirming
// with Equal.
func Hash(n Node) uint64 {
	d := xxhash.New()
	hashNode(d, n)
	return d.Sum64()
}

func hashNode(d *xxhash.Digest, n Node) {
	switch n := n.(type) {
	case *Text:
		d.WriteString("t\x00")
		d.WriteString(n.Value)
		d.WriteString("\x00")
	case *Element:
		d.WriteString("e\x00")
		d.WriteString(n.Tag)
		d.WriteString("\x00")
		keys := make([]string, 0, len(n.Attrs))
		for k := range n.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			d.WriteString(k)
			d.WriteString("=")
			d.WriteString(n.Attrs[k])
			d.WriteString("\x00")
		}
		d.WriteString(strconv.Itoa(len(n.kids)))
		d.WriteString("\x00")
		for _, kid := range n.kids {
			hashNode(d, kid)
		}
	}
}

// Equal reports deep structural equality: same kind, tag, attributes and
// recursively equal children. Controller ownership is not consulted; callers
// that must never treat owned nodes as interchangeable check that first.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *Text:
		b, ok := b.(*Text)
		return ok && a.Value == b.Value
	case *Element:
		be, ok := b.(*Element)
		if !ok || a.Tag != be.Tag || len(a.Attrs) != len(be.Attrs) || len(a.kids) != len(be.kids) {
			return false
		}
		for k, v := range a.Attrs {
			if bv, ok := be.Attrs[k]; !ok || bv != v {
				return false
			}
		}
		for i, kid := range a.kids {
			if !Equal(kid, be.kids[i]) {
				return false
			}
		}
		return true
	}
	return false
}
