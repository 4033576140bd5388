package dom

import "slices"

// Children returns a snapshot of e's child list. Mutating the tree does not
// invalidate the returned slice, which is what reconciliation relies on when
// it walks a "from" list while moving nodes around.
func (e *Element) Children() []Node {
	return slices.Clone(e.kids)
}

func (e *Element) ChildCount() int {
	return len(e.kids)
}

func (e *Element) FirstChild() Node {
	if len(e.kids) == 0 {
		return nil
	}
	return e.kids[0]
}

// NextSibling returns the node after n under its parent, nil when n is the
// last child or detached.
func NextSibling(n Node) Node {
	p := n.Parent()
	if p == nil {
		return nil
	}
	i := slices.Index(p.kids, n)
	if i == -1 || i+1 >= len(p.kids) {
		return nil
	}
	return p.kids[i+1]
}

// AppendChild detaches each node from its current parent and appends it.
func (e *Element) AppendChild(kids ...Node) {
	for _, n := range kids {
		e.InsertBefore(n, nil)
	}
}

// InsertBefore places n immediately before ref, or at the end when ref is
// nil. n is detached from its previous parent first, so InsertBefore doubles
// as the move primitive. Panics if ref is given but is not a child of e;
// silently continuing would corrupt the live tree.
func (e *Element) InsertBefore(n Node, ref Node) {
	if n == ref {
		return
	}
	if p := n.Parent(); p != nil {
		p.RemoveChild(n)
	}
	if ref == nil {
		e.kids = append(e.kids, n)
	} else {
		i := slices.Index(e.kids, ref)
		if i == -1 {
			panic("dom: InsertBefore reference is not a child of this element")
		}
		e.kids = slices.Insert(e.kids, i, n)
	}
	n.setParent(e)
}

// RemoveChild detaches n. Removing a non-child is a no-op.
func (e *Element) RemoveChild(n Node) {
	i := slices.Index(e.kids, n)
	if i == -1 {
		return
	}
	e.kids = slices.Delete(e.kids, i, i+1)
	n.setParent(nil)
}

// RemoveChildren detaches every child of e.
func (e *Element) RemoveChildren() {
	for _, n := range e.kids {
		n.setParent(nil)
	}
	e.kids = nil
}
