package morph

import (
	"github.com/delaneyj/morphparty/dom"
)

// Stats counts the physical tree mutations one reconciliation performed,
// including recursive morphs. Reconciling a tree against an identical copy
// yields the zero Stats.
type Stats struct {
	Created int
	Removed int
	Moved   int
	Morphed int
}

func (s *Stats) add(o Stats) {
	s.Created += o.Created
	s.Removed += o.Removed
	s.Moved += o.Moved
	s.Morphed += o.Morphed
}

func (s Stats) IsZero() bool {
	return s == Stats{}
}

const unmatched = -1

// Reconcile mutates parent's live children from the shape of from into the
// shape of to, reusing as many from nodes as possible. from is the previous
// render output (normally parent's current children), to is the fresh output.
// Matching runs in four passes of decreasing confidence; matched nodes are
// then repositioned with the minimal number of moves via an LIS exemption
// set. New subtrees have their controllers mounted, removed ones unmounted.
func Reconcile(parent *dom.Element, from, to []dom.Node) Stats {
	var stats Stats

	matched := make([]int, len(to))
	ops := make([]Op, len(to))
	for i := range matched {
		matched[i] = unmatched
	}
	used := make([]bool, len(from))

	commit := func(ti, fi int, op Op) {
		matched[ti] = fi
		ops[ti] = op
		used[fi] = true
	}

	// Pass 1: explicit keys. A key equality is the strongest signal an
	// author can give; matchNodes still gets a veto (e.g. tag changed).
	for ti, t := range to {
		key := dom.NodeKey(t)
		if key == "" {
			continue
		}
		for fi, f := range from {
			if used[fi] || dom.NodeKey(f) != key {
				continue
			}
			if op := MatchNodes(f, t); op != OpNone {
				commit(ti, fi, op)
				break
			}
		}
	}

	// Pass 2: descendant-id overlap. Re-matches subtrees whose root is
	// unkeyed but whose children carry stable ids.
	for ti, t := range to {
		if matched[ti] != unmatched {
			continue
		}
		te, ok := t.(*dom.Element)
		if !ok {
			continue
		}
		tIDs := dom.DescendantIDs(te)
		if tIDs.Cardinality() == 0 {
			continue
		}
		for fi, f := range from {
			if used[fi] {
				continue
			}
			fe, ok := f.(*dom.Element)
			if !ok {
				continue
			}
			if dom.DescendantIDs(fe).Intersect(tIDs).Cardinality() == 0 {
				continue
			}
			if op := MatchNodes(f, t); op != OpNone {
				commit(ti, fi, op)
				break
			}
		}
	}

	// Pass 3: exact structural equality among plain nodes, hash-filtered.
	fromHash := make([]uint64, len(from))
	for ti, t := range to {
		if matched[ti] != unmatched || isOwned(t) {
			continue
		}
		tHash := dom.Hash(t)
		for fi, f := range from {
			if used[fi] || isOwned(f) {
				continue
			}
			if fromHash[fi] == 0 {
				fromHash[fi] = dom.Hash(f)
			}
			if fromHash[fi] != tHash || !dom.Equal(f, t) {
				continue
			}
			commit(ti, fi, OpEqual)
			break
		}
	}

	// Pass 4: fallback, first reusable candidate wins.
	for ti, t := range to {
		if matched[ti] != unmatched {
			continue
		}
		for fi, f := range from {
			if used[fi] {
				continue
			}
			if op := MatchNodes(f, t); op != OpNone {
				commit(ti, fi, op)
				break
			}
		}
	}

	// Unmatched from nodes leave the tree before placement.
	for fi, f := range from {
		if used[fi] || f.Parent() != parent {
			continue
		}
		parent.RemoveChild(f)
		dom.VisitControllers(f, dom.Controller.Unmount)
		stats.Removed++
	}

	// Matched from indices in to order; LIS positions keep their nodes in
	// place, everything else moves.
	seq := make([]int, 0, len(to))
	seqTo := make([]int, 0, len(to))
	for ti, fi := range matched {
		if fi != unmatched {
			seq = append(seq, fi)
			seqTo = append(seqTo, ti)
		}
	}
	stay := make([]bool, len(to))
	for _, pos := range longestIncreasing(seq) {
		stay[seqTo[pos]] = true
	}

	// Placement: walk to in order with an insertion cursor. New and moved
	// nodes land just before the cursor; exempt nodes advance it.
	cursor := parent.FirstChild()
	for ti, t := range to {
		fi := matched[ti]
		if fi == unmatched {
			parent.InsertBefore(t, cursor)
			dom.VisitControllers(t, dom.Controller.Mount)
			stats.Created++
			continue
		}
		node := from[fi]
		if stay[ti] || node == cursor {
			cursor = dom.NextSibling(node)
		} else {
			parent.InsertBefore(node, cursor)
			stats.Moved++
		}
		if ops[ti] == OpSame {
			stats.add(MorphNode(node, t))
		}
	}

	return stats
}

func isOwned(n dom.Node) bool {
	e, ok := n.(*dom.Element)
	return ok && e.Ctrl != nil
}
