// Package morph transforms a live dom tree into the shape of freshly
// rendered declarative output, reusing existing nodes wherever possible so
// stateful subtrees survive re-renders.
package morph

import "github.com/delaneyj/morphparty/dom"

type Op uint8

const (
	// OpNone means the nodes are unrelated; the old one must be replaced.
	OpNone Op = iota
	// OpEqual means the nodes are already identical; nothing to do.
	OpEqual
	// OpSame means the old node is reusable but needs an in-place morph.
	OpSame
)

func (o Op) String() string {
	switch o {
	case OpEqual:
		return "equal"
	case OpSame:
		return "same"
	default:
		return "none"
	}
}

// MatchNodes decides whether the live node from can stand in for the freshly
// rendered node to. Explicit keys are a hard veto; controller-owned elements
// are always reusable rather than structurally compared, since discarding one
// would discard its live state.
func MatchNodes(from, to dom.Node) Op {
	if from == nil || to == nil {
		return OpNone
	}
	if from == to {
		return OpEqual
	}
	if from.Kind() != to.Kind() {
		return OpNone
	}

	fromKey, toKey := dom.NodeKey(from), dom.NodeKey(to)
	if fromKey != "" && toKey != "" && fromKey != toKey {
		return OpNone
	}

	if from.Kind() == dom.TextKind {
		if from.(*dom.Text).Value == to.(*dom.Text).Value {
			return OpEqual
		}
		return OpSame
	}

	fe, te := from.(*dom.Element), to.(*dom.Element)
	if fe.Tag != te.Tag {
		return OpNone
	}
	// Reusing an input across type changes would carry stale user state into
	// a different widget, e.g. a checkbox becoming a text field.
	if fe.Tag == "input" {
		ft, _ := fe.Attr("type")
		tt, _ := te.Attr("type")
		if ft != tt {
			return OpNone
		}
	}
	if fe.Ctrl != nil || te.Ctrl != nil {
		return OpSame
	}
	if dom.Equal(fe, te) {
		return OpEqual
	}
	return OpSame
}
