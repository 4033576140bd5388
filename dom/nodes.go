// Package dom is a retained tree of UI nodes, the live structure the morph
// package reconciles against freshly rendered output. Every node is exactly
// one of: a text node, a plain element, or an element owned by a component
// controller (Ctrl != nil).
package dom

type NodeKind uint8

const (
	TextKind NodeKind = iota
	ElementKind
)

type Node interface {
	Kind() NodeKind
	Parent() *Element
	setParent(p *Element)
}

// Controller is the capability interface a component controller presents to
// the dom and morph packages. It keeps those packages free of a dependency on
// the component package while letting the reconciler drive prop morphing and
// mount/unmount of subtrees entering or leaving the live tree.
type Controller interface {
	// Key returns the controller's explicit key prop, "" when unkeyed.
	Key() string
	// HasRender reports whether the component defines a render function over
	// at least one reactive prop.
	HasRender() bool
	// MorphProps applies next's declarative attribute and property bag onto
	// the controller. settled means a direct content-replacement property was
	// applied and the caller must not recurse into children.
	MorphProps(next *Element) (settled bool)
	RequestUpdate()
	Mount()
	Unmount()
}

type Text struct {
	parent *Element
	Value  string
}

func Txt(value string) *Text {
	return &Text{Value: value}
}

func (t *Text) Kind() NodeKind { return TextKind }

func (t *Text) Parent() *Element { return t.parent }

func (t *Text) setParent(p *Element) { t.parent = p }

type Element struct {
	parent *Element
	Tag    string

	// Attrs holds string attributes, the only state plain markup carries.
	Attrs map[string]string

	// Props is the declarative property bag for controller-owned elements:
	// event handlers, ref callbacks, reactive prop values. Nil for plain
	// markup.
	Props map[string]any

	Ctrl Controller

	kids []Node
}

func El(tag string, kids ...Node) *Element {
	e := &Element{Tag: tag}
	e.AppendChild(kids...)
	return e
}

func ElAttrs(tag string, attrs map[string]string, kids ...Node) *Element {
	e := El(tag, kids...)
	e.Attrs = attrs
	return e
}

func (e *Element) Kind() NodeKind { return ElementKind }

func (e *Element) Parent() *Element { return e.parent }

func (e *Element) setParent(p *Element) { e.parent = p }

func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

func (e *Element) SetAttr(name, value string) {
	if e.Attrs == nil {
		e.Attrs = map[string]string{}
	}
	e.Attrs[name] = value
}

func (e *Element) RemoveAttr(name string) {
	delete(e.Attrs, name)
}

// VisitControllers calls fn for every controller-owned element in n's
// subtree, n included, in document order. The morph package uses it to mount
// and unmount whole subtrees.
func VisitControllers(n Node, fn func(c Controller)) {
	e, ok := n.(*Element)
	if !ok {
		return
	}
	if e.Ctrl != nil {
		fn(e.Ctrl)
	}
	for _, kid := range e.kids {
		VisitControllers(kid, fn)
	}
}
