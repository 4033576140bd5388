package component

import (
	"fmt"

	"github.com/delaneyj/morphparty/dom"
	"github.com/delaneyj/morphparty/morph"
	"github.com/delaneyj/morphparty/reactive"
)

// Controller owns one component instance: its element, one signal per
// reactive prop, and the two effects that keep the subtree and the observed
// attributes in sync. It is 1:1 with its element; the element's Ctrl field
// points back at it.
type Controller struct {
	sys  *reactive.System
	def  *Definition
	node *dom.Element

	signals    map[string]*reactive.WriteableSignal[any]
	attrToProp map[string]string
	key        string
	ref        func(*dom.Element)

	currentRender []dom.Node

	connected    bool
	updating     bool
	rendered     bool
	lightApplied bool

	stopRender  func()
	stopReflect func()
}

var _ dom.Controller = (*Controller)(nil)

// New builds a controller and its element. Reactive props get one signal
// each, seeded with the default and then any constructor-supplied initial
// value, without notification: nothing can be subscribed yet. Non-reactive
// props are applied straight onto the node, which is safe before attachment.
func New(sys *reactive.System, def *Definition, initial map[string]any) *Controller {
	c := &Controller{
		sys:        sys,
		def:        def,
		node:       dom.El(def.Tag),
		signals:    map[string]*reactive.WriteableSignal[any]{},
		attrToProp: map[string]string{},
	}
	c.node.Ctrl = c

	for name, p := range def.Props {
		if p.Reactive {
			v := p.Default
			if iv, ok := initial[name]; ok {
				v = iv
			}
			sig := reactive.Signal(sys, p.Default)
			sig.Seed(v)
			c.signals[name] = sig
			if p.Attr != "" {
				c.attrToProp[p.Attr] = name
			}
			// The node doubles as the declared prop bag: when this instance
			// is rendered as output and matched against a live one, the
			// reconciler morphs the live controller from these values.
			c.setDeclaredProp(name, v)
			continue
		}
		v := p.Default
		if iv, ok := initial[name]; ok {
			v = iv
		}
		c.applyPlainProp(name, v)
	}

	// Ref and key ride the declared bag too, so a matched live controller
	// rebinds them during MorphProps instead of keeping stale ones.
	if k, ok := initial[PropKey].(string); ok {
		c.key = k
		c.setDeclaredProp(PropKey, k)
	}
	if ref, ok := initial[PropRef].(func(*dom.Element)); ok {
		c.ref = ref
		c.setDeclaredProp(PropRef, ref)
	}
	return c
}

func (c *Controller) setDeclaredProp(name string, v any) {
	if c.node.Props == nil {
		c.node.Props = map[string]any{}
	}
	c.node.Props[name] = v
}

func (c *Controller) Node() *dom.Element { return c.node }

func (c *Controller) System() *reactive.System { return c.sys }

func (c *Controller) Key() string { return c.key }

// HasRender reports whether this component re-renders reactively: a render
// function over at least one reactive prop.
func (c *Controller) HasRender() bool {
	return c.def.Render != nil && len(c.signals) > 0
}

// Get reads a prop. Reading a reactive prop inside an effect subscribes it.
func (c *Controller) Get(name string) any {
	if sig, ok := c.signals[name]; ok {
		return sig.Value()
	}
	if v, ok := c.node.Props[name]; ok {
		return v
	}
	v, _ := c.node.Attr(name)
	return v
}

// Set writes a reactive prop, notifying subscribers. Writing a non-reactive
// prop applies it directly to the node.
func (c *Controller) Set(name string, v any) {
	if sig, ok := c.signals[name]; ok {
		sig.SetValue(v)
		return
	}
	c.applyPlainProp(name, v)
}

func (c *Controller) applyPlainProp(name string, v any) {
	if s, ok := v.(string); ok {
		c.node.SetAttr(name, s)
		return
	}
	if c.node.Props == nil {
		c.node.Props = map[string]any{}
	}
	c.node.Props[name] = v
}

// Mount implements dom.Controller for subtrees entering the live tree.
func (c *Controller) Mount() { c.Connect() }

// Unmount implements dom.Controller for subtrees leaving the live tree.
func (c *Controller) Unmount() { c.Disconnect() }

// Connect wires the controller to the document: static content is applied
// once per connection, the mounted hook is deferred so it observes a fully
// connected node, and the render and attribute-reflection effects are
// established. The render effect's first run is the first render.
func (c *Controller) Connect() {
	if c.connected {
		return
	}
	c.connected = true

	if !c.lightApplied && c.def.Content != nil {
		c.node.RemoveChildren()
		c.node.AppendChild(c.def.Content()...)
		c.lightApplied = true
	}
	if c.def.Mounted != nil {
		c.sys.Defer(func() { c.def.Mounted(c) })
	}
	if c.ref != nil {
		c.ref(c.node)
	}

	c.stopRender = reactive.Effect(c.sys, func() {
		c.RequestUpdate()
	})
	c.stopReflect = reactive.Effect(c.sys, func() {
		c.reflectAttrs()
	})
}

// Disconnect tears down both effects, forgets render state so a reconnection
// starts from a clean first render, and detaches the ref holder.
func (c *Controller) Disconnect() {
	if !c.connected {
		return
	}
	c.connected = false

	if c.stopRender != nil {
		c.stopRender()
		c.stopRender = nil
	}
	if c.stopReflect != nil {
		c.stopReflect()
		c.stopReflect = nil
	}

	c.lightApplied = false
	c.rendered = false
	c.currentRender = nil

	if c.ref != nil {
		c.ref(nil)
	}
	if c.def.Unmounted != nil {
		c.def.Unmounted(c)
	}
}

// RequestUpdate re-invokes the render function. The first render is a direct
// content application since there is nothing to diff against; later renders
// reconcile the previous output in place. A nested request while one is in
// progress is a no-op.
func (c *Controller) RequestUpdate() {
	if c.updating || c.def.Render == nil {
		return
	}
	c.updating = true
	defer func() {
		c.updating = false
	}()

	out := c.def.Render(c)
	if !c.rendered {
		c.node.RemoveChildren()
		c.node.AppendChild(out...)
		for _, n := range out {
			dom.VisitControllers(n, dom.Controller.Mount)
		}
		c.currentRender = out
		c.rendered = true
		return
	}

	morph.Reconcile(c.node, c.currentRender, out)
	c.currentRender = c.node.Children()
}

// MorphProps applies a freshly rendered element's attribute and property bag
// onto this controller. All prop-signal writes happen in one batch; those
// writes are the single re-render trigger, the reconciler never requests an
// update on top of them. Returns settled when a content-replacement prop was
// applied and the caller must not recurse into children.
func (c *Controller) MorphProps(next *dom.Element) (settled bool) {
	c.sys.Batch(func() {
		for k, v := range next.Attrs {
			if name, ok := c.attrToProp[k]; ok {
				c.signals[name].SetValue(v)
				continue
			}
			if cur, ok := c.node.Attr(k); !ok || cur != v {
				c.node.SetAttr(k, v)
			}
		}

		for name, v := range next.Props {
			switch name {
			case PropRef:
				c.rebindRef(v)
			case PropText:
				c.node.RemoveChildren()
				c.node.AppendChild(dom.Txt(fmt.Sprint(v)))
				c.currentRender = c.node.Children()
				settled = true
			case PropKey:
				if k, ok := v.(string); ok {
					c.key = k
				}
			default:
				if sig, ok := c.signals[name]; ok {
					sig.SetValue(v)
					continue
				}
				c.applyPlainProp(name, v)
			}
		}
	})
	return settled
}

func (c *Controller) rebindRef(v any) {
	next, _ := v.(func(*dom.Element))
	if c.ref != nil {
		c.ref(nil)
	}
	c.ref = next
	if c.ref != nil && c.connected {
		c.ref(c.node)
	}
}

// reflectAttrs mirrors signal-backed props onto their observed attributes.
func (c *Controller) reflectAttrs() {
	for name, p := range c.def.Props {
		if !p.Reactive || p.Attr == "" {
			continue
		}
		c.node.SetAttr(p.Attr, fmt.Sprint(c.signals[name].Value()))
	}
}

// Mount attaches a root controller under parent and flushes deferred mounted
// callbacks, the integration point application code uses.
func Mount(sys *reactive.System, c *Controller, parent *dom.Element) {
	parent.AppendChild(c.node)
	dom.VisitControllers(c.node, dom.Controller.Mount)
	sys.Flush()
}
