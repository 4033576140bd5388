// Package component is the authoring contract over the dom and reactive
// packages: a Definition declares a component's props and render function, a
// Controller owns the prop signals and drives the request-update, render,
// reconcile lifecycle for one live element.
package component

import "github.com/delaneyj/morphparty/dom"

// Prop declares one entry of a component's property map. Reactive props are
// backed by signals and drive re-renders; plain props are applied directly to
// the node at construction. Attr names the observed attribute a reactive prop
// reflects onto, for CSS and attribute-selector visibility.
type Prop struct {
	Default  any
	Reactive bool
	Attr     string
}

// PropRef is the prop bag key for the ref callback, invoked with the node on
// mount and nil on unmount.
const PropRef = "ref"

// PropText is the direct content-replacement prop: applying it rewrites the
// element's children to a single text node and ends the morph for that
// subtree.
const PropText = "text"

// PropKey carries an explicit reconciliation key for component instances
// whose element has no id or data-key attribute.
const PropKey = "key"

type Definition struct {
	Tag   string
	Props map[string]Prop

	// Content produces static child content, applied once per connection
	// before any render output exists.
	Content func() []dom.Node

	// Render returns the declarative desired children, nil to clear. Errors
	// inside Render are not caught here; they propagate to whatever
	// triggered the update.
	Render func(c *Controller) []dom.Node

	Mounted   func(c *Controller)
	Unmounted func(c *Controller)
}
