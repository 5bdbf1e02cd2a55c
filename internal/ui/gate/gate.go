package gate

import (
	g "maragu.dev/gomponents"

	"github.com/finhub/console/internal/core/access"
)

var empty = g.Group(nil)

type options struct {
	fallback g.Node
	loading  g.Node
}

// Option customises what a gate renders when it does not grant.
type Option func(*options)

// WithFallback sets the node rendered when access is denied.
func WithFallback(n g.Node) Option {
	return func(o *options) {
		if n != nil {
			o.fallback = n
		}
	}
}

// WithLoading sets the node rendered while the session user is not loaded.
func WithLoading(n g.Node) Option {
	return func(o *options) {
		if n != nil {
			o.loading = n
		}
	}
}

// PermissionGate renders children when the session may perform action on
// resource.
func PermissionGate(s Session, resource access.Resource, action access.Action, children g.Node, opts ...Option) g.Node {
	return render(s, access.ResourceAction(resource, action), children, opts)
}

// ComponentGate renders children when the session may use componentID.
func ComponentGate(s Session, componentID string, children g.Node, opts ...Option) g.Node {
	return render(s, access.ComponentID(componentID), children, opts)
}

// render picks exactly one branch. Children are only ever returned for
// StateGranted, so nothing protected reaches the writer otherwise.
func render(s Session, c access.Capability, children g.Node, opts []Option) g.Node {
	o := options{fallback: empty, loading: empty}
	for _, opt := range opts {
		opt(&o)
	}

	switch s.Decide(c) {
	case StateGranted:
		if children == nil {
			return empty
		}
		return children
	case StateDenied:
		return o.fallback
	default:
		return o.loading
	}
}
