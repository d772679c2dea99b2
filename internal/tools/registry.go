package tools

import (
	"context"
	"fmt"
)

type Registry struct {
	tools map[string]*Tool
	order []string
}

func NewRegistry(list ...*Tool) (*Registry, error) {
	r := &Registry{tools: make(map[string]*Tool, len(list))}
	for _, t := range list {
		if _, exists := r.tools[t.Name]; exists {
			return nil, fmt.Errorf("duplicate tool %q", t.Name)
		}
		r.tools[t.Name] = t
		r.order = append(r.order, t.Name)
	}
	return r, nil
}

// List returns tools in registration order.
func (r *Registry) List() []*Tool {
	list := make([]*Tool, 0, len(r.order))
	for _, name := range r.order {
		list = append(list, r.tools[name])
	}
	return list
}

func (r *Registry) Get(name string) (*Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

func (r *Registry) Call(ctx context.Context, name string, raw []byte) (any, error) {
	t, ok := r.Get(name)
	if !ok {
		return errorEnvelope(NewToolError(name, errUnknownTool))
	}
	return t.Call(ctx, raw)
}
