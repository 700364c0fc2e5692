// Package tools provides the tool registry and the result normalization
// contract shared by all service modules.
package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/databrickslabs/databricks-mcp/pkg/domain/errors"
)

// Handler executes a tool against untyped caller arguments. Implementations
// must convert every fault into an error Result rather than returning it.
type Handler func(ctx context.Context, args map[string]any) Result

// DescriptorProvider returns the descriptors a service module advertises.
// Providers must be pure functions of already-validated configuration.
type DescriptorProvider func() []mcp.Tool

// Registry aggregates descriptor providers and handlers from independently
// defined service modules. It is written to only during registration, before
// the event loop starts, and is safe for concurrent reads afterward.
type Registry struct {
	providers []DescriptorProvider
	handlers  map[string]Handler
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register appends a descriptor provider and installs its handlers.
// Duplicate tool names across the registry, descriptors without a handler,
// and handlers without a descriptor are all configuration errors, surfaced
// at startup.
func (r *Registry) Register(provider DescriptorProvider, handlers map[string]Handler) error {
	descriptors := provider()

	advertised := make(map[string]bool, len(descriptors))
	for _, d := range descriptors {
		if _, exists := r.handlers[d.Name]; exists {
			return errors.New(errors.CodeToolAlreadyRegistered, "registry",
				fmt.Sprintf("tool %q registered twice", d.Name), nil)
		}
		if _, ok := handlers[d.Name]; !ok {
			return errors.New(errors.CodeConfigurationInvalid, "registry",
				fmt.Sprintf("descriptor %q has no handler", d.Name), nil)
		}
		advertised[d.Name] = true
	}
	for name := range handlers {
		if !advertised[name] {
			return errors.New(errors.CodeConfigurationInvalid, "registry",
				fmt.Sprintf("handler %q has no descriptor", name), nil)
		}
	}

	r.providers = append(r.providers, provider)
	for name, h := range handlers {
		r.handlers[name] = h
	}
	return nil
}

// ListAll invokes every provider in registration order and concatenates the
// descriptors. The set is recomputed on every call.
func (r *Registry) ListAll() []mcp.Tool {
	var all []mcp.Tool
	for _, provider := range r.providers {
		all = append(all, provider()...)
	}
	return all
}

// Dispatch resolves name to its handler and invokes it. An unknown name is
// reported to the caller as an error result, never as a fault.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]any) Result {
	handler, ok := r.handlers[name]
	if !ok {
		return Error(errors.New(errors.CodeToolNotFound, "registry",
			fmt.Sprintf("unknown tool: %s", name), nil))
	}
	return handler(ctx, args)
}

// Len returns the number of registered handlers
func (r *Registry) Len() int {
	return len(r.handlers)
}
