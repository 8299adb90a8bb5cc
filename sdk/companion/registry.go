// SPDX-FileCopyrightText: © 2025 TERN Australia
//
// SPDX-License-Identifier: Apache-2.0

package companion

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var ErrUnknownProvider = errors.New("unknown provider")

// Factory builds a provider from the host configuration object.
type Factory func(opts ProviderOptions) (Provider, error)

// Registry maps auth provider identifiers to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds or replaces the factory for authProvider.
func (r *Registry) Register(authProvider string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[authProvider] = factory
}

// New creates the provider registered under authProvider.
func (r *Registry) New(authProvider string, opts ProviderOptions) (Provider, error) {
	r.mu.RLock()
	factory, ok := r.factories[authProvider]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, authProvider)
	}

	p, err := factory(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s provider: %w", authProvider, err)
	}
	return p, nil
}

// Names returns the registered identifiers in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
