package sanitize

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores policies by name so callers (the CLI, configuration files)
// can select one with a string.
type Registry struct {
	mu       sync.RWMutex
	policies map[string]Policy
}

// NewRegistry returns a registry preloaded with "none", "ugc" and "strict".
func NewRegistry() *Registry {
	r := &Registry{policies: make(map[string]Policy)}
	r.MustRegister("none", None)
	r.MustRegister("ugc", UGC())
	r.MustRegister("strict", Strict())
	return r
}

// Register adds a policy. Duplicate names return an error.
func (r *Registry) Register(name string, policy Policy) error {
	if name == "" {
		return fmt.Errorf("sanitize: policy name is required")
	}
	if policy == nil {
		return fmt.Errorf("sanitize: policy %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.policies[name]; exists {
		return fmt.Errorf("sanitize: policy %q already registered", name)
	}
	r.policies[name] = policy
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, policy Policy) {
	if err := r.Register(name, policy); err != nil {
		panic(err)
	}
}

// Get retrieves a policy by name.
func (r *Registry) Get(name string) (Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	policy, ok := r.policies[name]
	if !ok {
		return nil, fmt.Errorf("sanitize: policy %q not found", name)
	}
	return policy, nil
}

// List returns the registered names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.policies))
	for name := range r.policies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
