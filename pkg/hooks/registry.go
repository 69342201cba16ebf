// Package hooks provides the filter chain behind caller-defined field types.
// Filters registered on a Registry run in ascending priority order, each one
// receiving the result of the previous filter, starting from an unset result.
// Registry.Hook adapts the chain into the field.Hook the formatter consumes.
package hooks

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-acfield/pkg/field"
)

// DefaultPriority matches the host's default filter priority.
const DefaultPriority = 10

// Result is the value threaded through the filter chain. OK=false means no
// output has been produced yet.
type Result struct {
	Output string
	OK     bool
}

// Filter transforms the running result for a caller-defined field type.
type Filter func(ctx context.Context, prev Result, fieldType string, cfg field.Config) Result

type entry struct {
	name     string
	priority int
	filter   Filter
	order    int
}

// Registry stores named filters. The zero value is not usable; call New.
type Registry struct {
	mu      sync.RWMutex
	entries []entry
	seq     int
}

// New constructs an empty registry.
func New() *Registry {
	return &Registry{}
}

// Add registers filter under name. Re-adding a name replaces the previous
// filter. Empty names and nil filters are ignored.
func (r *Registry) Add(name string, priority int, filter Filter) {
	if r == nil || filter == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.removeLocked(trimmed)
	r.entries = append(r.entries, entry{
		name:     trimmed,
		priority: priority,
		filter:   filter,
		order:    r.seq,
	})
	r.seq++
}

// Remove drops the named filter and reports whether it existed.
func (r *Registry) Remove(name string) bool {
	if r == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removeLocked(strings.TrimSpace(name))
}

func (r *Registry) removeLocked(name string) bool {
	for idx, e := range r.entries {
		if e.name == name {
			r.entries = append(r.entries[:idx], r.entries[idx+1:]...)
			return true
		}
	}
	return false
}

// Names returns filter names in execution order.
func (r *Registry) Names() []string {
	entries := r.sorted()
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.name)
	}
	return names
}

// Apply runs the chain for fieldType.
func (r *Registry) Apply(ctx context.Context, fieldType string, cfg field.Config) Result {
	var result Result
	for _, e := range r.sorted() {
		result = e.filter(ctx, result, fieldType, cfg)
	}
	return result
}

// Hook adapts the registry to field.Hook. A nil registry yields a hook that
// never produces output.
func (r *Registry) Hook() field.Hook {
	return func(ctx context.Context, fieldType string, cfg field.Config) (string, bool) {
		if r == nil {
			return "", false
		}
		result := r.Apply(ctx, fieldType, cfg)
		return result.Output, result.OK
	}
}

func (r *Registry) sorted() []entry {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	entries := append([]entry(nil), r.entries...)
	r.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].priority == entries[j].priority {
			return entries[i].order < entries[j].order
		}
		return entries[i].priority < entries[j].priority
	})
	return entries
}

// ForType returns a filter that only handles fieldType and passes every other
// type through untouched.
func ForType(fieldType string, render func(ctx context.Context, cfg field.Config) (string, bool)) Filter {
	want := strings.TrimSpace(fieldType)
	return func(ctx context.Context, prev Result, got string, cfg field.Config) Result {
		if got != want || render == nil {
			return prev
		}
		output, ok := render(ctx, cfg)
		if !ok {
			return prev
		}
		return Result{Output: output, OK: true}
	}
}
