package dictionary

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gitlab.com/d21d3q/emvbits/internal/field"
)

var ErrUnknownTag = errors.New("unknown tag")

// Entry describes how to decode the value of one EMV tag.
type Entry struct {
	Tag     string
	Name    string
	Length  int
	Decoder field.Decoder
}

// Registry maps tags to entries. A registry may fall back to a base registry
// for tags it does not know.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
	base    *Registry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Overlay returns an empty registry that defers to base on lookup misses.
func Overlay(base *Registry) *Registry {
	r := NewRegistry()
	r.base = base
	return r
}

// NormalizeTag uppercases a tag and strips whitespace.
func NormalizeTag(tag string) string {
	return strings.ToUpper(strings.Join(strings.Fields(tag), ""))
}

// Register stores e, replacing any previous entry for the same tag.
func (r *Registry) Register(e Entry) {
	e.Tag = NormalizeTag(e.Tag)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.Tag] = e
}

// Lookup returns the entry for tag, consulting the base registry on a miss.
func (r *Registry) Lookup(tag string) (Entry, error) {
	tag = NormalizeTag(tag)
	r.mu.RLock()
	e, ok := r.entries[tag]
	r.mu.RUnlock()
	if ok {
		return e, nil
	}
	if r.base != nil {
		return r.base.Lookup(tag)
	}
	return Entry{}, fmt.Errorf("%w %s", ErrUnknownTag, tag)
}

// Tags lists every known tag, including those of the base registry.
func (r *Registry) Tags() []string {
	seen := make(map[string]struct{})
	if r.base != nil {
		for _, t := range r.base.Tags() {
			seen[t] = struct{}{}
		}
	}
	r.mu.RLock()
	for t := range r.entries {
		seen[t] = struct{}{}
	}
	r.mu.RUnlock()
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

var defaultRegistry = NewRegistry()

// Default returns the registry that built-in dictionaries register into.
func Default() *Registry {
	return defaultRegistry
}

// Register stores e in the default registry.
func Register(e Entry) {
	defaultRegistry.Register(e)
}

// Lookup finds tag in the default registry.
func Lookup(tag string) (Entry, error) {
	return defaultRegistry.Lookup(tag)
}
