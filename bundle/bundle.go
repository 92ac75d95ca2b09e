package bundle

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// ImportPath is the import path generated code uses to reach this package.
const ImportPath = "github.com/rsinukov/activityresult/bundle"

// Bundle is a mapping from string keys to typed values.
// The zero value is not usable; call New.
type Bundle struct {
	values map[string]any
}

// New returns an empty Bundle.
func New() *Bundle {
	return &Bundle{values: make(map[string]any)}
}

// Len returns the number of keys in the Bundle.
func (b *Bundle) Len() int {
	if b == nil {
		return 0
	}

	return len(b.values)
}

// Keys returns the keys in sorted order.
func (b *Bundle) Keys() []string {
	if b == nil {
		return nil
	}

	keys := make([]string, 0, len(b.values))
	for k := range b.values {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// ContainsKey reports whether key is present.
func (b *Bundle) ContainsKey(key string) bool {
	if b == nil {
		return false
	}

	_, ok := b.values[key]

	return ok
}

// Remove deletes key from the Bundle.
func (b *Bundle) Remove(key string) {
	if b == nil {
		return
	}

	delete(b.values, key)
}

// PutAll copies every mapping of other into b, replacing existing keys.
func (b *Bundle) PutAll(other *Bundle) {
	if other == nil {
		return
	}

	for k, v := range other.values {
		b.values[k] = v
	}
}

// Require returns a *MissingKeysError naming every key absent from b.
func (b *Bundle) Require(keys ...string) error {
	var missing []string

	for _, k := range keys {
		if !b.ContainsKey(k) {
			missing = append(missing, k)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	return &MissingKeysError{Keys: missing}
}

// String returns a debug representation listing keys and value types.
func (b *Bundle) String() string {
	keys := b.Keys()
	parts := make([]string, 0, len(keys))

	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%T", k, b.values[k]))
	}

	return "Bundle[" + strings.Join(parts, ", ") + "]"
}

// MissingKeysError reports required keys absent from a Bundle.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return "bundle: missing required keys: " + strings.Join(e.Keys, ", ")
}

func (b *Bundle) put(key string, value any) {
	b.values[key] = value
}

func get[T any](b *Bundle, key string) T {
	var zero T
	if b == nil {
		return zero
	}

	v, ok := b.values[key].(T)
	if !ok {
		return zero
	}

	return v
}

// putSlice stores a copy so later writes to the caller's slice do not leak in.
func putSlice[S ~[]E, E any](b *Bundle, key string, s S) {
	if s == nil {
		b.put(key, []E(nil))
		return
	}

	b.put(key, slices.Clone([]E(s)))
}
