package config

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

const pathSeparator = "."

// ErrNotAGroup is returned when a non-final path segment resolves to a value
// that is not a nested mapping.
var ErrNotAGroup = errors.New("path segment is not a group")

// ErrEmptyPath is returned when an empty string is used as a path.
var ErrEmptyPath = errors.New("empty path")

// missing is the internal default used by Has to tell a stored null apart
// from an absent key. It never appears as a stored value.
type missingMarker struct{}

//nolint:gochecknoglobals // private sentinel, compared by pointer identity.
var missing = &missingMarker{}

// Kind classifies the value stored at a path.
type Kind int

const (
	// KindScalar covers strings, numbers, booleans and null.
	KindScalar Kind = iota
	// KindSequence covers []any values.
	KindSequence
	// KindGroup covers nested mappings, returned as *Value views.
	KindGroup
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindGroup:
		return "group"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindOf classifies a value returned by Get or Field.
func KindOf(value any) Kind {
	switch value.(type) {
	case map[string]any, *Value:
		return KindGroup
	case []any:
		return KindSequence
	default:
		return KindScalar
	}
}

// Value is a hierarchical, string-keyed configuration value. It wraps a
// nested mapping whose values are scalars, sequences, or further nested
// mappings, and is navigated with dot-separated paths.
//
// A Value obtained by indexing into a parent shares the parent's underlying
// subtree: mutating the view mutates the parent. Unfold is the one operation
// that breaks sharing, handing out independent deep copies.
type Value struct {
	data map[string]any
}

// New creates an empty Value.
func New() *Value {
	return &Value{data: map[string]any{}}
}

// FromMap wraps an already-parsed nested mapping, typically produced by one
// of the parser packages. The mapping is shared, not copied.
func FromMap(mapping map[string]any) *Value {
	if mapping == nil {
		mapping = map[string]any{}
	}

	return &Value{data: mapping}
}

// AsMap returns the underlying nested mapping. The mapping is shared with
// the Value: mutations on either side are visible on the other.
func (v *Value) AsMap() map[string]any {
	return v.data
}

// Get resolves a dotted path and returns the value stored there, or nil when
// any lookup along the path finds no key. A nested mapping result is wrapped
// in a fresh *Value view sharing the subtree.
//
// A stored null also returns nil; use Has to tell the two apart.
func (v *Value) Get(path string) (any, error) {
	return v.GetDefault(path, nil)
}

// GetDefault is Get with an explicit fallback returned when the path does
// not resolve. Descending through a segment that is present but not a group
// fails with ErrNotAGroup.
func (v *Value) GetDefault(path string, fallback any) (any, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	current := v.data

	for i, segment := range segments {
		raw, present := current[segment]
		if !present {
			return fallback, nil
		}

		if i == len(segments)-1 {
			if group, isGroup := raw.(map[string]any); isGroup {
				return FromMap(group), nil
			}

			return raw, nil
		}

		group, isGroup := raw.(map[string]any)
		if !isGroup {
			return nil, fmt.Errorf("%w: %q in path %q", ErrNotAGroup, segment, path)
		}

		current = group
	}

	return fallback, nil
}

// Set resolves a dotted path and assigns value at its leaf key, creating
// empty intermediate groups for missing segments. An intermediate segment
// that exists but is not a group fails with ErrNotAGroup. A *Value argument
// is stored as its underlying mapping, so the tree holds raw nodes only.
func (v *Value) Set(path string, value any) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}

	current := v.data

	for _, segment := range segments[:len(segments)-1] {
		raw, present := current[segment]
		if !present {
			created := map[string]any{}
			current[segment] = created
			current = created

			continue
		}

		group, isGroup := raw.(map[string]any)
		if !isGroup {
			return fmt.Errorf("%w: %q in path %q", ErrNotAGroup, segment, path)
		}

		current = group
	}

	current[segments[len(segments)-1]] = unwrap(value)

	return nil
}

// Has reports whether a dotted path resolves to a stored value. A stored
// null counts as present.
func (v *Value) Has(path string) (bool, error) {
	got, err := v.GetDefault(path, missing)
	if err != nil {
		return false, err
	}

	return got != missing, nil
}

// Keys returns every fully-qualified dotted leaf path reachable from the
// root, sorted ascending. Sequences and scalars terminate recursion at their
// own key; empty groups contribute no paths.
func (v *Value) Keys() []string {
	var paths []string

	collectLeafPaths(v.data, "", &paths)
	slices.Sort(paths)

	return paths
}

// KeysUnder returns the leaf paths of the group at prefix, each re-prefixed
// with prefix and a dot. A missing or non-group prefix yields no paths.
func (v *Value) KeysUnder(prefix string) ([]string, error) {
	raw, err := v.Get(prefix)
	if err != nil {
		return nil, err
	}

	group, isGroup := raw.(*Value)
	if !isGroup {
		return nil, nil
	}

	keys := group.Keys()
	prefixed := make([]string, len(keys))

	for i, key := range keys {
		prefixed[i] = prefix + pathSeparator + key
	}

	return prefixed, nil
}

// All returns an iterator over every (path, value) pair, in the sorted order
// of Keys. The sequence is recomputed from the current state on each call.
func (v *Value) All() iter.Seq2[string, any] {
	return v.pairs(v.Keys())
}

// AllUnder is All scoped to the group at prefix, yielding re-prefixed paths.
func (v *Value) AllUnder(prefix string) (iter.Seq2[string, any], error) {
	paths, err := v.KeysUnder(prefix)
	if err != nil {
		return nil, err
	}

	return v.pairs(paths), nil
}

// Values returns an iterator over every leaf value, in the order of Keys.
func (v *Value) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, value := range v.All() {
			if !yield(value) {
				return
			}
		}
	}
}

// ValuesUnder is Values scoped to the group at prefix.
func (v *Value) ValuesUnder(prefix string) (iter.Seq[any], error) {
	pairs, err := v.AllUnder(prefix)
	if err != nil {
		return nil, err
	}

	return func(yield func(any) bool) {
		for _, value := range pairs {
			if !yield(value) {
				return
			}
		}
	}, nil
}

func (v *Value) pairs(paths []string) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, path := range paths {
			value, err := v.Get(path)
			if err != nil {
				return
			}

			if !yield(path, value) {
				return
			}
		}
	}
}

// Field reads a first-level key, returning nil when absent. Group values are
// wrapped in a *Value view, mirroring Get for a single-segment path.
func (v *Value) Field(name string) any {
	raw, present := v.data[name]
	if !present {
		return nil
	}

	if group, isGroup := raw.(map[string]any); isGroup {
		return FromMap(group)
	}

	return raw
}

// SetField assigns a first-level key.
func (v *Value) SetField(name string, value any) {
	v.data[name] = unwrap(value)
}

// Fields returns the first-level keys, sorted ascending. Unlike Keys it does
// not flatten nested groups.
func (v *Value) Fields() []string {
	fields := make([]string, 0, len(v.data))

	for key := range v.data {
		fields = append(fields, key)
	}

	slices.Sort(fields)

	return fields
}

// Len returns the number of addressable leaf paths, not the number of
// top-level keys.
func (v *Value) Len() int {
	return len(v.Keys())
}

// IsEmpty reports whether the Value has no leaf paths.
func (v *Value) IsEmpty() bool {
	return v.Len() == 0
}

// Equal reports deep structural equality of the wrapped mappings: same keys,
// same values recursively. Sequence order matters, mapping key order does
// not. A nested *Value compares equal to its raw subtree.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}

	return deepEqual(v.data, other.data)
}

// Clone returns an independent deep copy: no node of the result is shared
// with the receiver.
func (v *Value) Clone() *Value {
	return FromMap(cloneMapping(v.data))
}

// Filter builds a new Value holding exactly the (path, value) pairs the keep
// predicate accepts, assigned with Set so the original nesting structure is
// preserved for the retained leaves.
func (v *Value) Filter(keep func(path string, value any) bool) *Value {
	filtered := New()

	for path, value := range v.All() {
		if keep(path, value) {
			// Leaf paths from Keys never conflict with each other.
			_ = filtered.Set(path, value)
		}
	}

	return filtered
}

func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	return strings.Split(path, pathSeparator), nil
}

func unwrap(value any) any {
	if view, isView := value.(*Value); isView {
		return view.data
	}

	return value
}

func collectLeafPaths(node map[string]any, prefix string, out *[]string) {
	for key, raw := range node {
		full := key
		if prefix != "" {
			full = prefix + pathSeparator + key
		}

		if group, isGroup := raw.(map[string]any); isGroup {
			collectLeafPaths(group, full, out)

			continue
		}

		*out = append(*out, full)
	}
}

func deepEqual(a, b any) bool {
	switch left := a.(type) {
	case nil:
		return b == nil
	case map[string]any:
		right, same := b.(map[string]any)
		if !same {
			if view, isView := b.(*Value); isView {
				return deepEqual(a, view.data)
			}

			return false
		}

		if len(left) != len(right) {
			return false
		}

		for key, leftValue := range left {
			rightValue, present := right[key]
			if !present || !deepEqual(leftValue, rightValue) {
				return false
			}
		}

		return true
	case []any:
		right, same := b.([]any)
		if !same || len(left) != len(right) {
			return false
		}

		for i := range left {
			if !deepEqual(left[i], right[i]) {
				return false
			}
		}

		return true
	case *Value:
		return deepEqual(left.data, b)
	default:
		if view, isView := b.(*Value); isView {
			return deepEqual(a, view.data)
		}

		return a == b
	}
}

func cloneMapping(node map[string]any) map[string]any {
	cloned := make(map[string]any, len(node))

	for key, value := range node {
		cloned[key] = cloneAny(value)
	}

	return cloned
}

func cloneAny(node any) any {
	switch typed := node.(type) {
	case map[string]any:
		return cloneMapping(typed)
	case []any:
		items := make([]any, len(typed))
		for i, item := range typed {
			items[i] = cloneAny(item)
		}

		return items
	case *Value:
		return cloneMapping(typed.data)
	default:
		return typed
	}
}
