package config

// All is a marker key that Unfold expands to every leaf path of the Value,
// in sorted order. A literal "*" top-level key would shadow the marker, so
// the name is reserved.
const All = "*"

// UnfoldAll unfolds every addressable leaf path. It is shorthand for
// Unfold with the sorted result of Keys.
func (v *Value) UnfoldAll() ([]*Value, error) {
	return v.Unfold(v.Keys()...)
}

// Unfold expands the named keys into the full Cartesian product of concrete
// configurations. For each named key whose value is a sequence, every result
// binds exactly one element of that sequence at the key; a key naming a
// nested group is first fully unfolded itself and contributes one fully
// scalarized variant of the group per result. Keys holding plain scalars, and
// keys that do not resolve, contribute no branching. Keys not named are left
// untouched and identical across all results.
//
// With no keys the receiver is returned unchanged as the only result. Every
// other result is an independent deep copy: mutating one never affects
// another, nor the receiver.
//
// Results are ordered as nested loops over the named keys, the first key
// varying slowest and the last varying fastest; within a key, elements keep
// the sequence's own order. Naming both a group and a leaf beneath it
// branches on that leaf twice, so callers should keep key sets disjoint.
func (v *Value) Unfold(keys ...string) ([]*Value, error) {
	resolved := make([]string, 0, len(keys))

	for _, key := range keys {
		if key == All {
			resolved = append(resolved, v.Keys()...)

			continue
		}

		resolved = append(resolved, key)
	}

	return v.unfold(resolved)
}

func (v *Value) unfold(keys []string) ([]*Value, error) {
	if len(keys) == 0 {
		return []*Value{v}, nil
	}

	key, rest := keys[0], keys[1:]

	raw, err := v.Get(key)
	if err != nil {
		return nil, err
	}

	candidates, branches, err := unfoldCandidates(raw)
	if err != nil {
		return nil, err
	}

	if !branches {
		return v.unfold(rest)
	}

	var results []*Value

	for _, candidate := range candidates {
		branch := v.Clone()

		err := branch.Set(key, cloneAny(candidate))
		if err != nil {
			return nil, err
		}

		unfolded, err := branch.unfold(rest)
		if err != nil {
			return nil, err
		}

		results = append(results, unfolded...)
	}

	return results, nil
}

// unfoldCandidates returns the branch candidates for a resolved value and
// whether the value branches at all. Unrecognized value kinds are treated as
// scalars.
func unfoldCandidates(raw any) ([]any, bool, error) {
	switch typed := raw.(type) {
	case []any:
		return typed, true, nil
	case *Value:
		variants, err := typed.UnfoldAll()
		if err != nil {
			return nil, false, err
		}

		candidates := make([]any, len(variants))
		for i, variant := range variants {
			candidates[i] = variant
		}

		return candidates, true, nil
	default:
		return nil, false, nil
	}
}
