package config

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Per-kind tag bytes keep the hash of structurally different trees apart,
// e.g. a group {"a": 1} versus a sequence ["a", 1].
const (
	hashTagGroup    = 0x01
	hashTagSequence = 0x02
	hashTagScalar   = 0x03
	hashTagNull     = 0x04
)

// hashSalt discriminates Value hashes from other xxhash users.
const hashSalt = "config.Value"

// Hash returns a deep hash of the wrapped mapping, consistent with Equal:
// equal Values always hash to the same number. Mapping keys are visited in
// sorted order so the result does not depend on insertion order.
func (v *Value) Hash() uint64 {
	digest := xxhash.New()
	_, _ = digest.WriteString(hashSalt)
	hashInto(digest, v.data)

	return digest.Sum64()
}

func hashInto(digest *xxhash.Digest, node any) {
	// Digest writes never fail.
	switch typed := node.(type) {
	case nil:
		_, _ = digest.Write([]byte{hashTagNull})
	case map[string]any:
		_, _ = digest.Write([]byte{hashTagGroup})

		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}

		slices.Sort(keys)

		for _, key := range keys {
			_, _ = digest.WriteString(key)
			_, _ = digest.Write([]byte{0})
			hashInto(digest, typed[key])
		}
	case []any:
		_, _ = digest.Write([]byte{hashTagSequence})

		for _, item := range typed {
			hashInto(digest, item)
		}
	case *Value:
		hashInto(digest, typed.data)
	default:
		_, _ = digest.Write([]byte{hashTagScalar})
		_, _ = fmt.Fprintf(digest, "%T:%v", typed, typed)
	}
}
