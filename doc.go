// Package config provides a hierarchical, string-keyed configuration value
// that is navigated with dot-separated paths, mutated in place, and unfolded
// into the Cartesian product of its sequence-valued entries.
//
// A Value wraps a nested mapping parsed from JSON, TOML or YAML (see the
// parser subpackages). Indexing into a group returns a view sharing the
// parent's subtree, so writes through a view are visible on the parent.
//
// # Paths
//
// Paths use dot (.) as the separator:
//
//	"timeout"            -> config["timeout"]
//	"database.pool.size" -> config["database"]["pool"]["size"]
//
// Reads of missing paths return a default instead of failing; writes create
// missing intermediate groups automatically. Only a present-but-non-group
// intermediate segment is an error (ErrNotAGroup).
//
// # Unfolding
//
// Unfold expands sequence-valued entries into one concrete configuration per
// combination, which is how parameter sweeps are expressed:
//
//	value, _ := config.Load("sweep.yaml") // lr: [0.1, 0.01], depth: [2, 3]
//	runs, _ := value.Unfold("lr", "depth")
//	// four runs, each with a single lr and a single depth bound
//
// Each result is an independent deep copy. UnfoldAll, or the config.All
// marker, unfolds every leaf path at once.
//
// # Loading
//
// Load reads a file and dispatches a parser by extension. For dependency
// injection, NewModule exposes a named *Value as an Fx module:
//
//	app := fx.New(
//	    config.NewModule("app", config.WithFile("config.yaml")),
//	    fx.Invoke(fx.Annotate(run, fx.ParamTags(`name:"app"`))),
//	)
package config
