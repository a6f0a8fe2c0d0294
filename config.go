package config

// Config is the top-level facade: an owned root Group plus the active
// collision policy and hook lists. It aggregates the tree with the
// input/output conveniences described in §4.7.
type Config struct {
	root      *Node
	policy    Policy
	before    []Hook
	after     []Hook
	onFailure OnFailureHook
}

// New returns an empty configuration using policy for every Add performed
// through it (by parsing or by Insert/Merge).
func New(policy Policy) *Config {
	return &Config{root: NewGroup(), policy: policy}
}

// UseBeforeHook registers h to run, in registration order, before parsing
// starts.
func (cfg *Config) UseBeforeHook(h Hook) { cfg.before = append(cfg.before, h) }

// UseAfterHook registers h to run, in registration order, after a
// successful parse.
func (cfg *Config) UseAfterHook(h Hook) { cfg.after = append(cfg.after, h) }

// UseOnFailureHook installs the predicate consulted when parsing fails.
func (cfg *Config) UseOnFailureHook(h OnFailureHook) { cfg.onFailure = h }

// Policy returns the active collision policy.
func (cfg *Config) Policy() Policy { return cfg.policy }

// SetPolicy replaces the active collision policy.
func (cfg *Config) SetPolicy(p Policy) { cfg.policy = p }

// Root returns the owned root Group.
func (cfg *Config) Root() *Node { return cfg.root }

// ParseFrom runs the full parse pipeline of §4.5/§4.6 against source,
// populating the root group.
func (cfg *Config) ParseFrom(source string) error {
	return Parse(source, cfg.root, cfg.policy, cfg.before, cfg.after, cfg.onFailure)
}

// Emit serializes the root's children in canonical form.
func (cfg *Config) Emit() string {
	return Emit(cfg.root)
}

// Merge deep-clones every top-level child of other into cfg's root, under
// cfg's active policy. The source configuration is left untouched.
func (cfg *Config) Merge(other *Config) error {
	for _, child := range other.root.Children() {
		if _, err := cfg.root.Add(child.Clone(), cfg.policy); err != nil {
			return err
		}
	}
	return nil
}

// Insert adds node at the root under the active policy.
func (cfg *Config) Insert(node *Node) (*Node, error) {
	return cfg.root.Add(node, cfg.policy)
}

// Lookup resolves path from the root.
func (cfg *Config) Lookup(path string) (*Node, error) {
	return cfg.root.Lookup(path)
}

// Exists reports whether path resolves from the root.
func (cfg *Config) Exists(path string) bool {
	return cfg.root.Exists(path)
}

// RemovePath resolves path from the root and removes the terminal child.
func (cfg *Config) RemovePath(path string) error {
	return cfg.root.RemovePath(path)
}

// RemoveIndex removes the root's child at the given position.
func (cfg *Config) RemoveIndex(index int) error {
	return cfg.root.RemoveIndex(index)
}

// Clear removes every child of the root.
func (cfg *Config) Clear() { cfg.root.Clear() }

// Size returns the root's immediate child count.
func (cfg *Config) Size() int { return cfg.root.Size() }

// Count returns the recursive number of nodes below the root.
func (cfg *Config) Count() int { return cfg.root.Count() }
