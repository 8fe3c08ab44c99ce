package kb

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rcliao/healthpredict/internal/model"
)

// File is the on-disk TOML layout of a catalog.
type File struct {
	Conditions  []model.ConditionRule `toml:"condition"`
	Specialists []SpecialistEntry     `toml:"specialist"`
}

// Load reads and validates a TOML catalog. Unknown keys are rejected so
// that typos in a rule do not silently drop a field.
func Load(path string) (*KnowledgeBase, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("decode knowledge base: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("decode knowledge base: unknown keys: %s", strings.Join(keys, ", "))
	}
	kb, err := New(f.Conditions, f.Specialists)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return kb, nil
}

// Write encodes the catalog as TOML in the layout Load accepts.
func (kb *KnowledgeBase) Write(w io.Writer) error {
	f := File{Conditions: kb.ListRules()}
	for _, sp := range kb.specialists {
		sp.Conditions = append([]string(nil), sp.Conditions...)
		f.Specialists = append(f.Specialists, sp)
	}
	return toml.NewEncoder(w).Encode(f)
}
