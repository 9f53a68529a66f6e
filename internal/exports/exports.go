// Package exports loads module export manifests. A manifest declares, per
// module, the exported function names and their arities; the documentation
// core matches function blocks against this set.
package exports

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/agentflare-ai/man2md/internal/man"
)

// ModuleNotLoadedError reports a lookup for a module the manifest does not
// declare. Extraction requires the export set up front, so this fails the
// lookup loudly instead of degrading to an empty set.
type ModuleNotLoadedError struct {
	Module string
}

func (e *ModuleNotLoadedError) Error() string {
	return fmt.Sprintf("module %q is not present in the exports manifest", e.Module)
}

// Manifest is a read-only collection of per-module export sets.
type Manifest struct {
	modules map[string]man.ExportSet
}

// Load reads a YAML manifest of the form:
//
//	modules:
//	  lists:
//	    append: 2
//	    reverse: 1
func Load(path string) (*Manifest, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("exports: load manifest %s: %w", path, err)
	}
	var raw struct {
		Modules map[string]map[string]int `koanf:"modules"`
	}
	if err := k.Unmarshal("", &raw); err != nil {
		return nil, fmt.Errorf("exports: parse manifest %s: %w", path, err)
	}
	m := &Manifest{modules: make(map[string]man.ExportSet, len(raw.Modules))}
	for name, funcs := range raw.Modules {
		m.modules[name] = man.ExportSet(funcs)
	}
	return m, nil
}

// Empty returns a manifest declaring no modules. ExportSet on it always
// fails, which callers can treat as "extract nothing".
func Empty() *Manifest {
	return &Manifest{modules: map[string]man.ExportSet{}}
}

// Modules lists the declared module names.
func (m *Manifest) Modules() []string {
	names := make([]string, 0, len(m.modules))
	for name := range m.modules {
		names = append(names, name)
	}
	return names
}

// ExportSet returns the export set for module, or *ModuleNotLoadedError if
// the manifest does not declare it.
func (m *Manifest) ExportSet(module string) (man.ExportSet, error) {
	set, ok := m.modules[module]
	if !ok {
		return nil, &ModuleNotLoadedError{Module: module}
	}
	return set, nil
}
