// Package manpath resolves module names to on-disk manual pages. All
// filesystem access happens here, eagerly, before the documentation core
// runs; the core itself never touches the host.
package manpath

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultSection is the manual section searched when none is configured.
// Library function documentation conventionally lives in section 3.
const DefaultSection = 3

// RootEnv overrides documentation-root discovery when set.
const RootEnv = "MAN2MD_MANROOT"

var defaultRoots = []string{"/usr/local/share/man", "/usr/share/man"}

// NotFoundError reports that no page exists for a module. It is an expected
// lookup outcome, not a fault; callers surface it and move on.
type NotFoundError struct {
	Module   string
	Section  int
	Searched []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no documentation found for %q in section %d (searched %s)",
		e.Module, e.Section, strings.Join(e.Searched, ", "))
}

// Finder locates manual pages under one or more documentation roots.
type Finder struct {
	// Root is an explicit documentation root; when set it is the only root
	// searched.
	Root string
	// Section is the manual section, DefaultSection when zero.
	Section int
}

// Roots returns the candidate documentation roots in priority order:
// the explicit root, then MAN2MD_MANROOT, then MANPATH entries, then the
// conventional system locations.
func (f *Finder) Roots() []string {
	if f.Root != "" {
		return []string{f.Root}
	}
	var roots []string
	if env := os.Getenv(RootEnv); env != "" {
		roots = append(roots, env)
	}
	for _, p := range filepath.SplitList(os.Getenv("MANPATH")) {
		if p != "" {
			roots = append(roots, p)
		}
	}
	return append(roots, defaultRoots...)
}

func (f *Finder) section() int {
	if f.Section != 0 {
		return f.Section
	}
	return DefaultSection
}

// Load reads the page for module, trying each root in order. A missing page
// in every root yields a *NotFoundError listing the paths searched.
func (f *Finder) Load(module string) (string, error) {
	sec := strconv.Itoa(f.section())
	var searched []string
	for _, root := range f.Roots() {
		path := filepath.Join(root, "man"+sec, module+"."+sec)
		data, err := os.ReadFile(path)
		if err == nil {
			return string(data), nil
		}
		searched = append(searched, path)
	}
	return "", &NotFoundError{Module: module, Section: f.section(), Searched: searched}
}
