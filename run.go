package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/agentflare-ai/man2md/internal/exports"
	"github.com/agentflare-ai/man2md/internal/man"
	"github.com/agentflare-ai/man2md/internal/manpath"
	"github.com/agentflare-ai/man2md/internal/render"
)

type options struct {
	manRoot     string
	section     int
	exportsPath string
	outputPath  string
	plain       bool
	exactArgs   bool
	jsonOut     bool
	verbose     bool
	configPath  string
}

// reference is one parsed positional argument: module[:function[/arity]].
type reference struct {
	module   string
	function string
	arity    int // -1 when unspecified
}

func (r reference) String() string {
	s := r.module
	if r.function != "" {
		s += ":" + r.function
		if r.arity >= 0 {
			s += "/" + strconv.Itoa(r.arity)
		}
	}
	return s
}

type cliApp struct {
	stdout io.Writer
	opts   options
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(normalizeLegacyArgs(argv))
	return cmd.Execute()
}

func (app *cliApp) execute(ctx context.Context, positionals []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(positionals) == 0 {
		return errors.New("no module arguments provided")
	}
	refs, err := parseReferences(positionals)
	if err != nil {
		return err
	}
	logger := newLogger(app.opts.verbose)

	// All I/O happens up front; extraction itself is pure.
	var manifest *exports.Manifest
	if app.opts.exportsPath != "" {
		manifest, err = exports.Load(app.opts.exportsPath)
		if err != nil {
			return err
		}
		logger.Debug("loaded exports manifest", "path", app.opts.exportsPath, "modules", len(manifest.Modules()))
	}
	finder := &manpath.Finder{Root: app.opts.manRoot, Section: app.opts.section}

	// Each reference is independent, so documents are built concurrently
	// and emitted in argument order.
	outputs := make([]string, len(refs))
	g, ctx := errgroup.WithContext(ctx)
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := app.document(logger, finder, manifest, ref)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return writeOutput(app.opts.outputPath, app.stdout, []byte(strings.Join(outputs, "\n")))
}

// document builds the rendered output for one reference.
func (app *cliApp) document(logger *slog.Logger, finder *manpath.Finder, manifest *exports.Manifest, ref reference) (string, error) {
	page, err := finder.Load(ref.module)
	if err != nil {
		return "", err
	}
	logger.Debug("loaded page", "module", ref.module, "bytes", len(page))

	// Without a manifest there is no export set, so only the module
	// description can be produced. A manifest that lacks the module is a
	// precondition violation and fails the whole lookup.
	set := man.ExportSet{}
	if manifest != nil {
		set, err = manifest.ExportSet(ref.module)
		if err != nil {
			return "", err
		}
	}

	mod, err := man.Extract(ref.module, page, set, man.Options{ExactArgs: app.opts.exactArgs})
	if err != nil {
		return "", err
	}
	logger.Debug("extracted documentation", "module", ref.module, "functions", len(mod.Funcs))

	heading := ""
	if ref.function != "" {
		mod.Funcs = filterFuncs(mod.Funcs, ref)
		if len(mod.Funcs) == 0 {
			return "", fmt.Errorf("no documentation for %s", ref)
		}
		mod.Doc = ""
		heading = ref.String()
	}

	if app.opts.jsonOut {
		data, err := json.MarshalIndent(mod, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	}

	var buf bytes.Buffer
	if err := app.renderer().Render(&buf, heading, formatModule(mod)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderer picks the output sink implementation. Terminal styling only
// applies when writing to stdout without --plain; file and JSON output stay
// unstyled.
func (app *cliApp) renderer() render.Renderer {
	if app.opts.plain || app.opts.outputPath != "" {
		return render.Plain{}
	}
	return render.NewTerm(app.stdout)
}

// formatModule assembles the Markdown document: the module description
// followed by one section per function, headed by name/arity.
func formatModule(mod man.Module) string {
	var b strings.Builder
	b.WriteString(mod.Doc)
	for _, f := range mod.Funcs {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s/%d\n\n", f.Name, f.Arity)
		b.WriteString(f.Body)
	}
	return b.String()
}

func filterFuncs(funcs []man.FuncDoc, ref reference) []man.FuncDoc {
	var keep []man.FuncDoc
	for _, f := range funcs {
		if f.Name != ref.function {
			continue
		}
		if ref.arity >= 0 && f.Arity != ref.arity {
			continue
		}
		keep = append(keep, f)
	}
	return keep
}

func parseReferences(args []string) ([]reference, error) {
	refs := make([]reference, 0, len(args))
	for _, arg := range args {
		ref, err := parseReference(arg)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func parseReference(arg string) (reference, error) {
	ref := reference{arity: -1}
	moduleSpec, funcSpec, hasFunc := strings.Cut(arg, ":")
	if moduleSpec == "" {
		return reference{}, fmt.Errorf("invalid reference %q: empty module", arg)
	}
	ref.module = moduleSpec
	if !hasFunc {
		return ref, nil
	}
	name, aritySpec, hasArity := strings.Cut(funcSpec, "/")
	if name == "" {
		return reference{}, fmt.Errorf("invalid reference %q: empty function", arg)
	}
	ref.function = name
	if hasArity {
		n, err := strconv.Atoi(aritySpec)
		if err != nil || n < 0 {
			return reference{}, fmt.Errorf("invalid reference %q: bad arity", arg)
		}
		ref.arity = n
	}
	return ref, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

var legacyLongFlagSet = map[string]struct{}{
	"man-root":   {},
	"section":    {},
	"exports":    {},
	"output":     {},
	"plain":      {},
	"exact-args": {},
	"json":       {},
	"verbose":    {},
	"config":     {},
}

// normalizeLegacyArgs rewrites single-dash long flags (-exports, -plain) to
// their double-dash form, matching the loose flag style of the man tooling
// this replaces.
func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	modified := false
	converted := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			converted = append(converted, arg)
			converted = append(converted, args[i+1:]...)
			if i != len(args)-1 {
				modified = true
			}
			break
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") || arg == "-" {
			converted = append(converted, arg)
			continue
		}
		if len(arg) == 2 {
			converted = append(converted, arg)
			continue
		}
		if idx := strings.Index(arg, "="); idx > 0 {
			name := arg[1:idx]
			if _, ok := legacyLongFlagSet[name]; ok {
				converted = append(converted, "--"+name+arg[idx:])
				modified = true
				continue
			}
		}
		name := arg[1:]
		if _, ok := legacyLongFlagSet[name]; ok {
			converted = append(converted, "--"+name)
			modified = true
			continue
		}
		converted = append(converted, arg)
	}
	if !modified && len(converted) == len(args) {
		return args
	}
	return converted
}
