package man

import (
	"strings"

	"golang.org/x/sync/errgroup"
)

// Options controls extraction behavior.
type Options struct {
	// ExactArgs disables the legacy arity+1 placeholder count in generated
	// signatures (see BuildSignature).
	ExactArgs bool
}

// Extract runs the full pipeline over one page: split off the exports
// segment, transcode the module description, carve the segment into blocks,
// and build one FuncDoc per block that matches a known export. Blocks that
// match nothing are dropped. Function blocks are independent of one another,
// so they are converted concurrently.
func Extract(name, page string, exports ExportSet, opts Options) (Module, error) {
	moduleSeg, exportsSeg, err := Split(page)
	if err != nil {
		return Module{}, err
	}
	blocks := Blocks(exportsSeg)

	docs := make([]*FuncDoc, len(blocks))
	var g errgroup.Group
	for i, block := range blocks {
		if i == 0 {
			// Text before the first separator is boilerplate.
			continue
		}
		i, block := i, block
		g.Go(func() error {
			fn, ok := Match(block, exports)
			if !ok {
				return nil
			}
			arity := ScanArity(firstLine(block))
			docs[i] = &FuncDoc{
				Name:      fn,
				Arity:     arity,
				Line:      docLine,
				Kind:      docKind,
				Signature: BuildSignature(arity, opts.ExactArgs),
				Body:      Transcode(block),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Module{}, err
	}

	mod := Module{Name: name, Doc: Transcode(moduleSeg)}
	for _, doc := range docs {
		if doc != nil {
			mod.Funcs = append(mod.Funcs, *doc)
		}
	}
	return mod, nil
}

func firstLine(block string) string {
	lead := strings.TrimLeft(block, " \t\r\n")
	if i := strings.IndexByte(lead, '\n'); i >= 0 {
		return lead[:i]
	}
	return lead
}
