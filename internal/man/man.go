// Package man implements the documentation core: splitting a roff manual
// page into its module and exports segments, carving the exports segment into
// per-function blocks, inferring arities from signature lines, and
// transcoding roff macro text into Markdown.
//
// Every function in this package is a pure function of its inputs. Page
// lookup, export manifests, and rendering live outside the core so that it
// can be tested against plain strings.
package man

import "errors"

// ErrExportsMarkerMissing reports a page without an exports section. Callers
// must not attempt function extraction on such a page.
var ErrExportsMarkerMissing = errors.New("man: exports section marker missing")

// ExportSet maps exported function names to their declared arity. It is
// supplied by the host (normally from a manifest) and never mutated here.
type ExportSet map[string]int

// FuncDoc is the documentation record for one exported function.
type FuncDoc struct {
	Name      string   `json:"name"`
	Arity     int      `json:"arity"`
	Line      int      `json:"line"` // always 1; manual pages carry no source positions
	Kind      string   `json:"kind"` // always "definition"
	Signature []string `json:"signature"`
	Body      string   `json:"body"` // Markdown
}

// Module is the result of extracting a full page: the module-level
// description plus one FuncDoc per matched function block, in page order.
type Module struct {
	Name  string    `json:"module"`
	Doc   string    `json:"doc"` // Markdown
	Funcs []FuncDoc `json:"functions"`
}

const (
	docLine = 1
	docKind = "definition"
)
