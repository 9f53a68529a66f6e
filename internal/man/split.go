package man

import "strings"

// ExportsMarker introduces the exports section of a page. Everything before
// it describes the module; everything after it documents functions.
const ExportsMarker = ".SH EXPORTS"

// blockSeparator delimits one function's documentation from the next inside
// the exports segment. It only counts when isolated on its own line; ".B"
// with an argument is ordinary bold markup.
const blockSeparator = ".B"

// Split divides a page into its module segment and exports segment, cutting
// on the first occurrence of ExportsMarker. A page without the marker is
// structurally unusable for extraction and yields ErrExportsMarkerMissing.
func Split(page string) (module, exports string, err error) {
	before, after, found := strings.Cut(page, ExportsMarker)
	if !found {
		return "", "", ErrExportsMarkerMissing
	}
	return before, after, nil
}

// Blocks splits the exports segment on separator lines. For k separators it
// returns exactly k+1 blocks; the first block is the text preceding the
// first separator and is boilerplate, never a function. No returned block
// contains a separator line.
func Blocks(exports string) []string {
	lines := strings.Split(exports, "\n")
	var blocks []string
	var cur []string
	for _, line := range lines {
		if strings.TrimRight(line, " \t\r") == blockSeparator {
			blocks = append(blocks, strings.Join(cur, "\n"))
			cur = cur[:0]
			continue
		}
		cur = append(cur, line)
	}
	return append(blocks, strings.Join(cur, "\n"))
}
