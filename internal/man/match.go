package man

import (
	"sort"
	"strings"
)

// Match tests whether the block's leading content starts with a known export
// name. Candidates are tried longest name first so that exports sharing a
// prefix resolve to the most specific one ("send_after" wins over "send").
// A block that matches nothing is not an error; the caller drops it.
func Match(block string, exports ExportSet) (string, bool) {
	lead := strings.TrimLeft(block, " \t\r\n")
	names := make([]string, 0, len(exports))
	for name := range exports {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		if strings.HasPrefix(lead, name) {
			return name, true
		}
	}
	return "", false
}
