package man

import "strings"

// codeIndent is carried onto the line following a fill-off macro so that
// verbatim text renders as an indented code line in Markdown.
const codeIndent = "    "

// action is the outcome of one macro rule: an output line (kept only when
// emit is set) plus the carry threaded into the next line.
type action struct {
	line  string
	emit  bool
	carry string
}

func emit(line, carry string) action { return action{line: line, emit: true, carry: carry} }

func suppress(carry string) action { return action{carry: carry} }

// macroRules maps a recognized leading macro token to its transformation.
// Anything not in this table falls through to the plain-text path; the goal
// is best-effort conversion, not roff grammar conformance.
var macroRules = map[string]func(rest string) action{
	// Title headings get a trailing blank line; a Markdown H1 directly
	// followed by text reads poorly.
	".TH": func(rest string) action { return emit("# "+rest+"\n", "") },
	".SH": func(rest string) action { return emit("## "+rest, "") },
	".SS": func(rest string) action { return emit("### "+rest, "") },
	".TP": func(rest string) action { return emit(rest, "") },
	".LP": func(rest string) action { return emit(rest, "") },
	// Region indentation is not realized in Markdown output.
	".RS": func(rest string) action { return suppress("") },
	".RE": func(rest string) action { return suppress("") },
	".nf": func(rest string) action { return emit(rest, codeIndent) },
	".fi": func(rest string) action { return emit(rest, "") },
	".br": func(rest string) action { return emit("\n"+rest, "") },
	// A lone ".B" is normally consumed upstream as the block separator;
	// handle it anyway in case one leaks through.
	".B": func(rest string) action { return emit(rest, "") },
}

// inlineReplacer rewrites the three font-shift escapes to backticks and
// drops the zero-width no-break escape. Its output contains none of the
// input escapes, so applying it twice changes nothing.
var inlineReplacer = strings.NewReplacer(
	`\fI`, "`",
	`\fB`, "`",
	`\fR`, "`",
	`\&`, "",
)

// Transcode converts roff macro text (a module segment or one function
// block) into Markdown. Lines are processed in order; each macro rule may
// leave a carry string that is prefixed onto the next plain-text line, which
// then resets the carry.
func Transcode(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	carry := ""
	for _, line := range lines {
		if token, rest, ok := splitMacro(line); ok {
			act := macroRules[token](rest)
			carry = act.carry
			if act.emit {
				out = append(out, act.line)
			}
			continue
		}
		out = append(out, carry+inlineReplacer.Replace(line))
		carry = ""
	}
	return strings.Join(out, "\n") + "\n"
}

// splitMacro separates a line into its leading macro token and remainder.
// It reports false for plain text and for dot lines whose token is not in
// the dispatch table.
func splitMacro(line string) (token, rest string, ok bool) {
	if !strings.HasPrefix(line, ".") {
		return "", "", false
	}
	token, rest, _ = strings.Cut(line, " ")
	token = strings.TrimRight(token, "\r")
	if _, known := macroRules[token]; !known {
		return "", "", false
	}
	return token, strings.TrimLeft(rest, " "), true
}
