package man

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var demoPage = strings.Join([]string{
	".TH demo 3",
	".SH NAME",
	`demo \- toy module`,
	".SH DESCRIPTION",
	`The \fIdemo\fR module.`,
	".SH EXPORTS",
	"Exported functions follow.",
	".B",
	"send(Pid, Msg) -> ok",
	".br",
	`Sends \fBMsg\fR to \fIPid\fR.`,
	".B",
	"send_after(Time, Pid, Msg) -> Ref",
	".nf",
	"send_after(1000, Pid, ping)",
	".fi",
	".B",
	"internal_detail(X) -> X",
	"Not exported; dropped.",
	".B",
	"now() -> Timestamp",
}, "\n")

var demoExports = ExportSet{"send": 2, "send_after": 3, "now": 0}

func TestExtract(t *testing.T) {
	mod, err := Extract("demo", demoPage, demoExports, Options{})
	require.NoError(t, err)

	assert.Equal(t, "demo", mod.Name)
	assert.Contains(t, mod.Doc, "# demo 3\n")
	assert.Contains(t, mod.Doc, "## DESCRIPTION")
	assert.Contains(t, mod.Doc, "`demo` module")
	assert.NotContains(t, mod.Doc, "EXPORTS")

	require.Len(t, mod.Funcs, 3)
	assert.Equal(t, "send", mod.Funcs[0].Name)
	assert.Equal(t, "send_after", mod.Funcs[1].Name)
	assert.Equal(t, "now", mod.Funcs[2].Name)
}

func TestExtract_FuncDocShape(t *testing.T) {
	mod, err := Extract("demo", demoPage, demoExports, Options{})
	require.NoError(t, err)

	sendAfter := mod.Funcs[1]
	assert.Equal(t, 3, sendAfter.Arity)
	assert.Equal(t, 1, sendAfter.Line)
	assert.Equal(t, "definition", sendAfter.Kind)
	assert.Equal(t, []string{"arg0", "arg1", "arg2", "arg3"}, sendAfter.Signature)
	assert.Contains(t, sendAfter.Body, "send_after(Time, Pid, Msg) -> Ref")
	assert.Contains(t, sendAfter.Body, "    send_after(1000, Pid, ping)")
}

func TestExtract_ExactArgs(t *testing.T) {
	mod, err := Extract("demo", demoPage, demoExports, Options{ExactArgs: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"arg0", "arg1", "arg2"}, mod.Funcs[1].Signature)
	assert.Empty(t, mod.Funcs[2].Signature)
}

func TestExtract_UnmatchedBlocksDropped(t *testing.T) {
	mod, err := Extract("demo", demoPage, demoExports, Options{})
	require.NoError(t, err)
	for _, f := range mod.Funcs {
		assert.NotEqual(t, "internal_detail", f.Name)
	}
}

func TestExtract_NoExportsSection(t *testing.T) {
	_, err := Extract("demo", ".TH demo 3\n.SH DESCRIPTION\nnothing else", demoExports, Options{})
	assert.ErrorIs(t, err, ErrExportsMarkerMissing)
}

func TestExtract_InlineEscapesConvertedInBodies(t *testing.T) {
	mod, err := Extract("demo", demoPage, demoExports, Options{})
	require.NoError(t, err)
	assert.Contains(t, mod.Funcs[0].Body, "Sends `Msg` to `Pid`.")
}
