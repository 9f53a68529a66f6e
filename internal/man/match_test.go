package man

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	exports := ExportSet{"send": 2, "now": 0}

	name, ok := Match("\nsend(Pid, Msg) -> ok\nbody", exports)
	assert.True(t, ok)
	assert.Equal(t, "send", name)
}

func TestMatch_LongestNameWins(t *testing.T) {
	exports := ExportSet{"send": 2, "send_after": 3}

	name, ok := Match("send_after(pid, time) -> ok", exports)
	assert.True(t, ok)
	assert.Equal(t, "send_after", name)
}

func TestMatch_NoExportMatches(t *testing.T) {
	_, ok := Match("internal_helper(X) -> X", ExportSet{"send": 2})
	assert.False(t, ok)
}

func TestMatch_EmptyExportSet(t *testing.T) {
	_, ok := Match("send(Pid, Msg) -> ok", ExportSet{})
	assert.False(t, ok)
}
