package printer

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestRender_PlainWithoutColor(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	assert.Equal(t, "ok", Success("ok"))
	assert.Equal(t, "bad", Error("bad"))
	assert.Equal(t, "careful", Warning("careful"))
	assert.Equal(t, "title", Bold("title"))
	assert.Equal(t, "quiet", Faint("quiet"))
}

func TestField(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	var buf bytes.Buffer
	Field(&buf, "tcl", "/usr/lib/tcl8.6")
	assert.Equal(t, "  tcl:     /usr/lib/tcl8.6\n", buf.String())
}

func TestMapping(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	var buf bytes.Buffer
	Mapping(&buf, "/usr/lib/tcl8.6/init.tcl", "_MEI/tcl/init.tcl")
	assert.Equal(t, "  /usr/lib/tcl8.6/init.tcl -> _MEI/tcl/init.tcl\n", buf.String())
}
