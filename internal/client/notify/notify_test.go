package notify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminal_NoColor_PlainLines(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, true)

	term.Notify(Success, "Logged in")
	term.Notify(Warning, "Please log in first")
	term.Notify(Error, "Request failed")
	term.Notify(Info, "3 books")

	want := "[SUCCESS] Logged in\n" +
		"[WARNING] Please log in first\n" +
		"[ERROR] Request failed\n" +
		"[INFO] 3 books\n"
	assert.Equal(t, want, buf.String())
}

func TestTerminal_Styled_KeepsMessage(t *testing.T) {
	var buf bytes.Buffer
	NewTerminal(&buf, false).Notify(Error, "Server error, please try again later")

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "Server error, please try again later")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "info", Info.String())
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "level(9)", Level(9).String())
}
