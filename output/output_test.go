package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Section("Orders")
	p.Field("Total", 3)
	p.Success("saved %s", "o1")
	p.Line("%-4s|", "ab")

	out := buf.String()
	assert.Contains(t, out, "Orders")
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "saved o1")
	assert.Contains(t, out, "ab  |")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestStatusIcon(t *testing.T) {
	for status, want := range map[string]string{
		"delivered": "✓",
		"pending":   "○",
		"cancelled": "✗",
		"preparing": "◉",
		"whatever":  "•",
	} {
		assert.Contains(t, StatusIcon(status), want, status)
	}
}
