package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelWarn)

	log.Info("API", "hidden")
	log.Warn("API", "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WARN  [API] shown")
}

func TestGatewayFailuresAreWarnings(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo)

	log.LogGateway("GET", "/food/getFoodItems", 200, 12*time.Millisecond)
	assert.Empty(t, buf.String())

	log.LogGateway("POST", "/orders/addOrder", 500, time.Second)
	assert.Contains(t, buf.String(), "[GATEWAY] POST /orders/addOrder - 500 (1s)")
}

func TestFatalExits(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	log := New(&buf, LevelInfo)
	log.exit = func(c int) { code = c }

	log.Fatal("PROCESS", "cannot start")
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "FATAL [PROCESS] cannot start")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}
