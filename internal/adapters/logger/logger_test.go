package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinfile/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	lg, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	lg.SetOutput(&buf)
	return lg, &buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Info("parsed 12 constraints")

	output := buf.String()
	assert.Contains(t, output, "INFO")
	assert.Contains(t, output, "parsed 12 constraints")
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Warn("duplicate pin retained")

	output := buf.String()
	assert.Contains(t, output, "WARN")
	assert.Contains(t, output, "duplicate pin retained")
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Error(zerr.New("malformed constraint entry"))

	output := buf.String()
	assert.Contains(t, output, "ERROR")
	assert.Contains(t, output, "malformed constraint entry")
}

func TestLogger_Error_NilIsSilent(t *testing.T) {
	lg, buf := newBufferedLogger(t)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}
