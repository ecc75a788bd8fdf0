package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError(t *testing.T) {
	base := errors.New("disk full")
	err := WrapExitError(ExitFailure, "export", base)

	assert.Equal(t, "export: disk full", err.Error())
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "usage", NewExitError(ExitCommandError, "usage").Error())

	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "x")))
	assert.Equal(t, ExitFailure, GetExitCode(base))
}

func TestOutputFormatter(t *testing.T) {
	var buf, errBuf bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &buf, ErrWriter: &errBuf}

	require.NoError(t, f.Success("plain"))
	assert.Equal(t, "plain\n", buf.String())

	f.VerboseLog("hidden")
	assert.Empty(t, errBuf.String())
	f.Verbose = true
	f.VerboseLog("shown %d", 1)
	assert.Equal(t, "shown 1\n", errBuf.String())

	buf.Reset()
	f.Format = "json"
	require.NoError(t, f.Error(ErrCodeOperation, "boom", nil))
	assert.JSONEq(t, `{"status":"error","error":{"code":"E003","message":"boom"}}`, buf.String())
}
