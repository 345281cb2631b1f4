package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerate(t *testing.T) {
	t.Setenv("STARPATH_GALAXY_PLANETS", "10")
	t.Setenv("STARPATH_GALAXY_RANDOM_EDGES", "2")

	out, err := run(t, "generate", "--seed", "5")
	require.NoError(t, err)

	var doc galaxyDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, int64(5), doc.Seed)
	assert.Len(t, doc.Systems, 10)
	assert.Len(t, doc.Lanes, 11)
	assert.Equal(t, "S1", doc.Systems[0].ID)

	again, err := run(t, "generate", "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, out, again, "same seed, same galaxy")
}

func TestGenerate_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galaxy.yaml")
	out, err := run(t, "generate", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "lanes:")
}

func TestGenerate_OutputErrors(t *testing.T) {
	_, err := run(t, "generate", "-o", filepath.Join(t.TempDir(), "missing", "galaxy.yaml"))
	assert.Error(t, err)
}

// failingWriter rejects every write, standing in for a full disk.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteDoc_PropagatesWriteErrors(t *testing.T) {
	doc := galaxyDoc{Systems: []systemDoc{{ID: "S1"}}}
	assert.ErrorContains(t, writeDoc(failingWriter{}, doc), "disk full")

	var buf bytes.Buffer
	require.NoError(t, writeDoc(&buf, doc))
	assert.Contains(t, buf.String(), "id: S1")
}

func TestRoute(t *testing.T) {
	out, err := run(t, "route", "S1", "S2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "S1 -> "), out)
	assert.Contains(t, out, "S2 (")

	out, err = run(t, "route", "S4", "S4")
	require.NoError(t, err)
	assert.Equal(t, "S4 (0 jumps, distance 0.00)\n", out)

	_, err = run(t, "route", "S1", "S999")
	assert.Error(t, err)

	_, err = run(t, "route", "S1")
	assert.Error(t, err, "needs two arguments")
}

func TestConfigErrors(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "generate")
	assert.Error(t, err)

	_, err = run(t, "--log-level", "chatty", "generate")
	assert.Error(t, err)
}
