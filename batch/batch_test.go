package batch

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validLog = `{"tick": 0, "state_transitions": [{"name": "P1", "to": "READY"}]}
{"tick": 1, "state_transitions": [{"name": "P1", "from": "READY", "to": "RUNNING"}]}
{"tick": 4, "state_transitions": [{"name": "P1", "from": "RUNNING", "to": "TERMINATED"}]}
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFindMetricsFiles(t *testing.T) {
	in := t.TempDir()
	writeFile(t, filepath.Join(in, "b.jsonl"), validLog)
	writeFile(t, filepath.Join(in, "sub", "a.jsonl"), validLog)
	writeFile(t, filepath.Join(in, "notes.txt"), "not a log")

	p := &Processor{InputDir: in}
	files, err := p.FindMetricsFiles()
	require.NoError(t, err)
	require.Len(t, files, 2)
	// Sorted, recursive, extension-filtered.
	assert.Equal(t, filepath.Join(in, "b.jsonl"), files[0])
	assert.Equal(t, filepath.Join(in, "sub", "a.jsonl"), files[1])
}

func TestFindMetricsFilesMissingDir(t *testing.T) {
	p := &Processor{InputDir: filepath.Join(t.TempDir(), "absent")}
	files, err := p.FindMetricsFiles()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestProcessAllMirrorsRelativePaths(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(in, "run1.jsonl"), validLog)
	writeFile(t, filepath.Join(in, "exp", "run2.jsonl"), validLog)

	p := &Processor{InputDir: in, OutputDir: out}
	require.NoError(t, p.ProcessAll(io.Discard))

	assert.Len(t, p.Processed, 2)
	assert.Empty(t, p.Failed)
	assert.DirExists(t, filepath.Join(out, "run1"))
	assert.DirExists(t, filepath.Join(out, "exp", "run2"))
}

func TestProcessAllIsolatesFailures(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(in, "bad.jsonl"), "{broken\n")
	writeFile(t, filepath.Join(in, "good.jsonl"), validLog)

	var buf bytes.Buffer
	p := &Processor{InputDir: in, OutputDir: out}
	require.NoError(t, p.ProcessAll(&buf))

	assert.Equal(t, []string{filepath.Join(in, "good.jsonl")}, p.Processed)
	assert.Equal(t, []string{filepath.Join(in, "bad.jsonl")}, p.Failed)
	assert.Contains(t, buf.String(), "1 failed")
	assert.DirExists(t, filepath.Join(out, "good"))
}

func TestProcessAllEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	p := &Processor{InputDir: t.TempDir(), OutputDir: t.TempDir()}
	require.NoError(t, p.ProcessAll(&buf))
	assert.Contains(t, buf.String(), "no .jsonl files found")
	assert.Empty(t, p.Processed)
	assert.Empty(t, p.Failed)
}
