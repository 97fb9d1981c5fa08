package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yml")}, args...))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func TestAnalyzeCommand_Text(t *testing.T) {
	dir := t.TempDir()
	resume := writeTemp(t, dir, "resume.txt", "Experienced in Python and SQL, strong communication skills.")

	out, err := runCLI(t, "analyze", "--resume", resume, "--job", "Looking for Python, Machine Learning, and SQL expertise.")
	require.NoError(t, err)
	require.Contains(t, out, "resume.txt: 66.67%")
	require.Contains(t, out, "missing:       machine learning")
}

func TestAnalyzeCommand_BatchJSON(t *testing.T) {
	dir := t.TempDir()
	good := writeTemp(t, dir, "good.txt", "Experienced in Python and SQL, strong communication skills.")
	bad := writeTemp(t, dir, "bad.pdf", "%PDF-1.4 corrupt")
	job := writeTemp(t, dir, "job.txt", "Looking for Python, Machine Learning, and SQL expertise.")

	out, err := runCLI(t, "analyze", "-r", good, "-r", bad, "--job-file", job, "--json")
	require.Error(t, err, "a failed résumé makes the command fail")

	var results []struct {
		File     string `json:"file"`
		Analysis *struct {
			Score float64 `json:"score"`
		} `json:"analysis"`
		Error *struct {
			Kind string `json:"kind"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	require.Equal(t, good, results[0].File)
	require.InDelta(t, 66.67, results[0].Analysis.Score, 1e-9)
	require.Equal(t, bad, results[1].File)
	require.Equal(t, "UNREADABLE_DOCUMENT", results[1].Error.Kind)
}

func TestAnalyzeCommand_FlagValidation(t *testing.T) {
	_, err := runCLI(t, "analyze", "--resume", "x.pdf")
	require.Error(t, err)

	_, err = runCLI(t, "analyze", "--resume", "x.pdf", "--job", "a", "--job-file", "b")
	require.Error(t, err)

	_, err = runCLI(t, "analyze", "--resume", filepath.Join(t.TempDir(), "nope.pdf"), "--job", "python")
	require.ErrorContains(t, err, "could not read résumé")
}

func TestSkillsCommand(t *testing.T) {
	out, err := runCLI(t, "skills")
	require.NoError(t, err)
	require.Contains(t, out, "  machine learning\n")
	require.Contains(t, out, "  k8s -> kubernetes\n")
}

func TestServeCommand_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	t.Setenv("HTTP_ADDR", ln.Addr().String())

	_, err = runCLI(t, "serve")
	require.ErrorContains(t, err, "could not start webserver")
}

func TestSkillsCommand_Lookup(t *testing.T) {
	out, err := runCLI(t, "skills", "Python", "K8s", "cobol")
	require.NoError(t, err)
	require.Equal(t, "python: skill\nk8s -> kubernetes\ncobol: unknown\n", out)
}
