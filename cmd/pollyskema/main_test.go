package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/pollyskema/jsonx"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParse_JSONStdin(t *testing.T) {
	out, err := run(t, `{"Id":"Joanna","Gender":"Female","LanguageCode":"en-US"}`,
		"parse", "--model", "Voice", "--by-alias", "--include", "id,gender")
	require.NoError(t, err)

	got, err := jsonx.Loads(out)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Id": "Joanna", "Gender": "Female"}, got)
}

func TestParse_YAMLFileCamel(t *testing.T) {
	p := filepath.Join(t.TempDir(), "task.yaml")
	require.NoError(t, os.WriteFile(p, []byte("TaskId: t-1\nTaskStatus: completed\nOutputUri: s3://b/k\n"), 0o600))

	out, err := run(t, "", "parse", "-m", "SynthesisTask", "--camel", "--include", "task_id,output_uri", p)
	require.NoError(t, err)

	got, err := jsonx.Loads(out)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"taskId": "t-1", "outputUri": "s3://b/k"}, got)
}

func TestParse_StrictFails(t *testing.T) {
	_, err := run(t, `{"Gender":"Other"}`, "parse", "-m", "Voice", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/Gender")
	assert.Contains(t, err.Error(), "/Id")
}

func TestParse_TolerantByDefault(t *testing.T) {
	out, err := run(t, `{"Id":"x","Gender":"Other"}`, "parse", "-m", "Voice", "--include", "gender")
	require.NoError(t, err)
	assert.Equal(t, `{"gender":"Other"}`, strings.TrimSpace(out))
}

func TestParse_UnknownModel(t *testing.T) {
	_, err := run(t, `{}`, "parse", "-m", "Nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown model")
}

func TestParse_NotAnObject(t *testing.T) {
	_, err := run(t, `[1,2]`, "parse", "-m", "Voice")
	require.Error(t, err)
}

func TestParse_HashIgnoresListOrder(t *testing.T) {
	a, err := run(t, `{"Id":"x","SupportedEngines":["neural","standard"]}`, "parse", "-m", "Voice", "--hash")
	require.NoError(t, err)
	b, err := run(t, `{"Id":"x","SupportedEngines":["standard","neural"]}`, "parse", "-m", "Voice", "--hash")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSchemaAndModels(t *testing.T) {
	out, err := run(t, "", "schema", "Lexicon")
	require.NoError(t, err)
	assert.Contains(t, out, `"Name"`)
	assert.Contains(t, out, `"required"`)

	out, err = run(t, "", "models")
	require.NoError(t, err)
	assert.Contains(t, out, "SynthesizeSpeechParams\n")
}

func TestBackend(t *testing.T) {
	out, err := run(t, "", "backend")
	require.NoError(t, err)
	assert.Contains(t, out, "active:")
	assert.Contains(t, out, "json")
}

func TestConfigFlag(t *testing.T) {
	p := filepath.Join(t.TempDir(), "polly.yaml")
	require.NoError(t, os.WriteFile(p, []byte("trust_api_responses: false\n"), 0o600))

	_, err := run(t, `{"Gender":"Other"}`, "--config", p, "parse", "-m", "Voice")
	assert.Error(t, err, "config disables trust")
}
