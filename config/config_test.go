package config_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/pollyskema"
	"github.com/reoring/pollyskema/config"
	"github.com/reoring/pollyskema/i18n"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "polly.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func env(kv map[string]string) config.LookupFunc {
	return func(k string) (string, bool) {
		v, ok := kv[k]
		return v, ok
	}
}

func TestLoad_OverDefaults(t *testing.T) {
	p := writeFile(t, "trust_api_responses: false\nlog:\n  level: debug\n")
	c, err := config.Load(p)
	require.NoError(t, err)
	assert.False(t, c.Trust)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "text", c.Log.Format, "kept from defaults")
	assert.Equal(t, "en", c.Language)
}

func TestLoad_EmptyFile(t *testing.T) {
	c, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "trust: yes\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = config.Load(writeFile(t, "log:\n  level: loud\n"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "log:\n  format: xml\n"))
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	c, err := config.FromEnv(config.Default(), env(map[string]string{
		config.EnvTrust:    "false",
		config.EnvLogLevel: "warn",
		config.EnvLanguage: "ja",
	}))
	require.NoError(t, err)
	assert.False(t, c.TrustAPIResponses())
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, "ja", c.Language)

	// empty values are ignored
	c, err = config.FromEnv(config.Default(), env(map[string]string{config.EnvTrust: ""}))
	require.NoError(t, err)
	assert.True(t, c.Trust)

	_, err = config.FromEnv(config.Default(), env(map[string]string{config.EnvTrust: "maybe"}))
	assert.Error(t, err)
}

func TestApplyLogging(t *testing.T) {
	l := log.New()
	c := config.Default()
	c.Log = config.LogConfig{Level: "warn", Format: "json"}
	require.NoError(t, c.ApplyLogging(l))
	assert.Equal(t, log.WarnLevel, l.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, l.Formatter)
}

func TestInstall(t *testing.T) {
	t.Cleanup(func() {
		pollyskema.SetLogger(nil)
		i18n.SetLanguage("en")
	})

	var buf bytes.Buffer
	l := log.New()
	l.SetOutput(&buf)

	c := config.Default()
	c.Trust = false
	c.Language = "ja"
	require.NoError(t, c.Install(l))

	cl, err := pollyskema.CurrentClient(context.Background())
	require.NoError(t, err)
	assert.False(t, cl.TrustAPIResponses())
	assert.Equal(t, "型が不正です", i18n.T(pollyskema.CodeInvalidType, nil))

	// leave a trusting client behind for other tests in this binary
	pollyskema.SetCurrent(pollyskema.StaticClient{Trust: true})
}
