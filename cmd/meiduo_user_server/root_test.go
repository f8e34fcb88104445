package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"serve", "migrate", "sms-code"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}

	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.NotNil(t, serve.Flags().Lookup("migrate"))
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestLoadConfigFromFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[mainConfig]
port = 9001

[validationConfig]
strictMobile = true
`), 0o600))

	configPath = path
	t.Cleanup(func() { configPath = "" })

	conf, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9001, conf.MainConfig.Port)
	assert.True(t, conf.StrictMobile)
}

func TestLoadConfigMissingFile(t *testing.T) {
	configPath = filepath.Join(t.TempDir(), "missing.toml")
	t.Cleanup(func() { configPath = "" })

	_, err := loadConfig()
	assert.Error(t, err)
}

func TestSmsCodeRequiresMobile(t *testing.T) {
	cmd := newSmsCodeCmd()
	assert.Error(t, cmd.Args(cmd, nil))
	assert.NoError(t, cmd.Args(cmd, []string{"13912345678"}))
}
