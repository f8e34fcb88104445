package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[mainConfig]
port = 9000

[redisConfig]
host = "redis.internal"
verifyDb = 5

[validationConfig]
strictMobile = true
`)

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, conf.MainConfig.Port)
	assert.Equal(t, "redis.internal", conf.RedisConfig.Host)
	assert.Equal(t, 5, conf.VerifyDb)
	assert.True(t, conf.StrictMobile)
	// 未配置的字段保留默认值
	assert.Equal(t, 6379, conf.RedisConfig.Port)
	assert.Equal(t, bcrypt.DefaultCost, conf.BcryptCost)
	assert.Equal(t, "none", conf.MessageMode)
}

func TestLoadRejectsInvalidBcryptCost(t *testing.T) {
	path := writeConfig(t, `
[passwordConfig]
bcryptCost = 99
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "bcryptCost")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestMysqlDSN(t *testing.T) {
	c := MysqlConfig{Host: "db", Port: 3307, User: "meiduo", Password: "pw", DatabaseName: "meiduo_mall"}
	assert.Equal(t, "meiduo:pw@tcp(db:3307)/meiduo_mall?charset=utf8mb4&parseTime=True&loc=Local", c.DSN())
}
