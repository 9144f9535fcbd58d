package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops a YAML config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configPath, []byte(content), 0644)
	require.NoError(t, err, "Failed to write config file")

	return configPath
}

func TestLoadFromConfigFile(t *testing.T) {
	configPath := writeConfig(t, "pepper: house-secret\nhmac_key: a2V5\n")

	source, err := Load(configPath)
	require.NoError(t, err)

	pepper, ok := source.Pepper()
	require.True(t, ok, "pepper should be configured")
	assert.Equal(t, []byte("house-secret"), pepper)

	// "a2V5" is base64 for "key".
	key, ok := source.HMACKey()
	require.True(t, ok, "hmac key should be configured")
	assert.Equal(t, []byte("key"), key)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err, "an explicitly named config file must exist")
}

func TestLoadWithoutAnyConfig(t *testing.T) {
	// Point the home lookup at an empty directory so no real user config
	// can leak into the test.
	t.Setenv("HOME", t.TempDir())

	source, err := Load("")
	require.NoError(t, err, "a missing default config file is not an error")

	_, ok := source.Pepper()
	assert.False(t, ok)
	_, ok = source.HMACKey()
	assert.False(t, ok)
}

func TestEnvironmentValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DEMOHASH_PEPPER", "env-pepper")
	t.Setenv("DEMOHASH_HMAC_KEY", "not base64!")

	source, err := Load("")
	require.NoError(t, err)

	pepper, ok := source.Pepper()
	require.True(t, ok)
	assert.Equal(t, []byte("env-pepper"), pepper)

	key, ok := source.HMACKey()
	require.True(t, ok)
	assert.Equal(t, []byte("not base64!"), key, "an undecodable key should fall back to raw bytes")
}

func TestEnvironmentOverridesFile(t *testing.T) {
	configPath := writeConfig(t, "pepper: from-file\n")
	t.Setenv("DEMOHASH_PEPPER", "from-env")

	source, err := Load(configPath)
	require.NoError(t, err)

	pepper, ok := source.Pepper()
	require.True(t, ok)
	assert.Equal(t, []byte("from-env"), pepper)
}

func TestDecodeKey(t *testing.T) {
	testCases := []struct {
		name       string
		value      string
		expected   []byte
		fromBase64 bool
	}{
		{
			name:       "valid base64 decodes",
			value:      "a2V5", // "key"
			expected:   []byte("key"),
			fromBase64: true,
		},
		{
			name:       "length not a multiple of four falls back to raw bytes",
			value:      "key",
			expected:   []byte("key"),
			fromBase64: false,
		},
		{
			name:       "characters outside the alphabet fall back to raw bytes",
			value:      "pass word!",
			expected:   []byte("pass word!"),
			fromBase64: false,
		},
		{
			name:       "four alphabet characters decode even when meant literally",
			value:      "cafe",
			expected:   []byte{0x71, 0xa7, 0xde},
			fromBase64: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, wasBase64 := DecodeKey(tc.value)

			assert.Equal(t, tc.expected, key)
			assert.Equal(t, tc.fromBase64, wasBase64)
		})
	}
}
