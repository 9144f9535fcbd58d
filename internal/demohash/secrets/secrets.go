// Package secrets reads the locally configured pepper and HMAC key for the
// demohash CLI. Values come from an optional YAML config file and from
// DEMOHASH_* environment variables, with the environment taking precedence.
// Nothing in this package ever writes or prints a secret.
package secrets

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"
)

const (
	configName = ".demohash"
	envPrefix  = "demohash"

	pepperName  = "pepper"
	hmacKeyName = "hmac_key"
)

// Source is a read-only view of the local secret configuration, backed by
// github.com/spf13/viper.
type Source struct {
	v *viper.Viper
}

// Load builds a Source. With an empty configFile it looks for
// .demohash.yaml in the home directory and then the working directory; a
// missing file is fine because every value can also come from the
// environment. An explicitly named configFile must exist.
func Load(configFile string) (*Source, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		slog.Debug("loaded config", "file", v.ConfigFileUsed())
	}

	return &Source{v: v}, nil
}

// Pepper returns the configured pepper as raw UTF-8 bytes, and whether one
// is configured at all.
func (s *Source) Pepper() ([]byte, bool) {
	value := s.v.GetString(pepperName)
	if value == "" {
		return nil, false
	}
	return []byte(value), true
}

// HMACKey returns the configured MAC key, decoded via DecodeKey, and
// whether one is configured at all.
func (s *Source) HMACKey() ([]byte, bool) {
	value := s.v.GetString(hmacKeyName)
	if value == "" {
		return nil, false
	}

	key, wasBase64 := DecodeKey(value)
	if !wasBase64 {
		slog.Warn("hmac key is not valid base64, using its raw UTF-8 bytes")
	}
	return key, true
}

// DecodeKey interprets a configured key string: strict base64 first, with
// the literal UTF-8 bytes as the fallback. The second return reports
// whether the base64 decoding succeeded, so callers can surface the
// ambiguity instead of resolving it silently.
func DecodeKey(value string) ([]byte, bool) {
	if decoded, err := base64.StdEncoding.DecodeString(value); err == nil {
		return decoded, true
	}
	return []byte(value), false
}
