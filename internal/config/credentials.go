package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ehrlich-b/agentstream/internal/agenterr"
	"github.com/spf13/viper"
)

// APIKeyEnv is the credential variable, read from the environment first and
// then from the local settings file.
const APIKeyEnv = "CURSOR_API_KEY"

// DefaultEnvFile is the local settings file consulted when the environment
// does not carry the credential.
const DefaultEnvFile = ".env"

// ResolveAPIKey returns the long-lived API key. envFile is a dotenv-style
// settings file; it is optional and may not exist.
func ResolveAPIKey(envFile string) (string, error) {
	if key := strings.TrimSpace(os.Getenv(APIKeyEnv)); key != "" {
		return key, nil
	}

	if envFile != "" {
		key, err := readEnvFile(envFile)
		if err != nil {
			return "", err
		}
		if key != "" {
			return key, nil
		}
	}

	return "", fmt.Errorf("%w: %s not found in environment or %s", agenterr.ErrConfig, APIKeyEnv, envFileLabel(envFile))
}

func readEnvFile(path string) (string, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return "", nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("%w: read settings file %s: %v", agenterr.ErrConfig, path, err)
	}
	return strings.TrimSpace(v.GetString(APIKeyEnv)), nil
}

func envFileLabel(path string) string {
	if path == "" {
		return "settings file (none configured)"
	}
	return path
}
