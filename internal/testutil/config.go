package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/qolzam/jobly/internal/platform/config"
	"github.com/stretchr/testify/require"
	"github.com/subosito/gotenv"
)

// envTestFile is looked up from the package directory upwards.
const envTestFile = ".env.test"

// TestEnv returns the values of the nearest .env.test, or an empty map.
func TestEnv(t *testing.T) map[string]string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		path := filepath.Join(dir, envTestFile)
		if f, err := os.Open(path); err == nil {
			env, err := gotenv.StrictParse(f)
			f.Close()
			require.NoError(t, err, "invalid %s", path)
			return env
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return map[string]string{}
		}
		dir = parent
	}
}

// LoadTestConfig builds a Config from .env.test, overrides, and a fresh JWT key pair.
// It returns the private key so tests can mint tokens the config will accept.
func LoadTestConfig(t *testing.T, overrides map[string]string) (*config.Config, string) {
	t.Helper()

	env := TestEnv(t)
	pub, priv := GenerateECDSAKeyPairPEM(t)
	env["JWT_PUBLIC_KEY"] = pub
	env["JWT_PRIVATE_KEY"] = priv
	if _, ok := env["BCRYPT_WORK_FACTOR"]; !ok {
		env["BCRYPT_WORK_FACTOR"] = "4"
	}
	for k, v := range overrides {
		env[k] = v
	}

	cfg, err := config.LoadFromMap(env)
	require.NoError(t, err)
	return cfg, priv
}

// ShouldRunDatabaseTests reports whether integration tests against PostgreSQL are enabled.
func ShouldRunDatabaseTests() bool {
	return os.Getenv("RUN_DB_TESTS") == "1"
}
