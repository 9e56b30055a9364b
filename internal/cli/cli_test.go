package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
env: "test"
database: {PG_USER: u, PG_PASSWORD: p, PG_DBNAME: d}
security: {JWT_KEY: k}
`

func writeConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalConfig), 0o600))

	return path
}

// runCommand executes the root command against a mocked database.
func runCommand(t *testing.T, setup func(mock sqlmock.Sqlmock), args ...string) (string, error) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	setup(mock)

	opts := &RootOptions{
		Open: func(cfg *config.Config) (*repository.Repository, error) {
			return repository.NewWithDB(db), nil
		},
	}

	buf := &bytes.Buffer{}
	cmd := newRootCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", writeConfig(t)}, args...))

	err = cmd.Execute()

	require.NoError(t, mock.ExpectationsWereMet())

	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "storefrontctl", cmd.Use)

	for _, name := range []string{"migrate", "promote-admin", "stats"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
}

func TestInvalidFormat(t *testing.T) {
	_, err := runCommand(t, func(sqlmock.Sqlmock) {}, "--format", "yaml", "stats")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "yaml"`)
}

func TestMissingConfigPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"migrate"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config path is not set")
}

func TestMigrate(t *testing.T) {
	out, err := runCommand(t, func(mock sqlmock.Sqlmock) {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS products").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectClose()
	}, "migrate")

	require.NoError(t, err)
	assert.Contains(t, out, "Schema is up to date")
}

func TestPromoteAdmin(t *testing.T) {
	t.Run("Grant", func(t *testing.T) {
		out, err := runCommand(t, func(mock sqlmock.Sqlmock) {
			mock.ExpectExec("UPDATE users SET is_admin").
				WithArgs(true, "ana@example.com").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectClose()
		}, "promote-admin", "  Ana@Example.com ")

		require.NoError(t, err)
		assert.Contains(t, out, "granted to ana@example.com")
	})

	t.Run("Revoke as JSON", func(t *testing.T) {
		out, err := runCommand(t, func(mock sqlmock.Sqlmock) {
			mock.ExpectExec("UPDATE users SET is_admin").
				WithArgs(false, "ana@example.com").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectClose()
		}, "--format", "json", "promote-admin", "--revoke", "ana@example.com")

		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &body))
		assert.Equal(t, false, body["is_admin"])
	})

	t.Run("Unknown email", func(t *testing.T) {
		_, err := runCommand(t, func(mock sqlmock.Sqlmock) {
			mock.ExpectExec("UPDATE users SET is_admin").
				WithArgs(true, "ghost@example.com").
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectClose()
		}, "promote-admin", "ghost@example.com")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no user registered")
	})

	t.Run("Missing argument", func(t *testing.T) {
		_, err := runCommand(t, func(sqlmock.Sqlmock) {}, "promote-admin")

		require.Error(t, err)
	})
}

func TestStats(t *testing.T) {
	expectStats := func(mock sqlmock.Sqlmock) {
		mock.ExpectQuery("FROM orders").
			WillReturnRows(sqlmock.NewRows([]string{"revenue", "count"}).AddRow("125.50", 3))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM products").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
		mock.ExpectClose()
	}

	t.Run("Text", func(t *testing.T) {
		out, err := runCommand(t, expectStats, "stats")

		require.NoError(t, err)
		assert.Contains(t, out, "Revenue:  125.50")
		assert.Contains(t, out, "Orders:   3")
		assert.Contains(t, out, "Products: 12")
		assert.Contains(t, out, "Users:    4")
	})

	t.Run("JSON", func(t *testing.T) {
		out, err := runCommand(t, expectStats, "--format", "json", "stats")

		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &body))
		assert.Equal(t, "125.5", body["total_revenue"])
		assert.EqualValues(t, 12, body["total_products"])
	})
}
