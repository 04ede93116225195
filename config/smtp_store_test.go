package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"go-email-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefaults() config.SMTPSettings {
	return config.SMTPSettings{
		Server:      "smtp.example.com",
		Port:        "587",
		Username:    "mailer@example.com",
		Password:    "secret",
		SenderEmail: "info@ddarchitecture.com",
	}
}

func TestSMTPStore(t *testing.T) {
	t.Run("Should seed from defaults when no file exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "smtp_config.json")
		store, err := config.NewSMTPStore(path, testDefaults())

		require.NoError(t, err)
		assert.Equal(t, testDefaults(), store.Current())
		assert.True(t, store.IsConfigured())
	})

	t.Run("Should persist updates and reload them over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "smtp_config.json")
		store, err := config.NewSMTPStore(path, testDefaults())
		require.NoError(t, err)

		updated := config.SMTPSettings{
			Server:      "smtp-relay.brevo.com",
			Port:        "2525",
			Username:    "relay@example.com",
			Password:    "newsecret",
			SenderEmail: "hello@ddarchitecture.com",
		}
		require.NoError(t, store.Update(updated))
		assert.Equal(t, updated, store.Current())

		// A fresh store (new process) must see the persisted values, not
		// the environment defaults.
		reopened, err := config.NewSMTPStore(path, testDefaults())
		require.NoError(t, err)
		assert.Equal(t, updated, reopened.Current())
	})

	t.Run("Should leave no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "smtp_config.json")
		store, err := config.NewSMTPStore(path, testDefaults())
		require.NoError(t, err)

		require.NoError(t, store.Update(testDefaults()))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "smtp_config.json", entries[0].Name())
	})

	t.Run("Should reject a corrupt settings file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "smtp_config.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := config.NewSMTPStore(path, testDefaults())
		assert.Error(t, err)
	})

	t.Run("Should not be configured without credentials", func(t *testing.T) {
		defaults := testDefaults()
		defaults.Username = ""
		defaults.Password = ""

		path := filepath.Join(t.TempDir(), "smtp_config.json")
		store, err := config.NewSMTPStore(path, defaults)
		require.NoError(t, err)
		assert.False(t, store.IsConfigured())
	})
}

func TestMaskUsername(t *testing.T) {
	assert.Equal(t, "", config.MaskUsername(""))
	assert.Equal(t, "**", config.MaskUsername("ab"))
	assert.Equal(t, "***", config.MaskUsername("abc"))
	assert.Equal(t, "mai***", config.MaskUsername("mailer@example.com"))
}
