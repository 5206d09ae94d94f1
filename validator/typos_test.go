package validator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainTyposTableShape(t *testing.T) {
	for typo, correction := range DomainTypos {
		assert.Equal(t, strings.ToLower(typo), typo, "keys must be lowercase")
		assert.Equal(t, strings.ToLower(correction), correction, "corrections must be lowercase")
		assert.NotEqual(t, typo, correction)
	}
}

func TestLoadTypoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typos.json")
	content := `{"Examplle.com": "Example.com", "gogle.com": "google.com"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	typos, err := LoadTypoFile(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"examplle.com": "example.com",
		"gogle.com":    "google.com",
	}, typos)
}

func TestLoadTypoFileMissing(t *testing.T) {
	_, err := LoadTypoFile(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Error(t, err)
}

func TestLoadTypoFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typos.json")
	require.NoError(t, os.WriteFile(path, []byte(`["not", "an", "object"]`), 0o600))

	_, err := LoadTypoFile(path)
	assert.Error(t, err)
}
