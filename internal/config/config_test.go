package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":8080", s.Addr)
	require.Equal(t, "data/demos.json", s.FeedURL)
	require.Equal(t, 12, s.PerPage)
	require.Equal(t, "both", s.FilterPolicy)
	require.Equal(t, []string{"localtop.it", "www.localtop.it"}, s.AllowedHosts)
}

func TestLoadParsesYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	doc := `
base_url: https://staging.localtop.it
per_page: 6
filter_policy: category-clears-query
lead_endpoint: https://script.example/exec
hide_more_when_filtered: true
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://staging.localtop.it", s.BaseURL)
	require.Equal(t, 6, s.PerPage)
	require.Equal(t, "category-clears-query", s.FilterPolicy)
	require.Equal(t, "https://script.example/exec", s.LeadEndpoint)
	require.True(t, s.HideMoreFiltered)
	// untouched fields keep their defaults
	require.Equal(t, "templates", s.TemplatesDir)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("LOCALTOP_LEAD_ENDPOINT", "https://env.example/exec")
	t.Setenv("LOCALTOP_ALLOWED_HOSTS", "localtop.it, beta.localtop.it")

	s, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "https://env.example/exec", s.LeadEndpoint)
	require.Equal(t, []string{"localtop.it", "beta.localtop.it"}, s.AllowedHosts)
}

func TestLoadRejectsUnknownFilterPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("filter_policy: sideways"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidateRecoversBadPerPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("per_page: 0"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 12, s.PerPage)
}

func TestHostAllowed(t *testing.T) {
	s := Defaults()
	require.True(t, s.HostAllowed("localtop.it"))
	require.True(t, s.HostAllowed("WWW.LOCALTOP.IT:443"))
	require.False(t, s.HostAllowed("localhost:8080"))
}
