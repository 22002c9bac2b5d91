package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFileTOML(t *testing.T) {
	path := writeConfigFile(t, "config.toml", `
api_url = "https://api.exemplo.com.br/api"
api_token = "segredo"
location_id = "42"
unit = "Filial Centro"
prepared_by = "Sistema"
report_name = "relatorio-marco"
report_type = ["pdf", "html"]
dir = "/tmp/relatorios"
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.exemplo.com.br/api", cfg.APIURL)
	assert.Equal(t, "segredo", cfg.APIToken)
	assert.Equal(t, "42", cfg.LocationID)
	assert.Equal(t, "Filial Centro", cfg.Unit)
	assert.Equal(t, "Sistema", cfg.PreparedBy)
	assert.Equal(t, "relatorio-marco", cfg.ReportName)
	assert.Equal(t, []string{"pdf", "html"}, cfg.ReportType)
	assert.Equal(t, "/tmp/relatorios", cfg.Dir)
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", `
api_url: https://api.exemplo.com.br/api
unit: Filial Centro
report_type:
  - pdf
  - xlsx
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.exemplo.com.br/api", cfg.APIURL)
	assert.Equal(t, "Filial Centro", cfg.Unit)
	assert.Equal(t, []string{"pdf", "xlsx"}, cfg.ReportType)
}

func TestLoadConfigFileJSON(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{
  "api_url": "https://api.exemplo.com.br/api",
  "report_type": ["json"]
}`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.exemplo.com.br/api", cfg.APIURL)
	assert.Equal(t, []string{"json"}, cfg.ReportType)
}

func TestLoadConfigFileUnsupportedFormat(t *testing.T) {
	path := writeConfigFile(t, "config.ini", "api_url=x")

	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config file format")
}

func TestLoadConfigFileMissing(t *testing.T) {
	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "inexistente.toml"))
	require.Error(t, err)
}

func TestLoadConfigFileDirectory(t *testing.T) {
	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}
