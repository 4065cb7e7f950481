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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFileTOML(t *testing.T) {
	path := writeConfigFile(t, "config.toml", `
region = "us-east-1"
s3_bucket = "acme-billing-reports"
slack_channel_id = "C0123456789"
`)

	cfg, err := NewConfigRepository().LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "acme-billing-reports", cfg.S3Bucket)
	assert.Equal(t, "C0123456789", cfg.SlackChannelID)
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", `
region: eu-west-1
report_name: monthly_costs
slack_webhook_url: https://hooks.slack.com/services/T/B/x
`)

	cfg, err := NewConfigRepository().LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, "monthly_costs", cfg.ReportName)
	assert.Equal(t, "https://hooks.slack.com/services/T/B/x", cfg.SlackWebhookURL)
}

func TestLoadConfigFileJSON(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{
  "profile": "billing",
  "s3_key_prefix": "reports"
}`)

	cfg, err := NewConfigRepository().LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "billing", cfg.Profile)
	assert.Equal(t, "reports", cfg.S3KeyPrefix)
}

func TestLoadConfigFileUnsupportedExtension(t *testing.T) {
	path := writeConfigFile(t, "config.ini", "region = us-east-1")

	_, err := NewConfigRepository().LoadConfigFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config file format")
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := NewConfigRepository().LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error accessing config file")
}

func TestLoadConfigFileDirectory(t *testing.T) {
	_, err := NewConfigRepository().LoadConfigFile(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}
