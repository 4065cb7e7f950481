package types

import "os"

// Config represents the application configuration that can be loaded from a
// file and overridden by environment variables (Lambda-style deployment).
type Config struct {
	Profile           string `json:"profile" yaml:"profile" toml:"profile"`
	Region            string `json:"region" yaml:"region" toml:"region"`
	S3Bucket          string `json:"s3_bucket" yaml:"s3_bucket" toml:"s3_bucket"`
	S3KeyPrefix       string `json:"s3_key_prefix" yaml:"s3_key_prefix" toml:"s3_key_prefix"`
	ReportName        string `json:"report_name" yaml:"report_name" toml:"report_name"`
	OrganizationLabel string `json:"organization_label" yaml:"organization_label" toml:"organization_label"`
	SlackWebhookURL   string `json:"slack_webhook_url" yaml:"slack_webhook_url" toml:"slack_webhook_url"`
	SlackAPIToken     string `json:"slack_api_token" yaml:"slack_api_token" toml:"slack_api_token"`
	SlackChannelID    string `json:"slack_channel_id" yaml:"slack_channel_id" toml:"slack_channel_id"`
}

// ApplyDefaults preenche os valores padrão para campos não configurados.
func (c *Config) ApplyDefaults() {
	if c.S3KeyPrefix == "" {
		c.S3KeyPrefix = "aws_billing_reports"
	}
	if c.ReportName == "" {
		c.ReportName = "aws_billing_report"
	}
	if c.SlackChannelID == "" {
		c.SlackChannelID = "general"
	}
}

// ApplyEnvOverrides aplica as variáveis de ambiente usadas no deploy Lambda.
// Variáveis definidas têm precedência sobre o arquivo de configuração.
func (c *Config) ApplyEnvOverrides() {
	overrides := map[string]*string{
		"AWS_PROFILE":       &c.Profile,
		"AWS_REGION":        &c.Region,
		"S3_BUCKET":         &c.S3Bucket,
		"S3_KEY_PREFIX":     &c.S3KeyPrefix,
		"SLACK_WEBHOOK_URL": &c.SlackWebhookURL,
		"SLACK_API_TOKEN":   &c.SlackAPIToken,
		"SLACK_CHANNEL_ID":  &c.SlackChannelID,
	}
	for name, field := range overrides {
		if value := os.Getenv(name); value != "" {
			*field = value
		}
	}
}
