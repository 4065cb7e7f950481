package cli

import (
	"context"
	"errors"

	"github.com/diillson/aws-billing-report-go/internal/domain/entity"
	"github.com/diillson/aws-billing-report-go/internal/domain/repository"
	"github.com/diillson/aws-billing-report-go/internal/shared/types"
	"github.com/diillson/aws-billing-report-go/pkg/version"
	"github.com/spf13/cobra"
)

// RunnerFunc executa uma geração de relatório com a configuração resolvida.
// O main injeta aqui a composição dos adapters AWS/Slack (composition root).
type RunnerFunc func(ctx context.Context, cfg *types.Config) (entity.RunResult, error)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
	runner     RunnerFunc
	version    string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, configRepo repository.ConfigRepository, consoleImpl types.ConsoleInterface) *CLIApp {
	app := &CLIApp{
		configRepo: configRepo,
		console:    consoleImpl,
		version:    versionStr,
	}

	rootCmd := &cobra.Command{
		Use:     "aws-billing-report",
		Short:   "AWS Billing Report CLI",
		Version: version.FormatVersion(),
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS Billing Report version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile to use")
	rootCmd.PersistentFlags().StringP("region", "r", "", "AWS region for the S3 and Organizations clients")
	rootCmd.PersistentFlags().StringP("bucket", "b", "", "S3 bucket to store the PDF report")
	rootCmd.PersistentFlags().String("key-prefix", "", "S3 key prefix for the monthly report folders")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Base name for the report file (without extension)")
	rootCmd.PersistentFlags().String("org-label", "", "Organization label shown on the report, skipping the Organizations lookup")
	rootCmd.PersistentFlags().String("slack-webhook-url", "", "Slack webhook URL for the digest message")
	rootCmd.PersistentFlags().String("slack-token", "", "Slack API token for direct PDF upload")
	rootCmd.PersistentFlags().String("slack-channel", "", "Slack channel ID for the PDF upload")

	app.rootCmd = rootCmd
	return app
}

// SetRunner define a função que executa o pipeline do relatório.
func (app *CLIApp) SetRunner(runner RunnerFunc) {
	app.runner = runner
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// resolveConfig monta a configuração final: arquivo -> ambiente -> flags.
func (app *CLIApp) resolveConfig() (*types.Config, error) {
	flags := app.rootCmd.Flags()

	cfg := &types.Config{}
	if configFile, _ := flags.GetString("config-file"); configFile != "" {
		loaded, err := app.configRepo.LoadConfigFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnvOverrides()

	flagOverrides := map[string]*string{
		"profile":           &cfg.Profile,
		"region":            &cfg.Region,
		"bucket":            &cfg.S3Bucket,
		"key-prefix":        &cfg.S3KeyPrefix,
		"report-name":       &cfg.ReportName,
		"org-label":         &cfg.OrganizationLabel,
		"slack-webhook-url": &cfg.SlackWebhookURL,
		"slack-token":       &cfg.SlackAPIToken,
		"slack-channel":     &cfg.SlackChannelID,
	}
	for name, field := range flagOverrides {
		if value, _ := flags.GetString(name); value != "" {
			*field = value
		}
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	cfg, err := app.resolveConfig()
	if err != nil {
		return err
	}

	status := app.console.Status("Generating AWS billing report...")
	result, err := app.runner(cmd.Context(), cfg)
	status.Stop()

	if err != nil {
		if errors.Is(err, types.ErrNoBillingData) {
			app.console.LogWarning("No billing data available for %s", result.BillingPeriod)
			return nil
		}
		return err
	}

	app.console.LogSuccess("Billing report generated for %s (%s)", result.OrganizationName, result.OrganizationID)
	app.console.LogInfo("Billing period: %s", result.BillingPeriod)
	app.console.LogInfo("Total cost: %s %.2f", result.Currency, result.TotalCost)
	if result.ReportURL != "" {
		app.console.LogInfo("Report available at: %s", result.ReportURL)
	}
	if result.NotificationSent {
		app.console.LogSuccess("Slack notification sent")
	} else {
		app.console.LogWarning("Slack notification was not sent")
	}

	return nil
}
