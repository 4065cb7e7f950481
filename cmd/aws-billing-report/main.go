package main

import (
	"context"
	"fmt"
	"os"

	awsadapter "github.com/diillson/aws-billing-report-go/internal/adapter/driven/aws"
	"github.com/diillson/aws-billing-report-go/internal/adapter/driven/config"
	"github.com/diillson/aws-billing-report-go/internal/adapter/driven/export"
	slackadapter "github.com/diillson/aws-billing-report-go/internal/adapter/driven/slack"
	"github.com/diillson/aws-billing-report-go/internal/adapter/driving/cli"
	lambdaadapter "github.com/diillson/aws-billing-report-go/internal/adapter/driving/lambda"
	"github.com/diillson/aws-billing-report-go/internal/application/usecase"
	"github.com/diillson/aws-billing-report-go/internal/domain/entity"
	"github.com/diillson/aws-billing-report-go/internal/shared/types"
	"github.com/diillson/aws-billing-report-go/pkg/console"
	"github.com/diillson/aws-billing-report-go/pkg/version"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Dentro do runtime Lambda não há CLI: a configuração vem do ambiente
	// e o handler atende os gatilhos (SNS/EventBridge) até o shutdown.
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		cfg := &types.Config{}
		cfg.ApplyEnvOverrides()
		cfg.ApplyDefaults()

		useCase, err := wireUseCase(context.Background(), cfg, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize billing report")
		}
		lambdaadapter.NewHandler(useCase, logger).Start()
		return
	}

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version, config.NewConfigRepository(), console.NewConsole())
	app.SetRunner(func(ctx context.Context, cfg *types.Config) (entity.RunResult, error) {
		useCase, err := wireUseCase(ctx, cfg, logger)
		if err != nil {
			return entity.RunResult{}, err
		}
		return useCase.Run(ctx)
	})

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// wireUseCase monta os adapters driven e o caso de uso (composition root).
func wireUseCase(ctx context.Context, cfg *types.Config, logger zerolog.Logger) (*usecase.ReportUseCase, error) {
	awsCfg, err := awsadapter.LoadConfig(ctx, cfg.Profile, cfg.Region)
	if err != nil {
		return nil, err
	}

	return usecase.NewReportUseCase(
		awsadapter.NewCostRepository(awsCfg),
		awsadapter.NewOrganizationRepository(awsCfg, logger),
		awsadapter.NewStorageRepository(awsCfg, cfg.S3Bucket, cfg.S3KeyPrefix, logger),
		slackadapter.NewNotificationRepository(cfg.SlackWebhookURL, cfg.SlackAPIToken, cfg.SlackChannelID, logger),
		export.NewPDFWriter(),
		cfg,
		logger,
	), nil
}
