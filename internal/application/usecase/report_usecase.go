package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diillson/aws-billing-report-go/internal/domain/entity"
	"github.com/diillson/aws-billing-report-go/internal/domain/repository"
	"github.com/diillson/aws-billing-report-go/internal/shared/types"
	"github.com/rs/zerolog"
)

const (
	// StatusSuccess indica execução completa (com ou sem degradações).
	StatusSuccess = "success"
	// StatusNoData indica que não havia dados de billing para o período.
	StatusNoData = "no billing data"
)

// ReportUseCase orquestra uma execução completa do relatório: identidade ->
// diretório -> agregação -> renderização -> PDF -> S3 -> digest -> Slack.
// Execução estritamente sequencial; cada chamada externa é tentada uma vez.
type ReportUseCase struct {
	costRepo    repository.CostRepository
	orgRepo     repository.OrganizationRepository
	storageRepo repository.StorageRepository
	notifier    repository.NotificationRepository
	writer      repository.ReportWriter
	cfg         *types.Config
	logger      zerolog.Logger

	// clock é substituível em testes.
	clock func() time.Time
}

// NewReportUseCase cria um novo caso de uso com as dependências injetadas.
func NewReportUseCase(
	costRepo repository.CostRepository,
	orgRepo repository.OrganizationRepository,
	storageRepo repository.StorageRepository,
	notifier repository.NotificationRepository,
	writer repository.ReportWriter,
	cfg *types.Config,
	logger zerolog.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		costRepo:    costRepo,
		orgRepo:     orgRepo,
		storageRepo: storageRepo,
		notifier:    notifier,
		writer:      writer,
		cfg:         cfg,
		logger:      logger,
		clock:       time.Now,
	}
}

// Run executa o pipeline completo e retorna o resumo estruturado da execução.
func (uc *ReportUseCase) Run(ctx context.Context) (entity.RunResult, error) {
	uc.logger.Info().Msg("starting AWS billing report generation")
	now := uc.clock().UTC()

	org := uc.resolveOrganization(ctx)
	directory := uc.resolveDirectory(ctx)

	snapshot, err := NewAggregator(uc.costRepo, uc.logger).Aggregate(ctx, now)
	if err != nil {
		return entity.RunResult{Status: StatusNoData}, fmt.Errorf("aggregating billing data: %w", err)
	}

	if snapshot.TotalCost == 0 && len(snapshot.AccountBreakdown) == 0 {
		uc.logger.Warn().Msg("no billing data available for this period")
		return entity.RunResult{
			Status:           StatusNoData,
			OrganizationID:   org.ID,
			OrganizationName: org.Name,
			BillingPeriod:    snapshot.BillingPeriod.String(),
		}, types.ErrNoBillingData
	}

	doc := RenderReport(snapshot, org, directory, now)
	pdfBytes, err := uc.writer.Write(doc)
	if err != nil {
		return entity.RunResult{Status: StatusNoData}, fmt.Errorf("rendering PDF report: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.pdf", uc.cfg.ReportName, now.Format("20060102_150405"))
	reportURL := uc.uploadReport(ctx, pdfBytes, filename)

	digest := FormatDigest(snapshot, directory)
	notificationSent := uc.sendNotification(ctx, digest, pdfBytes, filename, reportURL)

	uc.logger.Info().
		Str("billing_period", snapshot.BillingPeriod.String()).
		Float64("total_cost", snapshot.TotalCost).
		Bool("notification_sent", notificationSent).
		Msg("billing report generated")

	return entity.RunResult{
		Status:           StatusSuccess,
		OrganizationID:   org.ID,
		OrganizationName: org.Name,
		TotalCost:        snapshot.TotalCost,
		Currency:         snapshot.Currency,
		BillingPeriod:    snapshot.BillingPeriod.String(),
		ReportURL:        reportURL,
		NotificationSent: notificationSent,
	}, nil
}

// resolveOrganization busca a identidade da organização; falha degrada para
// placeholders e nunca aborta a execução.
func (uc *ReportUseCase) resolveOrganization(ctx context.Context) entity.OrganizationInfo {
	if uc.cfg.OrganizationLabel != "" {
		return entity.OrganizationInfo{ID: uc.cfg.OrganizationLabel, Name: uc.cfg.OrganizationLabel}
	}

	org, err := uc.orgRepo.GetOrganizationInfo(ctx)
	if err != nil {
		uc.logger.Warn().Err(err).
			Str("operation", "get_organization_info").
			Msg("could not retrieve organization details")
		return entity.OrganizationInfo{ID: entity.UnknownAccountName, Name: "AWS Organization"}
	}
	return org
}

// resolveDirectory busca os nomes das contas; falha degrada para diretório vazio.
func (uc *ReportUseCase) resolveDirectory(ctx context.Context) entity.AccountDirectory {
	directory, err := uc.orgRepo.GetAccountDirectory(ctx)
	if err != nil {
		uc.logger.Warn().Err(err).
			Str("operation", "get_account_directory").
			Msg("could not retrieve account names")
		return entity.AccountDirectory{}
	}
	uc.logger.Info().Int("accounts", len(directory)).Msg("retrieved account names")
	return directory
}

// uploadReport persiste o PDF no object store; falha é logada e a execução
// continua sem link compartilhável.
func (uc *ReportUseCase) uploadReport(ctx context.Context, pdfBytes []byte, filename string) string {
	url, err := uc.storageRepo.PutReport(ctx, pdfBytes, filename)
	if err != nil {
		uc.logger.Error().Err(err).
			Str("operation", "put_report").
			Str("filename", filename).
			Msg("failed to upload PDF report")
		return ""
	}
	uc.logger.Info().Str("url", url).Msg("report uploaded")
	return url
}

// sendNotification envia o digest ao canal. Tenta anexar o PDF quando o
// transporte suporta; em caso de falha cai para mensagem de texto com o link.
func (uc *ReportUseCase) sendNotification(ctx context.Context, digest string, pdfBytes []byte, filename, reportURL string) bool {
	if uc.notifier.CanAttachFiles() {
		err := uc.notifier.PostMessageWithAttachment(ctx, digest, pdfBytes, filename)
		if err == nil {
			uc.logger.Info().Msg("message and PDF sent to Slack")
			return true
		}
		uc.logger.Error().Err(err).
			Str("operation", "post_message_with_attachment").
			Msg("failed to upload PDF to Slack, falling back to text message")
	}

	message := digest
	if reportURL != "" {
		message += fmt.Sprintf("\n\n*📊 <%s|Click here to download the PDF Report>*", reportURL)
	}

	if err := uc.notifier.PostMessage(ctx, message); err != nil {
		if errors.Is(err, types.ErrNoWebhookConfigured) {
			// Configuração ausente não é erro de execução: só este passo é pulado.
			uc.logger.Warn().Msg("SLACK_WEBHOOK_URL is not set, skipping notification")
		} else {
			uc.logger.Error().Err(err).
				Str("operation", "post_message").
				Msg("failed to send message to Slack")
		}
		return false
	}

	uc.logger.Info().Msg("message sent to Slack")
	return true
}
