package slack

import (
	"bytes"
	"context"
	"fmt"

	"github.com/diillson/aws-billing-report-go/internal/domain/repository"
	"github.com/diillson/aws-billing-report-go/internal/shared/types"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

// NotificationRepositoryImpl implementa o NotificationRepository sobre o
// Slack: webhook para mensagens de texto e a Web API para anexos.
type NotificationRepositoryImpl struct {
	webhookURL string
	channelID  string
	api        *slack.Client
	logger     zerolog.Logger
}

// NewNotificationRepository cria uma nova implementação do NotificationRepository.
// O cliente da Web API só é criado quando há token configurado.
func NewNotificationRepository(webhookURL, apiToken, channelID string, logger zerolog.Logger) repository.NotificationRepository {
	repo := &NotificationRepositoryImpl{
		webhookURL: webhookURL,
		channelID:  channelID,
		logger:     logger,
	}
	if apiToken != "" {
		repo.api = slack.New(apiToken)
	}
	return repo
}

// CanAttachFiles indica se há token e canal para upload direto de arquivos.
func (r *NotificationRepositoryImpl) CanAttachFiles() bool {
	return r.api != nil && r.channelID != ""
}

// PostMessage envia a mensagem pelo webhook configurado.
func (r *NotificationRepositoryImpl) PostMessage(ctx context.Context, text string) error {
	if r.webhookURL == "" {
		return types.ErrNoWebhookConfigured
	}

	if err := slack.PostWebhookContext(ctx, r.webhookURL, &slack.WebhookMessage{Text: text}); err != nil {
		return fmt.Errorf("failed to post Slack webhook message: %w", err)
	}
	return nil
}

// PostMessageWithAttachment sobe o arquivo direto para o canal, usando a
// mensagem como comentário inicial.
func (r *NotificationRepositoryImpl) PostMessageWithAttachment(ctx context.Context, text string, file []byte, filename string) error {
	if !r.CanAttachFiles() {
		return fmt.Errorf("slack file upload is not configured")
	}

	r.logger.Info().Str("channel", r.channelID).Str("filename", filename).Msg("uploading PDF to Slack")

	_, err := r.api.UploadFileV2Context(ctx, slack.UploadFileV2Parameters{
		Reader:         bytes.NewReader(file),
		FileSize:       len(file),
		Filename:       filename,
		Title:          filename,
		InitialComment: text,
		Channel:        r.channelID,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file to Slack: %w", err)
	}
	return nil
}
