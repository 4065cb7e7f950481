package repository

import "context"

// NotificationRepository defines the interface for the chat transport.
type NotificationRepository interface {
	// PostMessage envia uma mensagem de texto para o canal configurado.
	PostMessage(ctx context.Context, text string) error

	// PostMessageWithAttachment envia a mensagem com o relatório anexado.
	PostMessageWithAttachment(ctx context.Context, text string, file []byte, filename string) error

	// CanAttachFiles indica se o transporte tem credenciais para anexar arquivos.
	CanAttachFiles() bool
}
