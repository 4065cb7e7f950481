package repository

import "context"

// StorageRepository defines the interface for the artifact object store.
type StorageRepository interface {
	// PutReport persiste o relatório sob uma chave particionada por data
	// (<prefix>/<YYYY-MM>/<filename>) e retorna a URL do objeto.
	PutReport(ctx context.Context, data []byte, filename string) (string, error)
}
