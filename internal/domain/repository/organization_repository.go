package repository

import (
	"context"

	"github.com/diillson/aws-billing-report-go/internal/domain/entity"
)

// OrganizationRepository defines the interface for identity and account
// directory lookups. Falhas aqui nunca abortam a execução; o chamador degrada
// para valores de placeholder.
type OrganizationRepository interface {
	// GetOrganizationInfo resolve o ID e o nome da organização.
	GetOrganizationInfo(ctx context.Context) (entity.OrganizationInfo, error)

	// GetAccountDirectory resolve os nomes de todas as contas conhecidas.
	GetAccountDirectory(ctx context.Context) (entity.AccountDirectory, error)
}
