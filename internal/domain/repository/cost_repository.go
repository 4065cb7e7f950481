package repository

import (
	"context"

	"github.com/diillson/aws-billing-report-go/internal/domain/entity"
)

// CostDimension é a dimensão de agrupamento aceita pela API de custos.
type CostDimension string

const (
	DimensionAccount CostDimension = "LINKED_ACCOUNT"
	DimensionService CostDimension = "SERVICE"
)

// CostRepository defines the interface for the cost-analytics API.
type CostRepository interface {
	// GetTotalCost retorna o custo total (unblended) e a moeda do período.
	GetTotalCost(ctx context.Context, period entity.BillingPeriod) (float64, string, error)

	// GetCostByDimension retorna o custo agrupado pela dimensão, na ordem da API.
	GetCostByDimension(ctx context.Context, period entity.BillingPeriod, dimension CostDimension) ([]entity.CostEntry, error)

	// GetForecast retorna a previsão de custo e a moeda para o período.
	GetForecast(ctx context.Context, period entity.BillingPeriod) (float64, string, error)
}
