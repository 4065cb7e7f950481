package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/diillson/aws-billing-report-go/internal/domain/entity"
	"github.com/diillson/aws-billing-report-go/internal/domain/repository"
	"github.com/rs/zerolog"
)

// amountResult carrega o valor de uma busca degradável ou a marca de
// indisponibilidade; o Aggregator decide o default substituto em um só lugar.
type amountResult struct {
	Amount    float64
	Currency  string
	Available bool
}

// Aggregator monta um BillingSnapshot a partir da API de custos.
type Aggregator struct {
	costRepo repository.CostRepository
	logger   zerolog.Logger
}

// NewAggregator cria um novo Aggregator.
func NewAggregator(costRepo repository.CostRepository, logger zerolog.Logger) *Aggregator {
	return &Aggregator{costRepo: costRepo, logger: logger}
}

// Aggregate busca total, breakdowns e previsão e retorna o snapshot
// normalizado. Apenas a busca do custo total é fatal; as demais degradam
// para valores vazios/zero e a execução continua.
func (a *Aggregator) Aggregate(ctx context.Context, today time.Time) (entity.BillingSnapshot, error) {
	billingPeriod := entity.LastFullMonth(today)
	forecastPeriod := entity.CurrentMonthToDate(today)

	a.logger.Info().
		Str("start", billingPeriod.Start.Format("2006-01-02")).
		Str("end", billingPeriod.End.Format("2006-01-02")).
		Msg("fetching billing data")

	totalCost, currency, err := a.costRepo.GetTotalCost(ctx, billingPeriod)
	if err != nil {
		return entity.BillingSnapshot{}, fmt.Errorf("failed to get total cost: %w", err)
	}

	snapshot := entity.BillingSnapshot{
		TotalCost:        totalCost,
		Currency:         currency,
		AccountBreakdown: a.fetchBreakdown(ctx, billingPeriod, repository.DimensionAccount, currency),
		ServiceBreakdown: a.fetchBreakdown(ctx, billingPeriod, repository.DimensionService, currency),
		BillingPeriod:    billingPeriod,
		ForecastPeriod:   forecastPeriod,
	}

	forecast := a.fetchForecast(ctx, forecastPeriod)
	if forecast.Available {
		snapshot.ForecastCost = forecast.Amount
		snapshot.ForecastCurrency = forecast.Currency
		if totalCost != 0 {
			snapshot.MoMChangePercent = (forecast.Amount - totalCost) / totalCost * 100
		}
	} else {
		// Fallback documentado: previsão zerada na moeda do total.
		snapshot.ForecastCurrency = currency
	}

	return snapshot, nil
}

// fetchBreakdown busca o custo agrupado por uma dimensão. Falha é degradável:
// loga e retorna breakdown vazio.
func (a *Aggregator) fetchBreakdown(ctx context.Context, period entity.BillingPeriod, dimension repository.CostDimension, currency string) []entity.CostEntry {
	entries, err := a.costRepo.GetCostByDimension(ctx, period, dimension)
	if err != nil {
		a.logger.Warn().Err(err).
			Str("operation", "get_cost_by_dimension").
			Str("dimension", string(dimension)).
			Msg("could not get cost breakdown")
		return nil
	}

	for i := range entries {
		if entries[i].Currency == "" {
			entries[i].Currency = currency
		}
	}

	// Ordena por custo decrescente; empates preservam a ordem da API.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Cost > entries[j].Cost
	})

	return entries
}

func (a *Aggregator) fetchForecast(ctx context.Context, period entity.BillingPeriod) amountResult {
	amount, currency, err := a.costRepo.GetForecast(ctx, period)
	if err != nil {
		a.logger.Warn().Err(err).
			Str("operation", "get_cost_forecast").
			Msg("could not get forecast data")
		return amountResult{}
	}
	return amountResult{Amount: amount, Currency: currency, Available: true}
}
