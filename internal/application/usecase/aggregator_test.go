package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diillson/aws-billing-report-go/internal/domain/entity"
	"github.com/diillson/aws-billing-report-go/internal/domain/repository"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCostRepository implementa o CostRepository para os testes do Aggregator.
type fakeCostRepository struct {
	total            float64
	currency         string
	totalErr         error
	byDimension      map[repository.CostDimension][]entity.CostEntry
	dimensionErr     error
	forecast         float64
	forecastCurrency string
	forecastErr      error
}

func (f *fakeCostRepository) GetTotalCost(ctx context.Context, period entity.BillingPeriod) (float64, string, error) {
	return f.total, f.currency, f.totalErr
}

func (f *fakeCostRepository) GetCostByDimension(ctx context.Context, period entity.BillingPeriod, dimension repository.CostDimension) ([]entity.CostEntry, error) {
	if f.dimensionErr != nil {
		return nil, f.dimensionErr
	}
	return f.byDimension[dimension], nil
}

func (f *fakeCostRepository) GetForecast(ctx context.Context, period entity.BillingPeriod) (float64, string, error) {
	return f.forecast, f.forecastCurrency, f.forecastErr
}

var testToday = time.Date(2024, time.February, 15, 12, 0, 0, 0, time.UTC)

func TestAggregateBuildsSnapshot(t *testing.T) {
	repo := &fakeCostRepository{
		total:    1000,
		currency: "USD",
		byDimension: map[repository.CostDimension][]entity.CostEntry{
			repository.DimensionAccount: {
				{Key: "222", Cost: 400},
				{Key: "111", Cost: 600},
			},
			repository.DimensionService: {
				{Key: "Amazon S3", Cost: 100},
				{Key: "Amazon EC2", Cost: 900},
			},
		},
		forecast:         1100,
		forecastCurrency: "USD",
	}

	snapshot, err := NewAggregator(repo, zerolog.Nop()).Aggregate(context.Background(), testToday)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, snapshot.TotalCost)
	assert.Equal(t, "USD", snapshot.Currency)
	assert.Equal(t, "2024-01-01 to 2024-01-31", snapshot.BillingPeriod.String())
	assert.Equal(t, "2024-02-01 to 2024-03-01", snapshot.ForecastPeriod.String())

	require.Len(t, snapshot.AccountBreakdown, 2)
	assert.Equal(t, "111", snapshot.AccountBreakdown[0].Key)
	assert.Equal(t, "222", snapshot.AccountBreakdown[1].Key)

	require.Len(t, snapshot.ServiceBreakdown, 2)
	assert.Equal(t, "Amazon EC2", snapshot.ServiceBreakdown[0].Key)

	assert.InDelta(t, 10.0, snapshot.MoMChangePercent, 0.0001)
}

func TestAggregateSortIsStableAndDescending(t *testing.T) {
	repo := &fakeCostRepository{
		total:    100,
		currency: "USD",
		byDimension: map[repository.CostDimension][]entity.CostEntry{
			repository.DimensionAccount: {
				{Key: "a", Cost: 5},
				{Key: "b", Cost: 10},
				{Key: "c", Cost: 5},
				{Key: "d", Cost: -2},
			},
		},
	}

	snapshot, err := NewAggregator(repo, zerolog.Nop()).Aggregate(context.Background(), testToday)
	require.NoError(t, err)

	keys := make([]string, 0, len(snapshot.AccountBreakdown))
	for _, item := range snapshot.AccountBreakdown {
		keys = append(keys, item.Key)
	}
	// Empate entre "a" e "c" preserva a ordem da API.
	assert.Equal(t, []string{"b", "a", "c", "d"}, keys)

	for i := 1; i < len(snapshot.AccountBreakdown); i++ {
		assert.GreaterOrEqual(t, snapshot.AccountBreakdown[i-1].Cost, snapshot.AccountBreakdown[i].Cost)
	}
}

func TestAggregateTotalCostFailureIsFatal(t *testing.T) {
	repo := &fakeCostRepository{totalErr: errors.New("throttled")}

	_, err := NewAggregator(repo, zerolog.Nop()).Aggregate(context.Background(), testToday)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get total cost")
}

func TestAggregateForecastFailureFallsBack(t *testing.T) {
	repo := &fakeCostRepository{
		total:       500,
		currency:    "EUR",
		forecastErr: errors.New("forecast unavailable"),
	}

	snapshot, err := NewAggregator(repo, zerolog.Nop()).Aggregate(context.Background(), testToday)
	require.NoError(t, err)

	assert.Zero(t, snapshot.ForecastCost)
	assert.Equal(t, "EUR", snapshot.ForecastCurrency)
	assert.Zero(t, snapshot.MoMChangePercent)
}

func TestAggregateBreakdownFailureIsDegradable(t *testing.T) {
	repo := &fakeCostRepository{
		total:        500,
		currency:     "USD",
		dimensionErr: errors.New("access denied"),
	}

	snapshot, err := NewAggregator(repo, zerolog.Nop()).Aggregate(context.Background(), testToday)
	require.NoError(t, err)
	assert.Empty(t, snapshot.AccountBreakdown)
	assert.Empty(t, snapshot.ServiceBreakdown)
}

func TestAggregateZeroTotalGuardsPercentage(t *testing.T) {
	repo := &fakeCostRepository{
		total:            0,
		currency:         "USD",
		forecast:         50,
		forecastCurrency: "USD",
	}

	snapshot, err := NewAggregator(repo, zerolog.Nop()).Aggregate(context.Background(), testToday)
	require.NoError(t, err)
	assert.Zero(t, snapshot.MoMChangePercent)
}

func TestAggregateFillsEntryCurrency(t *testing.T) {
	repo := &fakeCostRepository{
		total:    100,
		currency: "USD",
		byDimension: map[repository.CostDimension][]entity.CostEntry{
			repository.DimensionService: {{Key: "AWS Lambda", Cost: 100}},
		},
	}

	snapshot, err := NewAggregator(repo, zerolog.Nop()).Aggregate(context.Background(), testToday)
	require.NoError(t, err)
	require.Len(t, snapshot.ServiceBreakdown, 1)
	assert.Equal(t, "USD", snapshot.ServiceBreakdown[0].Currency)
}
