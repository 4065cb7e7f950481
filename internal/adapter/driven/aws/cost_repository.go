package aws

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/diillson/aws-billing-report-go/internal/domain/entity"
	"github.com/diillson/aws-billing-report-go/internal/domain/repository"
)

// CostRepositoryImpl implementa o CostRepository sobre o Cost Explorer.
type CostRepositoryImpl struct {
	client *costexplorer.Client
}

// NewCostRepository cria uma nova implementação do CostRepository.
// O Cost Explorer só atende em us-east-1, independente da região configurada.
func NewCostRepository(cfg aws.Config) repository.CostRepository {
	regional := cfg.Copy()
	regional.Region = "us-east-1"
	return &CostRepositoryImpl{client: costexplorer.NewFromConfig(regional)}
}

// GetTotalCost busca o custo total (UnblendedCost) do período.
func (r *CostRepositoryImpl) GetTotalCost(ctx context.Context, period entity.BillingPeriod) (float64, string, error) {
	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod:  dateInterval(period),
		Granularity: ceTypes.GranularityMonthly,
		Metrics:     []string{"UnblendedCost"},
	}

	result, err := r.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return 0, "", fmt.Errorf("error getting total cost: %w", err)
	}

	if len(result.ResultsByTime) == 0 || result.ResultsByTime[0].Total == nil {
		return 0, "USD", nil
	}

	val, ok := result.ResultsByTime[0].Total["UnblendedCost"]
	if !ok {
		return 0, "USD", nil
	}

	amount, _ := strconv.ParseFloat(aws.ToString(val.Amount), 64)
	currency := aws.ToString(val.Unit)
	if currency == "" {
		currency = "USD"
	}
	return amount, currency, nil
}

// GetCostByDimension busca o custo agrupado por conta ou serviço, na ordem
// retornada pela API.
func (r *CostRepositoryImpl) GetCostByDimension(ctx context.Context, period entity.BillingPeriod, dimension repository.CostDimension) ([]entity.CostEntry, error) {
	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod:  dateInterval(period),
		Granularity: ceTypes.GranularityMonthly,
		Metrics:     []string{"UnblendedCost"},
		GroupBy: []ceTypes.GroupDefinition{
			{Type: ceTypes.GroupDefinitionTypeDimension, Key: aws.String(string(dimension))},
		},
	}

	result, err := r.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("error getting cost by %s: %w", dimension, err)
	}

	var entries []entity.CostEntry
	for _, resultByTime := range result.ResultsByTime {
		for _, group := range resultByTime.Groups {
			if len(group.Keys) == 0 {
				continue
			}
			metric, ok := group.Metrics["UnblendedCost"]
			if !ok {
				continue
			}
			cost, _ := strconv.ParseFloat(aws.ToString(metric.Amount), 64)
			entries = append(entries, entity.CostEntry{
				Key:      group.Keys[0],
				Cost:     cost,
				Currency: aws.ToString(metric.Unit),
			})
		}
	}

	return entries, nil
}

// GetForecast busca a previsão de custo amortizado para o período.
func (r *CostRepositoryImpl) GetForecast(ctx context.Context, period entity.BillingPeriod) (float64, string, error) {
	input := &costexplorer.GetCostForecastInput{
		TimePeriod:  dateInterval(period),
		Granularity: ceTypes.GranularityMonthly,
		Metric:      ceTypes.MetricAmortizedCost,
	}

	result, err := r.client.GetCostForecast(ctx, input)
	if err != nil {
		return 0, "", fmt.Errorf("error getting cost forecast: %w", err)
	}

	if result.Total == nil {
		return 0, "USD", nil
	}

	amount, _ := strconv.ParseFloat(aws.ToString(result.Total.Amount), 64)
	currency := aws.ToString(result.Total.Unit)
	if currency == "" {
		currency = "USD"
	}
	return amount, currency, nil
}

func dateInterval(period entity.BillingPeriod) *ceTypes.DateInterval {
	return &ceTypes.DateInterval{
		Start: aws.String(period.Start.Format("2006-01-02")),
		End:   aws.String(period.End.Format("2006-01-02")),
	}
}
