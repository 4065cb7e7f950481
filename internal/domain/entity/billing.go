package entity

import (
	"fmt"
	"time"
)

// UnknownAccountName é o nome exibido quando o diretório não conhece a conta.
const UnknownAccountName = "Unknown"

// BillingPeriod é um intervalo fechado de datas sobre o qual os custos são agregados.
type BillingPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// String formata o período como "YYYY-MM-DD to YYYY-MM-DD".
func (p BillingPeriod) String() string {
	return fmt.Sprintf("%s to %s", p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
}

// CostEntry represents a cost amount for a single dimension key
// (a linked account ID or an AWS service name).
type CostEntry struct {
	Key      string  `json:"key"`
	Cost     float64 `json:"cost"`
	Currency string  `json:"currency"`
}

// BillingSnapshot contains all billing information gathered for one run.
// Os breakdowns estão sempre ordenados por custo decrescente.
type BillingSnapshot struct {
	TotalCost        float64       `json:"total_cost"`
	Currency         string        `json:"currency"`
	AccountBreakdown []CostEntry   `json:"account_breakdown"`
	ServiceBreakdown []CostEntry   `json:"service_breakdown"`
	ForecastCost     float64       `json:"forecast_cost"`
	ForecastCurrency string        `json:"forecast_currency"`
	MoMChangePercent float64       `json:"mom_change_percent"`
	BillingPeriod    BillingPeriod `json:"billing_period"`
	ForecastPeriod   BillingPeriod `json:"forecast_period"`
}

// AccountDirectory mapeia IDs de conta para nomes de exibição.
type AccountDirectory map[string]string

// NameFor resolve o nome de exibição de uma conta, com fallback para "Unknown".
func (d AccountDirectory) NameFor(accountID string) string {
	if name, ok := d[accountID]; ok && name != "" {
		return name
	}
	return UnknownAccountName
}

// OrganizationInfo identifica a organização para a qual o relatório é gerado.
type OrganizationInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RunResult é o resumo estruturado retornado ao gatilho da execução.
type RunResult struct {
	Status           string  `json:"status"`
	OrganizationID   string  `json:"organization_id"`
	OrganizationName string  `json:"organization_name"`
	TotalCost        float64 `json:"total_cost"`
	Currency         string  `json:"currency"`
	BillingPeriod    string  `json:"billing_period"`
	ReportURL        string  `json:"pdf_report_url,omitempty"`
	NotificationSent bool    `json:"slack_message_sent"`
}
