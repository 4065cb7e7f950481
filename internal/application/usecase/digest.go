package usecase

import (
	"fmt"
	"strings"

	"github.com/diillson/aws-billing-report-go/internal/domain/entity"
)

const (
	digestNameMaxLen  = 12
	maxDigestAccounts = 5
)

// FormatDigest produz o resumo em texto de largura fixa enviado ao canal de
// chat. Função pura do snapshot e do diretório de contas; nenhum I/O.
func FormatDigest(snapshot entity.BillingSnapshot, directory entity.AccountDirectory) string {
	var b strings.Builder

	trendIcon, trendText := digestTrend(snapshot.MoMChangePercent)

	b.WriteString("==================================================\n")
	b.WriteString("||          $$$$ AWS COST OPTIMIZATION REPORT $$$$         ||\n")
	b.WriteString("==================================================\n\n")

	// Tabela de resumo com período, custo total e previsão
	b.WriteString("```\n")
	b.WriteString("SUMMARY\n")
	b.WriteString("----------------------------------------------------------------\n")
	fmt.Fprintf(&b, "Billing Period       | %s\n", snapshot.BillingPeriod)
	fmt.Fprintf(&b, "Total AWS Cost       | $%.2f\n", snapshot.TotalCost)
	fmt.Fprintf(&b, "Forecast (Current)   | $%.2f %s %s\n", snapshot.ForecastCost, trendIcon, trendText)
	b.WriteString("----------------------------------------------------------------\n```\n\n")

	// Top contas AWS
	b.WriteString("*Top AWS Accounts:*\n```\n")
	b.WriteString("  Account ID    |  Account Name  |  Cost (USD)  |  % of Total  \n")
	b.WriteString("----------------------------------------------------------------\n")
	for _, item := range topEntries(snapshot.AccountBreakdown, maxDigestAccounts) {
		name := truncate(directory.NameFor(item.Key), digestNameMaxLen)
		percentage := percentOf(item.Cost, snapshot.TotalCost)
		fmt.Fprintf(&b, " %-12s  | %-12s | $%10.2f | %10.1f%%\n",
			truncate(item.Key, digestNameMaxLen), name, item.Cost, percentage)
	}
	b.WriteString("----------------------------------------------------------------\n```\n\n")

	// Insights principais
	b.WriteString("*Key Insights:*\n```\n")
	b.WriteString("METRIC                        | VALUE\n")
	b.WriteString("----------------------------------------------------------------\n")

	if len(snapshot.AccountBreakdown) > 0 {
		highest := snapshot.AccountBreakdown[0]
		fmt.Fprintf(&b, "Highest Spending Account    | %s - %s\n", highest.Key, directory.NameFor(highest.Key))
		fmt.Fprintf(&b, "                            | $%.2f\n", highest.Cost)

		if len(snapshot.AccountBreakdown) > 1 {
			lowest := snapshot.AccountBreakdown[len(snapshot.AccountBreakdown)-1]
			fmt.Fprintf(&b, "Lowest Spending Account     | %s - %s\n", lowest.Key, directory.NameFor(lowest.Key))
			fmt.Fprintf(&b, "                            | $%.2f\n", lowest.Cost)
		}
	}

	if len(snapshot.ServiceBreakdown) > 0 {
		top := snapshot.ServiceBreakdown[0]
		fmt.Fprintf(&b, "Highest Cost Service        | %s\n", top.Key)
		fmt.Fprintf(&b, "                            | $%.2f (%.1f%% of total)\n",
			top.Cost, percentOf(top.Cost, snapshot.TotalCost))
	}

	// Tendência mês a mês: só aparece quando a variação não é zero.
	if snapshot.MoMChangePercent != 0 {
		direction := "increase"
		if snapshot.MoMChangePercent < 0 {
			direction = "decrease"
		}
		fmt.Fprintf(&b, "Month-over-Month Trend      | %.1f%% %s\n", abs(snapshot.MoMChangePercent), direction)
	}

	b.WriteString("----------------------------------------------------------------\n```")

	return b.String()
}

// digestTrend retorna o emoji e o texto assinado da tendência.
func digestTrend(momChangePercent float64) (string, string) {
	switch {
	case momChangePercent > 0:
		return "🔴", fmt.Sprintf("(+%.1f%%)", momChangePercent)
	case momChangePercent < 0:
		return "🟢", fmt.Sprintf("(%.1f%%)", momChangePercent)
	default:
		return "⚪", "(0%)"
	}
}

func topEntries(entries []entity.CostEntry, limit int) []entity.CostEntry {
	if len(entries) <= limit {
		return entries
	}
	return entries[:limit]
}
