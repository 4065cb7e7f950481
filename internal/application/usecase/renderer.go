package usecase

import (
	"fmt"
	"time"

	"github.com/diillson/aws-billing-report-go/internal/domain/document"
	"github.com/diillson/aws-billing-report-go/internal/domain/entity"
)

// Paleta do relatório.
var (
	awsBlue    = document.RGB{R: 30, G: 65, B: 100}
	white      = document.RGB{R: 255, G: 255, B: 255}
	black      = document.RGB{R: 0, G: 0, B: 0}
	red        = document.RGB{R: 255, G: 0, B: 0}
	green      = document.RGB{R: 0, G: 128, B: 0}
	lightGray  = document.RGB{R: 245, G: 245, B: 245}
	aliceBlue  = document.RGB{R: 240, G: 248, B: 255}
	lightBlue  = document.RGB{R: 230, G: 247, B: 255}
	gold       = document.RGB{R: 255, G: 215, B: 0}
	paleYellow = document.RGB{R: 255, G: 250, B: 205}
	paleGreen  = document.RGB{R: 240, G: 255, B: 240}
	seaGreen   = document.RGB{R: 46, G: 139, B: 87}
)

// Cores dos segmentos da barra empilhada; a última (cinza) fica com "Other Services".
var segmentColors = []document.RGB{
	{R: 70, G: 130, B: 180},
	{R: 100, G: 149, B: 237},
	{R: 135, G: 206, B: 235},
	{R: 176, G: 224, B: 230},
	{R: 173, G: 216, B: 230},
	{R: 211, G: 211, B: 211},
}

const (
	maxServiceRows    = 5
	serviceNameMaxLen = 30
	otherServicesKey  = "Other Services"
	footerNote        = "Confidential - For Internal Use Only"
)

// RenderReport monta o documento paginado do relatório de billing a partir do
// snapshot. Produz apenas instruções de desenho; nenhum backend é tocado aqui.
func RenderReport(snapshot entity.BillingSnapshot, org entity.OrganizationInfo, directory entity.AccountDirectory, generatedAt time.Time) *document.Document {
	doc := &document.Document{
		Title:            "AWS Billing Report",
		OrganizationID:   org.ID,
		OrganizationName: org.Name,
		GeneratedAt:      generatedAt,
		FooterNote:       footerNote,
	}

	addSummary(doc, snapshot)
	addAccountSection(doc, snapshot, directory)

	doc.Add(document.PageBreak{})
	addServiceSection(doc, snapshot)
	addRecommendations(doc)

	return doc
}

// addSummary desenha o bloco de resumo: período, custo total e previsão com
// indicador de tendência.
func addSummary(doc *document.Document, snapshot entity.BillingSnapshot) {
	doc.Add(
		document.Text{Text: "Monthly Billing Summary", Size: 14, Style: "B", Align: "C", Color: white, Fill: &awsBlue},
		document.Text{Text: fmt.Sprintf("Billing Period: %s", snapshot.BillingPeriod), Size: 11, Style: "B", Align: "C", Color: black},
		document.Spacer{Height: 5},
		document.Box{
			Fill:   lightGray,
			Border: awsBlue,
			Height: 25,
			Lines: []document.BoxLine{
				{Text: fmt.Sprintf("Total Cost: %s %.2f", snapshot.Currency, snapshot.TotalCost), Size: 16, Style: "B", Align: "C", Color: black},
			},
		},
		document.Spacer{Height: 10},
		document.Text{Text: "Cost Forecast", Size: 14, Style: "B", Align: "L", Color: black},
	)

	glyph, trendColor := trendIndicator(snapshot.MoMChangePercent)
	doc.Add(document.Box{
		Fill:   aliceBlue,
		Border: black,
		Height: 35,
		Lines: []document.BoxLine{
			{Text: fmt.Sprintf("Current Month Forecast: %s %.2f", snapshot.ForecastCurrency, snapshot.ForecastCost), Size: 12, Style: "B", Color: black},
			{Text: fmt.Sprintf("Month-over-Month Change: %s %.1f%%", glyph, abs(snapshot.MoMChangePercent)), Size: 12, Style: "B", Color: trendColor},
			{Text: fmt.Sprintf("Forecast Period: %s", snapshot.ForecastPeriod), Size: 10, Color: black},
		},
	})
	doc.Add(document.Spacer{Height: 10})
}

// addAccountSection desenha a tabela por conta e os destaques de maior/menor gasto.
func addAccountSection(doc *document.Document, snapshot entity.BillingSnapshot, directory entity.AccountDirectory) {
	doc.Add(document.SectionTitle{Text: "Cost by AWS Account"})

	if len(snapshot.AccountBreakdown) == 0 {
		// Caso "sem dados": uma única linha centralizada no lugar da tabela.
		doc.Add(document.Text{Text: "No billing data available for this period.", Size: 10, Style: "I", Align: "C", Color: black})
		return
	}

	rows := make([][]string, 0, len(snapshot.AccountBreakdown))
	for _, item := range snapshot.AccountBreakdown {
		rows = append(rows, []string{
			item.Key,
			directory.NameFor(item.Key),
			fmt.Sprintf("%s %.2f", snapshot.Currency, item.Cost),
			fmt.Sprintf("%.1f%%", percentOf(item.Cost, snapshot.TotalCost)),
		})
	}
	doc.Add(document.Table{
		Headers:      []string{"Account ID", "Account Name", "Cost", "% of Total"},
		Rows:         rows,
		ColWidths:    []float64{50, 70, 35, 35},
		HighlightTop: true,
	})

	doc.Add(
		document.Spacer{Height: 10},
		document.SectionTitle{Text: "Account Highlights"},
	)

	highest := snapshot.AccountBreakdown[0]
	doc.Add(
		document.Text{Text: "Highest Spending Account", Size: 11, Style: "B", Align: "L", Color: black},
		accountCallout(highest, directory, snapshot.Currency, paleYellow, gold),
		document.Spacer{Height: 10},
	)

	if len(snapshot.AccountBreakdown) > 1 {
		lowest := snapshot.AccountBreakdown[len(snapshot.AccountBreakdown)-1]
		doc.Add(
			document.Text{Text: "Lowest Spending Account", Size: 11, Style: "B", Align: "L", Color: black},
			accountCallout(lowest, directory, snapshot.Currency, paleGreen, seaGreen),
		)
	}
}

// addServiceSection desenha a tabela dos top 5 serviços (mais "Other Services"),
// a barra empilhada proporcional e a legenda em duas colunas.
func addServiceSection(doc *document.Document, snapshot entity.BillingSnapshot) {
	doc.Add(document.SectionTitle{Text: "Cost by AWS Service"})

	if len(snapshot.ServiceBreakdown) == 0 {
		return
	}

	displayed := displayedServices(snapshot.ServiceBreakdown)

	rows := make([][]string, 0, len(displayed))
	for _, item := range displayed {
		rows = append(rows, []string{
			truncate(item.Key, serviceNameMaxLen),
			fmt.Sprintf("%s %.2f", snapshot.Currency, item.Cost),
			fmt.Sprintf("%.1f%%", percentOf(item.Cost, snapshot.TotalCost)),
		})
	}
	doc.Add(document.Table{
		Headers:   []string{"Service", "Cost", "% of Total"},
		Rows:      rows,
		ColWidths: []float64{100, 45, 45},
	})

	doc.Add(
		document.Spacer{Height: 10},
		document.Text{Text: "Service Cost Distribution", Size: 12, Style: "B", Align: "L", Color: black},
	)

	segments := make([]document.BarSegment, 0, len(displayed))
	legendItems := make([]document.LegendItem, 0, len(displayed))
	for i, item := range displayed {
		pct := percentOf(item.Cost, snapshot.TotalCost)
		color := segmentColors[min(i, len(segmentColors)-1)]
		segments = append(segments, document.BarSegment{Percent: pct, Color: color})
		legendItems = append(legendItems, document.LegendItem{
			Label:   truncate(item.Key, serviceNameMaxLen),
			Percent: pct,
			Color:   color,
		})
	}

	doc.Add(
		document.StackedBar{Segments: segments, Height: 15},
		document.Legend{Items: legendItems},
		document.Spacer{Height: 10},
	)
}

// addRecommendations desenha a seção estática de recomendações de otimização.
func addRecommendations(doc *document.Document) {
	doc.Add(document.SectionTitle{Text: "Cost Optimization Recommendations"})

	recommendations := []struct {
		title string
		body  string
	}{
		{
			"1. Identify Idle Resources",
			"Look for idle EC2 instances, unattached EBS volumes, and unused Elastic IPs which may be generating unnecessary costs across all your accounts.",
		},
		{
			"2. Consider Reserved Instances",
			"For consistently running workloads, Reserved Instances can offer significant discounts compared to On-Demand pricing. Review your highest-cost accounts for RI opportunities.",
		},
		{
			"3. Use AWS Budgets and Cost Explorer",
			"Set up budget alerts for each account and regularly review cost trends in AWS Cost Explorer to identify optimization opportunities.",
		},
	}

	for _, rec := range recommendations {
		doc.Add(
			document.Text{Text: rec.title, Size: 11, Style: "B", Align: "L", Color: black, Fill: &lightBlue},
			document.Paragraph{Text: rec.body, Size: 10},
			document.Spacer{Height: 5},
		)
	}
}

// accountCallout monta a caixa de destaque de uma conta.
func accountCallout(account entity.CostEntry, directory entity.AccountDirectory, currency string, fill, border document.RGB) document.Box {
	return document.Box{
		Fill:   fill,
		Border: border,
		Height: 25,
		Lines: []document.BoxLine{
			{Text: fmt.Sprintf("Account ID: %s", account.Key), Size: 10, Style: "B", Color: black},
			{Text: fmt.Sprintf("Name: %s", directory.NameFor(account.Key)), Size: 10, Style: "B", Color: black},
			{Text: fmt.Sprintf("Cost: %s %.2f", currency, account.Cost), Size: 10, Style: "B", Color: black},
		},
	}
}

// displayedServices limita o breakdown aos top 5 serviços; o restante é
// fundido em uma única entrada sintética "Other Services" que participa da
// tabela, da barra e da legenda, mas nunca é truncada de novo.
func displayedServices(services []entity.CostEntry) []entity.CostEntry {
	if len(services) <= maxServiceRows {
		return services
	}

	displayed := make([]entity.CostEntry, maxServiceRows, maxServiceRows+1)
	copy(displayed, services[:maxServiceRows])

	var othersCost float64
	for _, item := range services[maxServiceRows:] {
		othersCost += item.Cost
	}

	return append(displayed, entity.CostEntry{
		Key:      otherServicesKey,
		Cost:     othersCost,
		Currency: services[0].Currency,
	})
}

// trendIndicator deriva o glifo e a cor do sinal da variação mês a mês.
func trendIndicator(momChangePercent float64) (string, document.RGB) {
	switch {
	case momChangePercent > 0:
		return "^", red
	case momChangePercent < 0:
		return "v", green
	default:
		return "-", black
	}
}

// percentOf calcula cost/total*100, protegido contra total zero.
func percentOf(cost, total float64) float64 {
	if total == 0 {
		return 0
	}
	return cost / total * 100
}

// truncate corta strings acima do limite de caracteres da coluna e aplica
// o marcador de elipse, mantendo o comprimento final <= limit.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
