package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/diillson/aws-billing-report-go/internal/domain/document"
	"github.com/diillson/aws-billing-report-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() entity.BillingSnapshot {
	return entity.BillingSnapshot{
		TotalCost: 1000,
		Currency:  "USD",
		AccountBreakdown: []entity.CostEntry{
			{Key: "111122223333", Cost: 600, Currency: "USD"},
			{Key: "444455556666", Cost: 400, Currency: "USD"},
		},
		ServiceBreakdown: []entity.CostEntry{
			{Key: "Amazon EC2", Cost: 700, Currency: "USD"},
			{Key: "Amazon S3", Cost: 300, Currency: "USD"},
		},
		ForecastCost:     1100,
		ForecastCurrency: "USD",
		MoMChangePercent: 10,
		BillingPeriod: entity.BillingPeriod{
			Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		},
		ForecastPeriod: entity.BillingPeriod{
			Start: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestRenderReportStructure(t *testing.T) {
	snapshot := sampleSnapshot()
	org := entity.OrganizationInfo{ID: "o-abc123", Name: "Acme Corp"}
	directory := entity.AccountDirectory{"111122223333": "Production"}
	generatedAt := time.Date(2024, time.February, 15, 9, 30, 0, 0, time.UTC)

	doc := RenderReport(snapshot, org, directory, generatedAt)

	assert.Equal(t, "AWS Billing Report", doc.Title)
	assert.Equal(t, "o-abc123", doc.OrganizationID)
	assert.Equal(t, "Acme Corp", doc.OrganizationName)
	assert.Equal(t, generatedAt, doc.GeneratedAt)
	assert.Equal(t, "Confidential - For Internal Use Only", doc.FooterNote)

	var tables []document.Table
	var pageBreaks int
	var bar *document.StackedBar
	var legend *document.Legend
	for _, node := range doc.Nodes {
		switch n := node.(type) {
		case document.Table:
			tables = append(tables, n)
		case document.PageBreak:
			pageBreaks++
		case document.StackedBar:
			barCopy := n
			bar = &barCopy
		case document.Legend:
			legendCopy := n
			legend = &legendCopy
		}
	}

	// Página 1: contas; página 2: serviços.
	assert.Equal(t, 1, pageBreaks)
	require.Len(t, tables, 2)

	accountTable := tables[0]
	assert.True(t, accountTable.HighlightTop)
	require.Len(t, accountTable.Rows, 2)
	assert.Equal(t, []string{"111122223333", "Production", "USD 600.00", "60.0%"}, accountTable.Rows[0])
	assert.Equal(t, entity.UnknownAccountName, accountTable.Rows[1][1])

	serviceTable := tables[1]
	require.Len(t, serviceTable.Rows, 2)
	assert.Equal(t, "Amazon EC2", serviceTable.Rows[0][0])

	require.NotNil(t, bar)
	require.NotNil(t, legend)
	assert.Len(t, bar.Segments, 2)
	assert.Len(t, legend.Items, 2)
	assert.InDelta(t, 70.0, bar.Segments[0].Percent, 0.0001)
}

func TestRenderReportEmptyAccountsShowsPlaceholder(t *testing.T) {
	snapshot := sampleSnapshot()
	snapshot.AccountBreakdown = nil

	doc := RenderReport(snapshot, entity.OrganizationInfo{}, nil, time.Now())

	var found bool
	for _, node := range doc.Nodes {
		if text, ok := node.(document.Text); ok && text.Text == "No billing data available for this period." {
			found = true
			assert.Equal(t, "C", text.Align)
			assert.Equal(t, "I", text.Style)
		}
		_, isTable := node.(document.Table)
		if isTable {
			// A única tabela restante deve ser a de serviços.
			table := node.(document.Table)
			assert.Equal(t, "Service", table.Headers[0])
		}
	}
	assert.True(t, found)
}

func TestDisplayedServicesMergesTail(t *testing.T) {
	services := []entity.CostEntry{
		{Key: "svc1", Cost: 50, Currency: "USD"},
		{Key: "svc2", Cost: 40, Currency: "USD"},
		{Key: "svc3", Cost: 30, Currency: "USD"},
		{Key: "svc4", Cost: 20, Currency: "USD"},
		{Key: "svc5", Cost: 10, Currency: "USD"},
		{Key: "svc6", Cost: 5, Currency: "USD"},
		{Key: "svc7", Cost: 3, Currency: "USD"},
	}

	displayed := displayedServices(services)

	require.Len(t, displayed, 6)
	assert.Equal(t, "svc1", displayed[0].Key)
	assert.Equal(t, "Other Services", displayed[5].Key)
	assert.InDelta(t, 8.0, displayed[5].Cost, 0.0001)
	assert.Equal(t, "USD", displayed[5].Currency)
}

func TestDisplayedServicesSmallListUntouched(t *testing.T) {
	services := []entity.CostEntry{
		{Key: "svc1", Cost: 50},
		{Key: "svc2", Cost: 40},
	}

	displayed := displayedServices(services)

	require.Len(t, displayed, 2)
	assert.Equal(t, services, displayed)
}

func TestTruncate(t *testing.T) {
	long := "Amazon Elastic Compute Cloud - Compute"

	got := truncate(long, 30)
	assert.LessOrEqual(t, len(got), 30)
	assert.True(t, strings.HasSuffix(got, "..."))

	assert.Equal(t, "short", truncate("short", 30))
	exact := strings.Repeat("x", 30)
	assert.Equal(t, exact, truncate(exact, 30))
}

func TestPercentOf(t *testing.T) {
	assert.InDelta(t, 60.0, percentOf(600, 1000), 0.0001)
	assert.Zero(t, percentOf(600, 0))
}

func TestTrendIndicator(t *testing.T) {
	glyph, color := trendIndicator(10)
	assert.Equal(t, "^", glyph)
	assert.Equal(t, red, color)

	glyph, color = trendIndicator(-5)
	assert.Equal(t, "v", glyph)
	assert.Equal(t, green, color)

	glyph, color = trendIndicator(0)
	assert.Equal(t, "-", glyph)
	assert.Equal(t, black, color)
}
