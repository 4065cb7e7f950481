package export

import (
	"testing"
	"time"

	"github.com/diillson/aws-billing-report-go/internal/domain/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDocument() *document.Document {
	blue := document.RGB{R: 30, G: 65, B: 100}
	gray := document.RGB{R: 245, G: 245, B: 245}
	black := document.RGB{}

	doc := &document.Document{
		Title:            "AWS Billing Report",
		OrganizationID:   "o-abc123",
		OrganizationName: "Acme Corp",
		GeneratedAt:      time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC),
		FooterNote:       "Confidential - For Internal Use Only",
	}

	doc.Add(
		document.Text{Text: "Monthly Billing Summary", Size: 14, Style: "B", Align: "C", Color: document.RGB{R: 255, G: 255, B: 255}, Fill: &blue},
		document.Spacer{Height: 5},
		document.Box{
			Fill:   gray,
			Border: blue,
			Height: 25,
			Lines: []document.BoxLine{
				{Text: "Total Cost: USD 1000.00", Size: 16, Style: "B", Align: "C", Color: black},
				{Text: "Forecast Period: 2024-02-01 to 2024-03-01", Size: 10, Color: black},
			},
		},
		document.SectionTitle{Text: "Cost by AWS Account"},
		document.Table{
			Headers:      []string{"Account ID", "Cost", "% of Total"},
			Rows:         [][]string{{"111122223333", "USD 600.00", "60.0%"}, {"444455556666", "USD 400.00", "40.0%"}},
			ColWidths:    []float64{70, 50, 50},
			HighlightTop: true,
		},
		document.PageBreak{},
		document.Paragraph{Text: "Look for idle EC2 instances and unattached EBS volumes.", Size: 10},
		document.StackedBar{
			Segments: []document.BarSegment{
				{Percent: 70, Color: blue},
				{Percent: 30, Color: gray},
			},
			Height: 15,
		},
		document.Legend{
			Items: []document.LegendItem{
				{Label: "Amazon EC2", Percent: 70, Color: blue},
				{Label: "Amazon S3", Percent: 30, Color: gray},
			},
		},
	)
	return doc
}

func TestWriteProducesPDF(t *testing.T) {
	data, err := NewPDFWriter().Write(fullDocument())
	require.NoError(t, err)

	require.Greater(t, len(data), 1000)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestWriteEmptyDocument(t *testing.T) {
	doc := &document.Document{Title: "AWS Billing Report", GeneratedAt: time.Now()}

	data, err := NewPDFWriter().Write(doc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, isNumeric("1234.56"))
	assert.True(t, isNumeric(" 42 "))
	assert.False(t, isNumeric("USD 600.00"))
	assert.False(t, isNumeric("60.0%"))
	assert.False(t, isNumeric(""))
}
