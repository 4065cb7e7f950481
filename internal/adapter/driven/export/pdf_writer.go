package export

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/diillson/aws-billing-report-go/internal/domain/document"
	"github.com/diillson/aws-billing-report-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// Geometria da página A4 retrato usada pelo relatório.
const (
	contentLeft  = 20.0
	contentWidth = 170.0
	barWidth     = 160.0

	legendColumnWidth = 120.0
	legendBoxSize     = 10.0
	legendSpacing     = 7.0
)

var (
	logoFill     = [3]int{30, 65, 100}
	sectionFill  = [3]int{200, 220, 255}
	tableHeadsBG = [3]int{66, 133, 244}
	rowEvenFill  = [3]int{240, 240, 240}
	rowTopFill   = [3]int{255, 215, 0}
)

// PDFWriterImpl materializa um documento em PDF via gofpdf. É o único ponto
// do código que toca o backend de renderização.
type PDFWriterImpl struct{}

// NewPDFWriter cria uma nova implementação do ReportWriter.
func NewPDFWriter() repository.ReportWriter {
	return &PDFWriterImpl{}
}

// Write percorre os nós do documento em ordem e produz os bytes do PDF.
func (w *PDFWriterImpl) Write(doc *document.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)

	// Cabeçalho de todas as páginas: logo, título, data de geração e organização.
	pdf.SetHeaderFuncMode(func() {
		pdf.SetFillColor(logoFill[0], logoFill[1], logoFill[2])
		pdf.Rect(10, 10, 30, 10, "F")
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Arial", "B", 10)
		pdf.SetXY(10, 10)
		pdf.CellFormat(30, 10, "AWS Report", "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)

		pdf.SetFont("Arial", "B", 16)
		pdf.SetXY(50, 10)
		pdf.CellFormat(100, 10, tr(doc.Title), "", 0, "C", false, 0, "")

		pdf.SetFont("Arial", "", 8)
		pdf.SetXY(150, 8)
		pdf.CellFormat(50, 5, tr(fmt.Sprintf("Generated: %s", doc.GeneratedAt.Format("2006-01-02 15:04:05"))), "", 2, "R", false, 0, "")
		pdf.CellFormat(50, 5, tr(fmt.Sprintf("Organization ID: %s", doc.OrganizationID)), "", 2, "R", false, 0, "")
		pdf.CellFormat(50, 5, tr(fmt.Sprintf("Name: %s", doc.OrganizationName)), "", 0, "R", false, 0, "")

		pdf.SetY(30)
	}, true)

	// Rodapé: número da página e aviso de confidencialidade.
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 10, tr(doc.FooterNote), "", 0, "L", false, 0, "")
		pdf.SetX(10)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	for _, node := range doc.Nodes {
		switch n := node.(type) {
		case document.PageBreak:
			pdf.AddPage()
		case document.Spacer:
			pdf.Ln(n.Height)
		case document.Text:
			w.drawText(pdf, tr, n)
		case document.Paragraph:
			pdf.SetFont("Arial", "", n.Size)
			pdf.SetTextColor(0, 0, 0)
			pdf.MultiCell(0, 6, tr(n.Text), "", "L", false)
		case document.SectionTitle:
			pdf.SetFont("Arial", "B", 12)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFillColor(sectionFill[0], sectionFill[1], sectionFill[2])
			pdf.CellFormat(0, 10, tr(n.Text), "", 1, "L", true, 0, "")
			pdf.Ln(5)
		case document.Box:
			w.drawBox(pdf, tr, n)
		case document.Table:
			w.drawTable(pdf, tr, n)
		case document.StackedBar:
			w.drawStackedBar(pdf, n)
		case document.Legend:
			w.drawLegend(pdf, tr, n)
		default:
			return nil, fmt.Errorf("unsupported document node %T", node)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error writing PDF output: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *PDFWriterImpl) drawText(pdf *gofpdf.Fpdf, tr func(string) string, n document.Text) {
	pdf.SetFont("Arial", n.Style, n.Size)
	pdf.SetTextColor(n.Color.R, n.Color.G, n.Color.B)

	height := 8.0
	if n.Size >= 12 {
		height = 10.0
	}

	fill := n.Fill != nil
	if fill {
		pdf.SetFillColor(n.Fill.R, n.Fill.G, n.Fill.B)
	}

	align := n.Align
	if align == "" {
		align = "L"
	}

	pdf.CellFormat(0, height, tr(n.Text), "", 1, align, fill, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func (w *PDFWriterImpl) drawBox(pdf *gofpdf.Fpdf, tr func(string) string, n document.Box) {
	top := pdf.GetY()

	pdf.SetFillColor(n.Fill.R, n.Fill.G, n.Fill.B)
	pdf.SetDrawColor(n.Border.R, n.Border.G, n.Border.B)
	pdf.Rect(contentLeft, top, contentWidth, n.Height, "FD")

	pdf.SetXY(contentLeft+5, top+5)
	for _, line := range n.Lines {
		pdf.SetFont("Arial", line.Style, line.Size)
		pdf.SetTextColor(line.Color.R, line.Color.G, line.Color.B)

		lineHeight := 5.0
		if line.Size >= 14 {
			lineHeight = 10.0
		} else if line.Size >= 12 {
			lineHeight = 8.0
		}

		align := line.Align
		if align == "" {
			align = "L"
		}
		pdf.CellFormat(contentWidth-10, lineHeight, tr(line.Text), "", 2, align, false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetY(top + n.Height)
	pdf.Ln(5)
}

// drawTable desenha cabeçalho colorido, linhas alternadas e, quando pedido,
// destaque dourado com fonte em negrito na primeira linha (maior gasto).
func (w *PDFWriterImpl) drawTable(pdf *gofpdf.Fpdf, tr func(string) string, n document.Table) {
	colWidths := n.ColWidths
	if len(colWidths) == 0 {
		pageWidth, _ := pdf.GetPageSize()
		colWidths = make([]float64, len(n.Headers))
		for i := range colWidths {
			colWidths[i] = pageWidth/float64(len(n.Headers)) - 10
		}
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(tableHeadsBG[0], tableHeadsBG[1], tableHeadsBG[2])
	pdf.SetTextColor(255, 255, 255)
	for i, header := range n.Headers {
		pdf.CellFormat(colWidths[i], 8, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0, 0, 0)
	for index, row := range n.Rows {
		style := ""
		switch {
		case index == 0 && n.HighlightTop:
			pdf.SetFillColor(rowTopFill[0], rowTopFill[1], rowTopFill[2])
			style = "B"
		case index%2 == 0:
			pdf.SetFillColor(rowEvenFill[0], rowEvenFill[1], rowEvenFill[2])
		default:
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetFont("Arial", style, 10)

		for i, cell := range row {
			align := "L"
			if isNumeric(cell) {
				align = "R"
			}
			pdf.CellFormat(colWidths[i], 7, tr(cell), "1", 0, align, true, 0, "")
		}
		pdf.Ln(-1)
	}
}

// drawStackedBar desenha os segmentos proporcionais com offset cumulativo e a
// borda em volta da barra inteira, mesmo quando os segmentos não somam 100%.
func (w *PDFWriterImpl) drawStackedBar(pdf *gofpdf.Fpdf, n document.StackedBar) {
	top := pdf.GetY()

	cumulative := 0.0
	for _, segment := range n.Segments {
		segmentWidth := segment.Percent / 100 * barWidth
		if segmentWidth > 0 {
			pdf.SetFillColor(segment.Color.R, segment.Color.G, segment.Color.B)
			pdf.Rect(contentLeft+cumulative/100*barWidth, top, segmentWidth, n.Height, "F")
		}
		cumulative += segment.Percent
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.Rect(contentLeft, top, barWidth, n.Height, "D")
	pdf.Ln(n.Height + 5)
}

// drawLegend distribui os itens em duas colunas: primeira metade na coluna 1,
// o restante na coluna 2.
func (w *PDFWriterImpl) drawLegend(pdf *gofpdf.Fpdf, tr func(string) string, n document.Legend) {
	if len(n.Items) == 0 {
		return
	}

	top := pdf.GetY()
	itemsPerColumn := (len(n.Items) + 1) / 2

	for i, item := range n.Items {
		column := i / itemsPerColumn
		row := i % itemsPerColumn

		x := contentLeft + float64(column)*legendColumnWidth
		y := top + float64(row)*legendSpacing

		pdf.SetFillColor(item.Color.R, item.Color.G, item.Color.B)
		pdf.Rect(x, y, legendBoxSize, 5, "F")

		pdf.SetFont("Arial", "", 8)
		pdf.SetXY(x+legendBoxSize+5, y)
		pdf.CellFormat(legendColumnWidth-legendBoxSize-10, 5, tr(fmt.Sprintf("%s (%.1f%%)", item.Label, item.Percent)), "", 0, "L", false, 0, "")
	}

	pdf.SetY(top + float64(itemsPerColumn)*legendSpacing + 5)
}

// isNumeric reporta se a célula representa um número puro (alinhado à direita).
func isNumeric(cell string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	return err == nil
}
