// Package document define um modelo de documento como uma lista ordenada de
// instruções de desenho imutáveis. O renderizador produz os nós; um writer de
// baixo nível (PDF) os consome, mantendo o layout testável sem backend gráfico.
package document

import "time"

// RGB é uma cor no espaço 0-255.
type RGB struct {
	R, G, B int
}

// Node é uma instrução de desenho. Implementações são structs de dados puros.
type Node interface {
	isNode()
}

// PageBreak inicia uma nova página.
type PageBreak struct{}

// Spacer avança o cursor vertical em Height (mm).
type Spacer struct {
	Height float64
}

// Text é uma única linha de texto, opcionalmente com fundo preenchido.
type Text struct {
	Text  string
	Size  float64
	Style string // "", "B", "I"
	Align string // "L", "C", "R"
	Color RGB
	Fill  *RGB
}

// Paragraph é um bloco de texto com quebra automática de linha.
type Paragraph struct {
	Text string
	Size float64
}

// SectionTitle é um título de seção com fundo destacado.
type SectionTitle struct {
	Text string
}

// BoxLine é uma linha dentro de um Box.
type BoxLine struct {
	Text  string
	Size  float64
	Style string
	Align string // "L" quando vazio
	Color RGB
}

// Box é um retângulo preenchido e bordado contendo linhas de texto.
type Box struct {
	Lines  []BoxLine
	Fill   RGB
	Border RGB
	Height float64
}

// Table é uma tabela com cabeçalho colorido e linhas alternadas.
// Quando HighlightTop é true, a primeira linha é enfatizada (maior gasto).
type Table struct {
	Headers      []string
	Rows         [][]string
	ColWidths    []float64
	HighlightTop bool
}

// BarSegment é um segmento proporcional de um StackedBar.
type BarSegment struct {
	Percent float64
	Color   RGB
}

// StackedBar é uma barra horizontal empilhada; segmentos são desenhados da
// esquerda para a direita na ordem dada, com offset cumulativo.
type StackedBar struct {
	Segments []BarSegment
	Height   float64
}

// LegendItem é uma entrada da legenda com amostra de cor.
type LegendItem struct {
	Label   string
	Percent float64
	Color   RGB
}

// Legend é uma legenda em duas colunas abaixo do gráfico.
type Legend struct {
	Items []LegendItem
}

func (PageBreak) isNode()    {}
func (Spacer) isNode()       {}
func (Text) isNode()         {}
func (Paragraph) isNode()    {}
func (SectionTitle) isNode() {}
func (Box) isNode()          {}
func (Table) isNode()        {}
func (StackedBar) isNode()   {}
func (Legend) isNode()       {}

// Document é a árvore completa de um relatório, incluindo as informações de
// cabeçalho/rodapé aplicadas a todas as páginas.
type Document struct {
	Title            string
	OrganizationID   string
	OrganizationName string
	GeneratedAt      time.Time
	FooterNote       string
	Nodes            []Node
}

// Add anexa nós ao documento na ordem de desenho.
func (d *Document) Add(nodes ...Node) {
	d.Nodes = append(d.Nodes, nodes...)
}
