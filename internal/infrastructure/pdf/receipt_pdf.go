// Package pdf genera la orden de trabajo imprimible de un recibo.
//
// Layout A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Benny's Motorworks  │  Arbetsorder + fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Mekaniker | Arbete | Delar | Kund | Regplåt          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SUMMA: importe en SEK (formato sueco)                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/bennys-motorworks/verkstad-api/internal/application/usecase"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/entity"
	"github.com/bennys-motorworks/verkstad-api/pkg/svtext"
)

const shopName = "Benny's Motorworks"

var (
	colorPrimary = &props.Color{Red: 178, Green: 30, Blue: 35}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa usecase.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{}
}

// GenerateReceiptPDF genera la orden de trabajo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(receipt *entity.Receipt) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(svtext.WorkOrder(receipt.ID), true).
		WithAuthor(shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(receipt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRow(receipt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(receipt))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar orden de trabajo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del taller (izq), etiqueta de orden y fecha (der).
func headerRow(receipt *entity.Receipt) core.Row {
	created := receipt.CreatedAt.Format("2006-01-02 15:04")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(shopName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(svtext.WorkOrder(receipt.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New(created, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9}
	return row.New(8).Add(
		col.New(3).Add(text.New("Mekaniker", header)),
		col.New(2).Add(text.New("Arbete", header)),
		col.New(2).Add(text.New("Antal delar", header)),
		col.New(3).Add(text.New("Kund", header)),
		col.New(2).Add(text.New("Regplåt", header)),
	)
}

func tableDetailRow(receipt *entity.Receipt) core.Row {
	cell := props.Text{Size: 9}
	return row.New(8).Add(
		col.New(3).Add(text.New(receipt.Mechanic, cell)),
		col.New(2).Add(text.New(receipt.WorkType, cell)),
		col.New(2).Add(text.New(partsDisplay(receipt), cell)),
		col.New(3).Add(text.New(receipt.Customer, cell)),
		col.New(2).Add(text.New(receipt.Plate, cell)),
	)
}

func totalRow(receipt *entity.Receipt) core.Row {
	return row.New(10).Add(
		col.New(8).Add(
			text.New("Summa", props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2}),
		),
		col.New(4).Add(
			text.New(svtext.SEK(receipt.Amount), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
	)
}

// partsDisplay: el contador poblado del recibo, o "-" cuando el tipo no lleva piezas.
func partsDisplay(receipt *entity.Receipt) string {
	switch {
	case receipt.StylingParts != nil:
		return strconv.Itoa(*receipt.StylingParts)
	case receipt.PerformanceParts != nil:
		return strconv.Itoa(*receipt.PerformanceParts)
	default:
		return "-"
	}
}
