// Package pdf genera la ficha técnica imprimible de un sub-producto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre + línea de producto │ Marca / Modelo / SKU  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESCRIPCIÓN                                                 │
//	│  TABLA: Especificación | Valor                               │
//	│  CARACTERÍSTICAS (viñetas)                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COMERCIAL: precio, moneda, disponibilidad, garantía         │
//	│  FOOTER: QR a la documentación + enlaces                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/sns-api/internal/application/ports"
	"github.com/jhoicas/sns-api/internal/domain/entity"
)

var _ ports.DatasheetGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.DatasheetGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador; author aparece en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// GenerateDatasheet genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDatasheet(_ context.Context, sp *entity.SubProduct, product *entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(sp.Name+" - Datasheet", true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sp, product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if sp.Description != nil && *sp.Description != "" {
		m.AddRows(sectionTitle("DESCRIPTION"))
		m.AddAutoRow(col.New(12).Add(text.New(*sp.Description, props.Text{Size: 9, Top: 1})))
	}

	if specs := parseSpecifications(sp.Specifications); len(specs) > 0 {
		m.AddRows(sectionTitle("SPECIFICATIONS"))
		m.AddRows(specRows(specs)...)
	}

	if features := parseList(sp.Features); len(features) > 0 {
		m.AddRows(sectionTitle("FEATURES"))
		for _, f := range features {
			m.AddAutoRow(col.New(12).Add(text.New("• "+f, props.Text{Size: 9, Left: 2, Top: 0.5})))
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(commercialRow(sp))
	m.AddRows(footerRows(sp)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ficha: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre y línea de producto (izq), marca/modelo/SKU (der).
func headerRow(sp *entity.SubProduct, product *entity.Product) core.Row {
	family := ""
	if product != nil {
		family = product.Name
	}
	return row.New(20).Add(
		col.New(8).Add(
			text.New(sp.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(family, props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Brand: "+deref(sp.Brand, "-"), props.Text{Size: 8, Align: align.Right, Top: 1}),
			text.New("Model: "+deref(sp.Model, "-"), props.Text{Size: 8, Align: align.Right, Top: 6}),
			text.New("SKU: "+deref(sp.SKU, "-"), props.Text{Size: 8, Align: align.Right, Top: 11, Color: colorGray}),
		),
	)
}

func sectionTitle(label string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3}),
	))
}

// specRows: una fila por especificación, clave en negrita.
func specRows(specs [][2]string) []core.Row {
	rows := make([]core.Row, 0, len(specs))
	for _, kv := range specs {
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(kv[0], props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1})),
			col.New(8).Add(text.New(kv[1], props.Text{Size: 8, Top: 1})),
		))
	}
	return rows
}

// commercialRow: precio, disponibilidad y garantía.
func commercialRow(sp *entity.SubProduct) core.Row {
	price := deref(sp.PriceRange, "On request")
	if sp.PriceRange != nil && sp.Currency != nil {
		price += " " + *sp.Currency
	}
	return row.New(16).Add(
		col.New(4).Add(
			text.New("PRICE", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 2}),
			text.New(price, props.Text{Size: 9, Top: 7}),
		),
		col.New(4).Add(
			text.New("AVAILABILITY", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 2}),
			text.New(deref(sp.AvailabilityStatus, "-"), props.Text{Size: 9, Top: 7}),
		),
		col.New(4).Add(
			text.New("WARRANTY", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 2}),
			text.New(deref(sp.WarrantyInfo, "-"), props.Text{Size: 9, Top: 7}),
		),
	)
}

// footerRows: QR a la documentación (si hay) y soporte.
func footerRows(sp *entity.SubProduct) []core.Row {
	link := deref(sp.DocumentationURL, deref(sp.DatasheetURL, ""))
	support := deref(sp.SupportInfo, "")
	if link == "" && support == "" {
		return nil
	}
	info := col.New(8)
	if support != "" {
		info.Add(text.New("Support: "+support, props.Text{Size: 8, Top: 4, Left: 3, Color: colorGray}))
	}
	if link != "" {
		info.Add(text.New(link, props.Text{Size: 7, Top: 14, Left: 3, Color: colorPrimary}))
		return []core.Row{row.New(35).Add(
			col.New(4).Add(code.NewQr(link, props.Rect{Percent: 90, Center: true})),
			info,
		)}
	}
	return []core.Row{row.New(12).Add(col.New(4), info)}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func deref(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}

// parseSpecifications interpreta el texto JSON como objeto plano, ordenado por clave.
// Si no es un objeto JSON se muestra como una sola fila.
func parseSpecifications(raw *string) [][2]string {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(*raw), &obj); err != nil {
		return [][2]string{{"Details", *raw}}
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([][2]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]string{k, fmt.Sprint(obj[k])})
	}
	return out
}

// parseList interpreta una lista JSON; si no lo es, separa por comas.
func parseList(raw *string) []string {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	var items []any
	if err := json.Unmarshal([]byte(*raw), &items); err == nil {
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, fmt.Sprint(it))
		}
		return out
	}
	var out []string
	for _, part := range strings.Split(*raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
