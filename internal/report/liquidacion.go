package report

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/velamar/pesca-api/internal/models"
)

// Fixed table layout for the liquidation report: landscape A4 in points
// (841.89 x 595.28), nine columns starting at a 10pt left margin.
var (
	// ColumnWidths is the fixed column layout of the movement table
	ColumnWidths = []float64{75, 75, 105, 115, 115, 115, 60, 65, 65}

	columnHeaders = []string{
		"Fecha/Hora", "F.Operación", "Tipo Movimiento", "C.C. Origen",
		"C.C. Destino", "Entidad Com.", "Referencia", "Ingreso", "Egreso",
	}
)

const (
	// PageLeftMargin is the x offset of the first column
	PageLeftMargin = 10.0

	fontFamily   = "Helvetica"
	cellFontSize = 8.0
	lineHeight   = 10.0
	cellPadding  = 6.0
	cellInset    = 3.0
	maxCellLines = 2
	topMargin    = 24.0
	bottomMargin = 40.0

	colIngreso = 7
	colEgreso  = 8

	// Signature names are centered by character count, not measured width.
	firmaCharWidth = 4.0
	firmaLineWidth = 180.0
)

type liquidacionDoc struct {
	pdf      *gofpdf.Fpdf
	tr       func(string) string
	grid     []Column
	y        float64
	rowIndex int
	pageW    float64
	pageH    float64
}

// GenerarLiquidacionPDF lays out the liquidation report for a settlement and
// its movements and serializes it to a byte buffer. Pure layout: no network
// or filesystem access. Movements are rendered in chronological order;
// missing optional relations degrade to sentinel strings instead of failing
// the render.
func GenerarLiquidacionPDF(entrega *models.EntregaRendir, movimientos []models.MovimientoEntrega, empresa *models.Empresa) (*bytes.Buffer, error) {
	movs := make([]models.MovimientoEntrega, len(movimientos))
	copy(movs, movimientos)
	sort.SliceStable(movs, func(i, j int) bool {
		return fechaOrden(&movs[i]).Before(fechaOrden(&movs[j]))
	})

	pdf := gofpdf.New("L", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0) // pagination is explicit below
	pageW, pageH := pdf.GetPageSize()

	d := &liquidacionDoc{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		grid:  BuildGrid(ColumnWidths, PageLeftMargin),
		pageW: pageW,
		pageH: pageH,
	}

	pdf.AddPage()
	d.y = 30
	d.drawEncabezado(empresa, entrega)
	d.drawCabeceraTabla()

	for i := range movs {
		d.drawFila(&movs[i])
	}

	d.drawTotales(movs)
	d.drawFirmas(entrega)
	d.drawPie()

	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("failed to serialize liquidation pdf: %w", err)
	}
	return buf, nil
}

// fechaOrden picks the movement's chronological key: the operation date when
// present, the creation timestamp otherwise
func fechaOrden(m *models.MovimientoEntrega) time.Time {
	if m.FechaOperacion != nil && !m.FechaOperacion.IsZero() {
		return *m.FechaOperacion
	}
	return m.CreatedAt
}

func (d *liquidacionDoc) measure(s string) float64 {
	return d.pdf.GetStringWidth(d.tr(s))
}

func (d *liquidacionDoc) tableRight() float64 {
	return d.grid[len(d.grid)-1].Right()
}

func (d *liquidacionDoc) tableWidth() float64 {
	return d.tableRight() - d.grid[0].X
}

// baseline returns the text baseline y for the given line index of the row
// currently starting at d.y
func (d *liquidacionDoc) baseline(line int) float64 {
	return d.y + cellPadding/2 + cellFontSize + float64(line)*lineHeight - 1
}

// nuevaPagina finalizes the current page and starts a new one. Row
// continuation pages repeat the column-header strip so the table stays
// readable.
func (d *liquidacionDoc) nuevaPagina(conCabecera bool) {
	d.pdf.AddPage()
	d.y = topMargin
	if conCabecera {
		d.drawCabeceraTabla()
	}
}

func (d *liquidacionDoc) drawEncabezado(empresa *models.Empresa, entrega *models.EntregaRendir) {
	razonSocial := SinDato
	ruc := ""
	direccion := ""
	if empresa != nil {
		razonSocial = empresa.RazonSocial
		ruc = empresa.RUC
		direccion = empresa.Direccion
	}

	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.SetFont(fontFamily, "B", 12)
	d.pdf.Text(d.grid[0].X, d.y, d.tr(razonSocial))

	d.pdf.SetFont(fontFamily, "", 8)
	if ruc != "" {
		d.y += 12
		d.pdf.Text(d.grid[0].X, d.y, d.tr("RUC: "+ruc))
	}
	if direccion != "" {
		d.y += 10
		d.pdf.Text(d.grid[0].X, d.y, d.tr(direccion))
	}

	titulo := "LIQUIDACIÓN DE ENTREGA A RENDIR"
	d.pdf.SetFont(fontFamily, "B", 13)
	d.pdf.Text(d.pageW/2-d.measure(titulo)/2, 42, d.tr(titulo))

	// Settlement metadata block, right aligned with the table edge
	d.pdf.SetFont(fontFamily, "", 8)
	meta := []string{
		fmt.Sprintf("Entrega a Rendir Nº %d", entrega.ID),
		"Responsable: " + nombreODato(entrega.Responsable.FullName),
		"Centro de Costo: " + nombreODato(entrega.CentroCosto.Nombre),
		"Fecha de Liquidación: " + FormatFecha(entrega.FechaLiquidacion),
	}
	metaY := 32.0
	for _, line := range meta {
		d.pdf.Text(d.tableRight()-d.measure(line), metaY, d.tr(line))
		metaY += 10
	}

	if d.y < metaY {
		d.y = metaY
	}
	d.y += 14
}

func nombreODato(s string) string {
	if s == "" {
		return SinDato
	}
	return s
}

func (d *liquidacionDoc) drawCabeceraTabla() {
	height := lineHeight + cellPadding

	d.pdf.SetFillColor(225, 225, 225)
	d.pdf.SetDrawColor(120, 120, 120)
	d.pdf.Rect(d.grid[0].X, d.y, d.tableWidth(), height, "FD")

	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.SetFont(fontFamily, "B", cellFontSize)
	for i, header := range columnHeaders {
		x := d.grid[i].X + cellInset
		if i >= colIngreso {
			x = d.grid[i].Right() - cellInset - d.measure(header)
		}
		d.pdf.Text(x, d.baseline(0), d.tr(header))
	}

	for _, c := range d.grid {
		d.pdf.Line(c.X, d.y, c.X, d.y+height)
	}
	d.pdf.Line(d.tableRight(), d.y, d.tableRight(), d.y+height)

	d.y += height
}

func (d *liquidacionDoc) drawFila(m *models.MovimientoEntrega) {
	d.pdf.SetFont(fontFamily, "", cellFontSize)

	cells := resolveCells(m)
	lines := make([][]string, len(cells))
	maxLines := 1
	for i, cell := range cells {
		lines[i] = WrapText(cell, d.measure, d.grid[i].Width-2*cellInset, maxCellLines)
		if len(lines[i]) > maxLines {
			maxLines = len(lines[i])
		}
	}
	rowHeight := float64(maxLines)*lineHeight + cellPadding

	if d.y+rowHeight > d.pageH-bottomMargin {
		d.nuevaPagina(true)
		d.pdf.SetFont(fontFamily, "", cellFontSize)
	}

	// Zebra striping keyed by row parity, continuous across pages
	if d.rowIndex%2 == 1 {
		d.pdf.SetFillColor(245, 245, 245)
		d.pdf.Rect(d.grid[0].X, d.y, d.tableWidth(), rowHeight, "F")
	}

	d.pdf.SetTextColor(0, 0, 0)
	for i, cellLines := range lines {
		for j, line := range cellLines {
			d.pdf.Text(d.grid[i].X+cellInset, d.baseline(j), d.tr(line))
		}
	}

	// The amount lands in exactly one of the two terminal money columns,
	// right-aligned by measured width
	monto := FormatMonto(m.Monto)
	col := d.grid[colEgreso]
	d.pdf.SetTextColor(185, 45, 45)
	if m.TipoMovimiento.EsIngreso {
		col = d.grid[colIngreso]
		d.pdf.SetTextColor(21, 128, 61)
	}
	d.pdf.Text(col.Right()-cellInset-d.measure(monto), d.baseline(0), monto)
	d.pdf.SetTextColor(0, 0, 0)

	d.pdf.SetDrawColor(150, 150, 150)
	for _, c := range d.grid {
		d.pdf.Line(c.X, d.y, c.X, d.y+rowHeight)
	}
	d.pdf.Line(d.tableRight(), d.y, d.tableRight(), d.y+rowHeight)
	d.pdf.Line(d.grid[0].X, d.y+rowHeight, d.tableRight(), d.y+rowHeight)

	d.y += rowHeight
	d.rowIndex++
}

func (d *liquidacionDoc) drawTotales(movimientos []models.MovimientoEntrega) {
	totales := models.CalcularTotales(movimientos)

	const boxWidth = 220.0
	const rowH = 16.0
	boxHeight := 3*rowH + 6

	if d.y+boxHeight+12 > d.pageH-bottomMargin {
		d.nuevaPagina(false)
	}
	d.y += 12

	boxX := d.tableRight() - boxWidth
	d.pdf.SetDrawColor(120, 120, 120)
	d.pdf.Rect(boxX, d.y, boxWidth, boxHeight, "D")

	type totalLine struct {
		label string
		monto float64
	}
	filas := []totalLine{
		{"Total Ingresos:", totales.TotalAsignado},
		{"Total Egresos:", totales.TotalGastado},
		{"Saldo:", totales.Saldo},
	}

	y := d.y + 3
	for i, fila := range filas {
		d.pdf.SetTextColor(0, 0, 0)
		d.pdf.SetFont(fontFamily, "B", cellFontSize)
		d.pdf.Text(boxX+6, y+rowH-5, d.tr(fila.label))

		if fila.label == "Saldo:" {
			if totales.Saldo >= 0 {
				d.pdf.SetTextColor(21, 128, 61)
			} else {
				d.pdf.SetTextColor(185, 45, 45)
			}
		}
		d.pdf.SetFont(fontFamily, "", cellFontSize+1)
		monto := FormatMonto(fila.monto)
		d.pdf.Text(d.tableRight()-6-d.measure(monto), y+rowH-5, monto)

		y += rowH
		if i < len(filas)-1 {
			d.pdf.SetDrawColor(200, 200, 200)
			d.pdf.Line(boxX, y, boxX+boxWidth, y)
		}
	}

	d.pdf.SetTextColor(0, 0, 0)
	d.y += boxHeight
}

func (d *liquidacionDoc) drawFirmas(entrega *models.EntregaRendir) {
	const firmaBlockHeight = 70.0

	if d.y+firmaBlockHeight > d.pageH-bottomMargin {
		d.nuevaPagina(false)
	}
	d.y += 40

	lineY := d.y
	d.pdf.SetDrawColor(0, 0, 0)
	d.pdf.SetTextColor(0, 0, 0)

	d.drawFirma(d.grid[0].X+70, lineY, entrega.Responsable.FullName, "Responsable")

	if entrega.LiquidadorID != nil && entrega.Liquidador.ID != 0 {
		d.drawFirma(d.pageW/2+60, lineY, entrega.Liquidador.FullName, "Liquidador")
	}

	d.y = lineY + 30
}

// drawFirma draws one signature line with the name centered above the label.
// Name centering uses a fixed per-character width, not text measurement.
func (d *liquidacionDoc) drawFirma(x, lineY float64, nombre, cargo string) {
	d.pdf.Line(x, lineY, x+firmaLineWidth, lineY)

	centro := x + firmaLineWidth/2

	d.pdf.SetFont(fontFamily, "", cellFontSize)
	if nombre != "" {
		d.pdf.Text(centro-float64(len(nombre))*firmaCharWidth/2, lineY+12, d.tr(nombre))
	}

	d.pdf.SetFont(fontFamily, "B", cellFontSize)
	d.pdf.Text(centro-d.measure(cargo)/2, lineY+24, d.tr(cargo))
}

func (d *liquidacionDoc) drawPie() {
	d.pdf.SetFont(fontFamily, "", 7)
	d.pdf.SetTextColor(120, 120, 120)

	generado := "Generado el " + time.Now().Format("02/01/2006 15:04")
	d.pdf.Text(d.grid[0].X, d.pageH-20, d.tr(generado))

	marca := "Velamar ERP"
	d.pdf.Text(d.tableRight()-d.measure(marca), d.pageH-20, d.tr(marca))
}
