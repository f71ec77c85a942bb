package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/velamar/pesca-api/internal/models"
	"github.com/velamar/pesca-api/internal/report"
	"github.com/velamar/pesca-api/internal/repository"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ExportService struct {
	entregaRepo repository.EntregaRepository
	empresaRepo repository.EmpresaRepository
	empresaID   uint
}

func NewExportService(entregaRepo repository.EntregaRepository, empresaRepo repository.EmpresaRepository, empresaID uint) *ExportService {
	return &ExportService{
		entregaRepo: entregaRepo,
		empresaRepo: empresaRepo,
		empresaID:   empresaID,
	}
}

var exportHeader = []string{
	"Fecha/Hora", "F.Operación", "Tipo Movimiento", "C.C. Origen",
	"C.C. Destino", "Entidad Com.", "Referencia", "Ingreso", "Egreso",
}

// ExportMovimientosCSV dumps the movements of a settlement with a totals
// footer, using the same column order as the liquidation report
func (s *ExportService) ExportMovimientosCSV(ctx context.Context, entregaID uint) ([]byte, string, error) {
	entrega, err := s.findEntrega(ctx, entregaID)
	if err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	_ = writer.Write([]string{fmt.Sprintf("Entrega a Rendir #%d", entrega.ID), time.Now().Format("2006-01-02 15:04")})
	_ = writer.Write([]string{""})
	_ = writer.Write(exportHeader)

	for i := range entrega.Movimientos {
		record := movimientoRecord(&entrega.Movimientos[i])
		if err := writer.Write(record); err != nil {
			return nil, "", err
		}
	}

	totales := models.CalcularTotales(entrega.Movimientos)
	_ = writer.Write([]string{""})
	_ = writer.Write([]string{"Total Ingresos", report.FormatMonto(totales.TotalAsignado)})
	_ = writer.Write([]string{"Total Egresos", report.FormatMonto(totales.TotalGastado)})
	_ = writer.Write([]string{"Saldo", report.FormatMonto(totales.Saldo)})

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("entrega_%d_movimientos_%s.csv", entrega.ID, time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// ExportMovimientosXLSX produces the same dump as a spreadsheet
func (s *ExportService) ExportMovimientosXLSX(ctx context.Context, entregaID uint) ([]byte, string, error) {
	entrega, err := s.findEntrega(ctx, entregaID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Movimientos"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	_ = f.SetCellValue(sheet, "A1", fmt.Sprintf("Entrega a Rendir #%d", entrega.ID))
	_ = f.SetCellStyle(sheet, "A1", "A1", headerStyle)

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 3)
		_ = f.SetCellValue(sheet, cell, title)
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	row := 4
	for i := range entrega.Movimientos {
		record := movimientoRecord(&entrega.Movimientos[i])
		for col, value := range record {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheet, cell, value)
		}
		row++
	}

	totales := models.CalcularTotales(entrega.Movimientos)
	row++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total Ingresos")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), totales.TotalAsignado)
	row++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total Egresos")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), totales.TotalGastado)
	row++
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Saldo")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), totales.Saldo)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("entrega_%d_movimientos_%s.xlsx", entrega.ID, time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// GenerarConstanciaPDF renders the one-page liquidation certificate. Unlike
// the tabular liquidation report this one is HTML-templated prose, so it goes
// through wkhtmltopdf instead of the layout engine.
func (s *ExportService) GenerarConstanciaPDF(ctx context.Context, entregaID uint) (*bytes.Buffer, error) {
	entrega, err := s.findEntrega(ctx, entregaID)
	if err != nil {
		return nil, err
	}
	if !entrega.Liquidada() {
		return nil, ErrInvalidState
	}

	razonSocial := "Velamar"
	ruc := ""
	if empresa, err := s.empresaRepo.FindByID(ctx, s.empresaID); err == nil {
		razonSocial = empresa.RazonSocial
		ruc = empresa.RUC
	}

	liquidador := ""
	if entrega.LiquidadorID != nil && entrega.Liquidador.ID != 0 {
		liquidador = entrega.Liquidador.FullName
	}

	totales := models.CalcularTotales(entrega.Movimientos)

	data := map[string]interface{}{
		"RazonSocial":      razonSocial,
		"RUC":              ruc,
		"EntregaID":        entrega.ID,
		"Responsable":      entrega.Responsable.FullName,
		"Liquidador":       liquidador,
		"CentroCosto":      entrega.CentroCosto.Nombre,
		"FechaLiquidacion": report.FormatFecha(entrega.FechaLiquidacion),
		"TotalAsignado":    report.FormatMonto(totales.TotalAsignado),
		"TotalGastado":     report.FormatMonto(totales.TotalGastado),
		"Saldo":            report.FormatMonto(totales.Saldo),
		"Movimientos":      len(entrega.Movimientos),
		"GeneratedDate":    time.Now().Format("02/01/2006"),
	}

	return s.generatePDF("constancia_liquidacion.html", data)
}

func (s *ExportService) findEntrega(ctx context.Context, id uint) (*models.EntregaRendir, error) {
	entrega, err := s.entregaRepo.FindByIDWithDetails(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return entrega, nil
}

// movimientoRecord resolves a movement into the nine export columns, with the
// same sentinels the liquidation report uses
func movimientoRecord(m *models.MovimientoEntrega) []string {
	tipo := report.SinDato
	esIngreso := false
	if m.TipoMovimiento.ID != 0 {
		tipo = m.TipoMovimiento.Nombre
		esIngreso = m.TipoMovimiento.EsIngreso
	}

	origen := report.SinCuenta
	destino := report.SinCuenta
	if m.MovimientoCaja != nil {
		origen = report.CuentaLabel(m.MovimientoCaja.CuentaOrigen)
		destino = report.CuentaLabel(m.MovimientoCaja.CuentaDestino)
	}

	entidad := report.SinDato
	if m.EntidadComercialID != nil && m.EntidadComercial.ID != 0 {
		entidad = m.EntidadComercial.RazonSocial
	}

	ingreso := ""
	egreso := ""
	if esIngreso {
		ingreso = report.FormatMonto(m.Monto)
	} else {
		egreso = report.FormatMonto(m.Monto)
	}

	return []string{
		report.FormatFechaHora(m.CreatedAt),
		report.FormatFecha(m.FechaOperacion),
		tipo,
		origen,
		destino,
		entidad,
		m.Referencia(),
		ingreso,
		egreso,
	}
}

// Helper to generate PDF from HTML template
func (s *ExportService) generatePDF(templateName string, data interface{}) (*bytes.Buffer, error) {
	// Try path relative to project root (Prod)
	tmplPath := fmt.Sprintf("internal/services/templates/reports/%s", templateName)
	if _, err := os.Stat(tmplPath); os.IsNotExist(err) {
		// Try path relative to package (Test)
		tmplPath = fmt.Sprintf("templates/reports/%s", templateName)
	}

	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s (path: %s): %w", templateName, tmplPath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create pdf generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(buf.Bytes()))
	page.EnableLocalFileAccess.Set(true)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create pdf: %w", err)
	}

	return pdfg.Buffer(), nil
}
