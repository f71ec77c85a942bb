package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/velamar/pesca-api/internal/services"
)

type ReportHandler struct {
	liquidacionService *services.LiquidacionService
	exportService      *services.ExportService
}

func NewReportHandler(liquidacionService *services.LiquidacionService, exportService *services.ExportService) *ReportHandler {
	return &ReportHandler{
		liquidacionService: liquidacionService,
		exportService:      exportService,
	}
}

// @Summary Download Liquidation Report
// @Description Builds the liquidation PDF for a settlement and streams it
// @Tags Reportes
// @Produce application/pdf
// @Param id path int true "Settlement ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /entregas-rendir/{id}/liquidacion.pdf [get]
func (h *ReportHandler) LiquidacionPDF(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	buf, err := h.liquidacionService.GenerarPDF(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("liquidacion_entrega_%d.pdf", id)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// @Summary Liquidation Certificate
// @Description Builds the one-page liquidation certificate for a closed settlement
// @Tags Reportes
// @Produce application/pdf
// @Param id path int true "Settlement ID"
// @Success 200 {file} binary
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /entregas-rendir/{id}/constancia.pdf [get]
func (h *ReportHandler) ConstanciaPDF(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	buf, err := h.exportService.GenerarConstanciaPDF(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("constancia_entrega_%d.pdf", id)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// @Summary Export Movements CSV
// @Description Dumps the settlement movements with totals as CSV
// @Tags Reportes
// @Produce text/csv
// @Param id path int true "Settlement ID"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /entregas-rendir/{id}/export.csv [get]
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	data, filename, err := h.exportService.ExportMovimientosCSV(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", data)
}

// @Summary Export Movements XLSX
// @Description Dumps the settlement movements with totals as a spreadsheet
// @Tags Reportes
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "Settlement ID"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /entregas-rendir/{id}/export.xlsx [get]
func (h *ReportHandler) ExportXLSX(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	data, filename, err := h.exportService.ExportMovimientosXLSX(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
