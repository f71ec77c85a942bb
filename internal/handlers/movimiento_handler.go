package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/velamar/pesca-api/internal/models"
	"github.com/velamar/pesca-api/internal/services"
)

type MovimientoHandler struct {
	movimientoService *services.MovimientoService
	catalogoService   *services.CatalogoService
}

func NewMovimientoHandler(movimientoService *services.MovimientoService, catalogoService *services.CatalogoService) *MovimientoHandler {
	return &MovimientoHandler{
		movimientoService: movimientoService,
		catalogoService:   catalogoService,
	}
}

// @Summary List Movements
// @Description Get the movements of a settlement in operation-date order
// @Tags Movimientos
// @Produce json
// @Param id path int true "Settlement ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /entregas-rendir/{id}/movimientos [get]
func (h *MovimientoHandler) Index(c *gin.Context) {
	entregaID, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	movimientos, err := h.movimientoService.FindByEntrega(c.Request.Context(), uint(entregaID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var responses []interface{}
	for i := range movimientos {
		responses = append(responses, movimientos[i].ToResponse())
	}

	totales := models.CalcularTotales(movimientos)

	c.JSON(http.StatusOK, gin.H{
		"movimientos": responses,
		"totales":     totales,
	})
}

// @Summary Get Movement
// @Description Get a movement by ID
// @Tags Movimientos
// @Produce json
// @Param id path int true "Movement ID"
// @Success 200 {object} models.MovimientoResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /movimientos/{id} [get]
func (h *MovimientoHandler) Show(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	mov, err := h.movimientoService.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": "Movimiento no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"movimiento": mov.ToResponse()})
}

type MovimientoRequest struct {
	EntregaRendirID    uint    `json:"entrega_rendir_id" binding:"required"`
	TipoMovimientoID   uint    `json:"tipo_movimiento_id" binding:"required"`
	FechaOperacion     *string `json:"fecha_operacion"`
	Monto              float64 `json:"monto"`
	MonedaID           *uint   `json:"moneda_id"`
	EntidadComercialID *uint   `json:"entidad_comercial_id"`
	MovimientoCajaID   *uint   `json:"movimiento_caja_id"`
	CodigoOperacion    *string `json:"codigo_operacion"`
	NumeroOperacion    *string `json:"numero_operacion"`
	Descripcion        *string `json:"descripcion"`
}

func (r *MovimientoRequest) toModel() (*models.MovimientoEntrega, error) {
	mov := &models.MovimientoEntrega{
		EntregaRendirID:    r.EntregaRendirID,
		TipoMovimientoID:   r.TipoMovimientoID,
		Monto:              r.Monto,
		MonedaID:           r.MonedaID,
		EntidadComercialID: r.EntidadComercialID,
		MovimientoCajaID:   r.MovimientoCajaID,
		CodigoOperacion:    r.CodigoOperacion,
		NumeroOperacion:    r.NumeroOperacion,
		Descripcion:        r.Descripcion,
	}
	if r.FechaOperacion != nil && *r.FechaOperacion != "" {
		fecha, err := time.Parse("2006-01-02", *r.FechaOperacion)
		if err != nil {
			return nil, err
		}
		mov.FechaOperacion = &fecha
	}
	return mov, nil
}

// @Summary Create Movement
// @Description Registers a movement on an open settlement
// @Tags Movimientos
// @Accept json
// @Produce json
// @Param request body MovimientoRequest true "Movement data"
// @Success 201 {object} models.MovimientoResponse
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /movimientos [post]
func (h *MovimientoHandler) Create(c *gin.Context) {
	var req MovimientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mov, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fecha de operación inválida, use YYYY-MM-DD"})
		return
	}

	if err := h.movimientoService.Create(c.Request.Context(), mov); err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"movimiento": mov.ToResponse()})
}

// @Summary Update Movement
// @Description Modifies a movement while its settlement is still open
// @Tags Movimientos
// @Accept json
// @Produce json
// @Param id path int true "Movement ID"
// @Param request body MovimientoRequest true "Movement data"
// @Success 200 {object} models.MovimientoResponse
// @Security BearerAuth
// @Router /movimientos/{id} [put]
func (h *MovimientoHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	var req MovimientoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mov, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fecha de operación inválida, use YYYY-MM-DD"})
		return
	}
	mov.ID = uint(id)

	if err := h.movimientoService.Update(c.Request.Context(), mov); err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"movimiento": mov.ToResponse()})
}

// @Summary Delete Movement
// @Description Removes a movement from an open settlement
// @Tags Movimientos
// @Produce json
// @Param id path int true "Movement ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /movimientos/{id} [delete]
func (h *MovimientoHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	if err := h.movimientoService.Delete(c.Request.Context(), uint(id)); err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Movimiento eliminado"})
}

// @Summary List Movement Types
// @Description Get all movement types with their income/expense flag
// @Tags Catalogos
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /tipos-movimiento [get]
func (h *MovimientoHandler) TiposMovimiento(c *gin.Context) {
	tipos, err := h.catalogoService.TiposMovimiento(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tipos_movimiento": tipos})
}

// @Summary Get Cash Movement
// @Description Get the bank/cash detail linked to a settlement movement
// @Tags Catalogos
// @Produce json
// @Param id path int true "Cash movement ID"
// @Success 200 {object} models.MovimientoCaja
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /movimientos-caja/{id} [get]
func (h *MovimientoHandler) ShowMovimientoCaja(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	caja, err := h.catalogoService.FindMovimientoCaja(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": "Movimiento de caja no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"movimiento_caja": caja})
}

// @Summary Get Company
// @Description Get company data used on report headers
// @Tags Catalogos
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} models.Empresa
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /empresas/{id} [get]
func (h *MovimientoHandler) ShowEmpresa(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	empresa, err := h.catalogoService.FindEmpresa(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": "Empresa no encontrada"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"empresa": empresa})
}
