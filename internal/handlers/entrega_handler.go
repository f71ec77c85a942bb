package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/velamar/pesca-api/internal/middleware"
	"github.com/velamar/pesca-api/internal/models"
	"github.com/velamar/pesca-api/internal/repository"
	"github.com/velamar/pesca-api/internal/services"
	"github.com/velamar/pesca-api/internal/storage"
)

type EntregaHandler struct {
	entregaService     *services.EntregaService
	liquidacionService *services.LiquidacionService
	storage            *storage.LocalStorage
}

func NewEntregaHandler(entregaService *services.EntregaService, liquidacionService *services.LiquidacionService, storage *storage.LocalStorage) *EntregaHandler {
	return &EntregaHandler{
		entregaService:     entregaService,
		liquidacionService: liquidacionService,
		storage:            storage,
	}
}

// serviceErrorStatus maps known service errors to HTTP status codes
func serviceErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, services.ErrMontoInvalido), errors.Is(err, services.ErrTipoRequerido):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrSubirPDF):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// @Summary List Settlements
// @Description Get a paginated list of settlements
// @Tags Entregas
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param estado query string false "Filter by state (abierta, liquidada, anulada)"
// @Param responsable_id query int false "Filter by responsible user"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /entregas-rendir [get]
func (h *EntregaHandler) Index(c *gin.Context) {
	query := repository.NewListQuery()
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	query.Filters["estado"] = c.Query("estado")
	query.Filters["responsable_id"] = c.Query("responsable_id")
	query.Filters["centro_costo_id"] = c.Query("centro_costo_id")

	// Parse sort parameter (format: field-direction)
	if sort := c.Query("sort"); sort != "" {
		parts := strings.Split(sort, "-")
		query.SortBy = parts[0]
		if len(parts) > 1 {
			query.SortDir = parts[1]
		}
	}

	entregas, total, err := h.entregaService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var responses []interface{}
	for i := range entregas {
		responses = append(responses, entregas[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"entregas": responses,
		"pagination": gin.H{
			"page":        query.Page,
			"per_page":    query.PerPage,
			"total":       total,
			"total_pages": (total + int64(query.PerPage) - 1) / int64(query.PerPage),
		},
	})
}

// @Summary Get Settlement
// @Description Get a settlement by ID with its movements and totals
// @Tags Entregas
// @Produce json
// @Param id path int true "Settlement ID"
// @Success 200 {object} models.EntregaResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /entregas-rendir/{id} [get]
func (h *EntregaHandler) Show(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	entrega, err := h.entregaService.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": "Entrega no encontrada"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entrega": entrega.ToResponse()})
}

type CreateEntregaRequest struct {
	ResponsableID uint    `json:"responsable_id" binding:"required"`
	CentroCostoID uint    `json:"centro_costo_id" binding:"required"`
	Descripcion   *string `json:"descripcion"`
}

// @Summary Create Settlement
// @Description Opens a new settlement for a responsible user
// @Tags Entregas
// @Accept json
// @Produce json
// @Param request body CreateEntregaRequest true "Settlement data"
// @Success 201 {object} models.EntregaResponse
// @Security BearerAuth
// @Router /entregas-rendir [post]
func (h *EntregaHandler) Create(c *gin.Context) {
	var req CreateEntregaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entrega := &models.EntregaRendir{
		ResponsableID: req.ResponsableID,
		CentroCostoID: req.CentroCostoID,
		Descripcion:   req.Descripcion,
	}

	if err := h.entregaService.Create(c.Request.Context(), entrega); err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entrega": entrega.ToResponse()})
}

type UpdateEntregaRequest struct {
	Descripcion   *string `json:"descripcion"`
	CentroCostoID *uint   `json:"centro_costo_id"`
}

// @Summary Update Settlement
// @Description Updates editable fields of an open settlement
// @Tags Entregas
// @Accept json
// @Produce json
// @Param id path int true "Settlement ID"
// @Param request body UpdateEntregaRequest true "Fields to update"
// @Success 200 {object} models.EntregaResponse
// @Security BearerAuth
// @Router /entregas-rendir/{id} [put]
func (h *EntregaHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	var req UpdateEntregaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entrega, err := h.entregaService.Update(c.Request.Context(), uint(id), req.Descripcion, req.CentroCostoID)
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entrega": entrega.ToResponse()})
}

// @Summary Delete Settlement
// @Description Deletes a settlement and all its movements
// @Tags Entregas
// @Produce json
// @Param id path int true "Settlement ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /entregas-rendir/{id} [delete]
func (h *EntregaHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	if err := h.entregaService.Delete(c.Request.Context(), uint(id)); err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entrega eliminada"})
}

// @Summary Liquidate Settlement
// @Description Generates the liquidation report, uploads it and closes the settlement
// @Tags Entregas
// @Produce json
// @Param id path int true "Settlement ID"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Security BearerAuth
// @Router /entregas-rendir/{id}/liquidar [post]
func (h *EntregaHandler) Liquidar(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)

	var liquidadorID *uint
	if userID := middleware.GetUserID(c); userID != 0 {
		liquidadorID = &userID
	}

	entrega, err := h.liquidacionService.Liquidar(c.Request.Context(), uint(id), liquidadorID)
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"entrega": entrega.ToResponse(),
	})
}

// @Summary Reopen Settlement
// @Description Returns a liquidated settlement to the open state
// @Tags Entregas
// @Produce json
// @Param id path int true "Settlement ID"
// @Success 200 {object} models.EntregaResponse
// @Security BearerAuth
// @Router /entregas-rendir/{id}/reabrir [post]
func (h *EntregaHandler) Reabrir(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	entrega, err := h.entregaService.Reabrir(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entrega": entrega.ToResponse()})
}

// @Summary Void Settlement
// @Description Voids an open settlement
// @Tags Entregas
// @Produce json
// @Param id path int true "Settlement ID"
// @Success 200 {object} models.EntregaResponse
// @Security BearerAuth
// @Router /entregas-rendir/{id}/anular [post]
func (h *EntregaHandler) Anular(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	entrega, err := h.entregaService.Anular(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entrega": entrega.ToResponse()})
}

// @Summary Upload Settlement PDF
// @Description Receives an externally generated liquidation PDF and stores it
// @Tags Entregas
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file"
// @Param entregaId formData int true "Settlement ID"
// @Success 201 {object} map[string]string
// @Security BearerAuth
// @Router /entregas-rendir/upload-pdf [post]
func (h *EntregaHandler) UploadPDF(c *gin.Context) {
	entregaID, err := strconv.ParseUint(c.PostForm("entregaId"), 10, 32)
	if err != nil || entregaID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entregaId es requerido"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Archivo no encontrado en la petición"})
		return
	}
	defer file.Close()

	if header.Size > storage.MaxFileSize() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El archivo excede el tamaño máximo permitido"})
		return
	}
	if !storage.IsValidContentType(header.Header.Get("Content-Type")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de archivo no permitido"})
		return
	}

	relPath, err := h.storage.Upload(file, header, "liquidaciones")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar el archivo"})
		return
	}

	url := "/documentos/" + relPath
	if err := h.entregaService.SetURLLiquidacionPDF(c.Request.Context(), uint(entregaID), url); err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
