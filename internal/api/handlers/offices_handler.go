package handlers

import (
	"errors"
	"net/http"

	"github.com/capco-latam/app-offices-map/internal/config"
	"github.com/capco-latam/app-offices-map/internal/models"
	"github.com/capco-latam/app-offices-map/internal/services"
	"github.com/gin-gonic/gin"
)

// OfficesHandler serve o mapa montado como JSON
type OfficesHandler struct {
	service *services.OfficeMapService
	cfg     *config.Config
}

func NewOfficesHandler(service *services.OfficeMapService, cfg *config.Config) *OfficesHandler {
	return &OfficesHandler{
		service: service,
		cfg:     cfg,
	}
}

// GetOffices godoc
// @Summary Mapa montado em JSON
// @Description Devolve o mapa montado: centro, camada, zoom e um marcador por escritório válido, com os problemas de validação do passe.
// @Tags mapa
// @Produce json
// @Param layer query string false "Camada de mapa" Enums(OpenStreetMap, CartoDB positron, Esri WorldStreetMap)
// @Param zoom query int false "Zoom inicial (1-8)" default(3)
// @Param icon_size query int false "Tamanho do ícone em px (24-72, passo 2)" default(44)
// @Success 200 {object} models.OfficeMapResponse
// @Failure 400 {object} map[string]string "camada de mapa inválida"
// @Failure 404 {object} map[string]string "nenhum escritório válido encontrado"
// @Failure 500 {object} map[string]string "falha ao ler o arquivo de escritórios"
// @Router /api/v1/offices [get]
func (h *OfficesHandler) GetOffices(c *gin.Context) {
	var query models.MapQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parâmetros inválidos: " + err.Error()})
		return
	}

	opts, err := query.Options(h.cfg.MapDefaults())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, problems, err := h.service.Build(c.Request.Context(), opts)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrNoValidOffices) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.NewOfficeMapResponse(m, problems))
}
