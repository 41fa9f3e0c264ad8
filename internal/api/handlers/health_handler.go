package handlers

import (
	"net/http"
	"time"

	"github.com/capco-latam/app-offices-map/internal/models"
	"github.com/capco-latam/app-offices-map/internal/offices"
	"github.com/capco-latam/app-offices-map/internal/services"
	"github.com/gin-gonic/gin"
)

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	service *services.OfficeMapService
}

// NewHealthHandler cria um novo handler de health check
func NewHealthHandler(service *services.OfficeMapService) *HealthHandler {
	return &HealthHandler{
		service: service,
	}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva (sem checagem do arquivo de dados)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health/live [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Verifica se a aplicação está pronta para receber tráfego (o arquivo de escritórios carrega e produz ao menos um registro válido)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health/ready [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	response := HealthResponse{
		Status:    "ready",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if err := h.checkOfficesFile(); err != nil {
		response.Checks["offices_file"] = "failed"
		response.Status = "not_ready"
		response.Error = err.Error()
	} else {
		response.Checks["offices_file"] = "ok"
	}

	statusCode := http.StatusOK
	if response.Status == "not_ready" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Health godoc
// @Summary Comprehensive health check endpoint
// @Description Verifica a saúde completa da aplicação (para monitoramento externo de uptime)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if err := h.checkOfficesFile(); err != nil {
		response.Checks["offices_file"] = "failed"
		response.Status = "unhealthy"
		response.Error = err.Error()
	} else {
		response.Checks["offices_file"] = "ok"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// checkOfficesFile roda o mesmo gate fatal do passe de renderização: o
// arquivo precisa carregar como lista e render ao menos um escritório válido.
// Problemas por registro não degradam a saúde, como não impedem o mapa.
func (h *HealthHandler) checkOfficesFile() error {
	records, err := offices.Load(h.service.FilePath())
	if err != nil {
		return err
	}
	valids, _ := offices.Validate(records)
	if len(valids) == 0 {
		return models.ErrNoValidOffices
	}
	return nil
}
