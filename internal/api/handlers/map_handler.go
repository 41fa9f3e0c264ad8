package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/capco-latam/app-offices-map/internal/config"
	"github.com/capco-latam/app-offices-map/internal/models"
	"github.com/capco-latam/app-offices-map/internal/services"
	"github.com/capco-latam/app-offices-map/internal/web"
	"github.com/gin-gonic/gin"
)

// MapHandler serve a página do mapa interativo
type MapHandler struct {
	service *services.OfficeMapService
	cfg     *config.Config
}

func NewMapHandler(service *services.OfficeMapService, cfg *config.Config) *MapHandler {
	return &MapHandler{
		service: service,
		cfg:     cfg,
	}
}

type mapPageData struct {
	Title       string
	Layers      []models.TileLayer
	Layer       models.TileLayer
	Zoom        int
	IconSize    int
	TileURL     string
	Attribution string
	CenterLat   float64
	CenterLon   float64
	Problems    []string
	MarkersJSON template.JS
}

type errorPageData struct {
	Title    string
	Message  string
	Problems []string
}

// RenderMap godoc
// @Summary Página do mapa de escritórios
// @Description Monta o mapa interativo com um marcador por escritório válido do arquivo. Problemas de validação aparecem em um bloco expansível, sem impedir o restante do mapa.
// @Tags mapa
// @Produce html
// @Param layer query string false "Camada de mapa" Enums(OpenStreetMap, CartoDB positron, Esri WorldStreetMap)
// @Param zoom query int false "Zoom inicial (1-8)" default(3)
// @Param icon_size query int false "Tamanho do ícone em px (24-72, passo 2)" default(44)
// @Success 200 {string} string "página HTML do mapa"
// @Failure 400 {string} string "parâmetros de exibição inválidos"
// @Failure 404 {string} string "nenhum escritório válido encontrado"
// @Failure 500 {string} string "falha ao ler o arquivo de escritórios"
// @Router / [get]
func (h *MapHandler) RenderMap(c *gin.Context) {
	var query models.MapQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.renderError(c, http.StatusBadRequest, "parâmetros inválidos: "+err.Error(), nil)
		return
	}

	opts, err := query.Options(h.cfg.MapDefaults())
	if err != nil {
		h.renderError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	m, problems, err := h.service.Build(c.Request.Context(), opts)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrNoValidOffices) {
			status = http.StatusNotFound
		}
		h.renderError(c, status, err.Error(), problems)
		return
	}

	markersJSON, err := web.MarshalJS(m.Markers)
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, "erro ao serializar marcadores: "+err.Error(), nil)
		return
	}

	c.HTML(http.StatusOK, "map.html", mapPageData{
		Title:       h.cfg.PageTitle,
		Layers:      models.TileLayers(),
		Layer:       m.View.Layer,
		Zoom:        m.View.Zoom,
		IconSize:    m.View.IconSize,
		TileURL:     m.View.Layer.URL(),
		Attribution: m.View.Layer.Attribution(),
		CenterLat:   m.View.CenterLat,
		CenterLon:   m.View.CenterLon,
		Problems:    problems,
		MarkersJSON: markersJSON,
	})
}

// renderError substitui a visão normal por uma única mensagem de erro, com os
// problemas por registro quando o passe chegou a validar algo.
func (h *MapHandler) renderError(c *gin.Context, status int, message string, problems []string) {
	c.HTML(status, "error.html", errorPageData{
		Title:    h.cfg.PageTitle,
		Message:  message,
		Problems: problems,
	})
}
