package maps

import (
	"html"

	"github.com/capco-latam/app-offices-map/internal/models"
	"github.com/capco-latam/app-offices-map/internal/utils"
)

// Assemble monta o mapa renderizável: o viewport recebido e um marcador por
// escritório válido, na ordem validada (a ordem do arquivo, menos os
// rejeitados). Cada marcador carrega posição, ícone no tamanho do passe,
// popup e tooltip "cidade · nome". Sem deduplicação nem tratamento de
// sobreposição; marcadores coincidentes são problema da camada de exibição.
func Assemble(valids []models.Office, view models.MapViewSpec) *models.RenderableMap {
	markers := make([]models.MarkerSpec, 0, len(valids))
	for _, o := range valids {
		markers = append(markers, models.MarkerSpec{
			ID:        utils.GenerateSlug(o.Nome, o.Ordinal),
			Latitude:  o.Latitude,
			Longitude: o.Longitude,
			Tooltip:   tooltip(o),
			Icon:      RenderIcon(o.IconImageURL, view.IconSize),
			Popup:     RenderPopup(o),
		})
	}
	return &models.RenderableMap{View: view, Markers: markers}
}

// A camada de exibição insere tooltips como marcação, então o texto derivado
// dos dados é escapado aqui.
func tooltip(o models.Office) string {
	return html.EscapeString(o.City + " · " + o.Nome)
}
