package models

// OfficeMapResponse representa o mapa montado, como servido pela API
type OfficeMapResponse struct {
	Center     Coordinate   `json:"center"`
	Zoom       int          `json:"zoom"`
	IconSize   int          `json:"icon_size"`
	Layer      LayerInfo    `json:"layer"`
	Markers    []MarkerSpec `json:"markers"`
	Problems   []string     `json:"problems,omitempty"`
	Total      int          `json:"total"`
	ValidCount int          `json:"valid_count"`
}

// Coordinate é um par latitude/longitude
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LayerInfo descreve a camada de tiles escolhida
type LayerInfo struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

// NewOfficeMapResponse monta a resposta da API a partir do mapa renderizável
// e dos problemas de validação do passe.
func NewOfficeMapResponse(m *RenderableMap, problems []string) OfficeMapResponse {
	return OfficeMapResponse{
		Center: Coordinate{
			Latitude:  m.View.CenterLat,
			Longitude: m.View.CenterLon,
		},
		Zoom:     m.View.Zoom,
		IconSize: m.View.IconSize,
		Layer: LayerInfo{
			Name:        string(m.View.Layer),
			URL:         m.View.Layer.URL(),
			Attribution: m.View.Layer.Attribution(),
		},
		Markers:    m.Markers,
		Problems:   problems,
		Total:      len(m.Markers) + len(problems),
		ValidCount: len(m.Markers),
	}
}
