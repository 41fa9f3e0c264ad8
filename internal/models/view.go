package models

// TileLayer define as camadas de mapa disponíveis
type TileLayer string

const (
	TileOpenStreetMap      TileLayer = "OpenStreetMap"
	TileCartoDBPositron    TileLayer = "CartoDB positron"
	TileEsriWorldStreetMap TileLayer = "Esri WorldStreetMap"
)

// Limites da superfície de controle de exibição
const (
	MinZoom     = 1
	MaxZoom     = 8
	DefaultZoom = 3

	MinIconSize     = 24
	MaxIconSize     = 72
	DefaultIconSize = 44
	IconSizeStep    = 2
)

// DefaultTileLayer é a camada usada quando nenhuma é escolhida
const DefaultTileLayer = TileCartoDBPositron

// IsValid verifica se a camada de mapa é válida
func (t TileLayer) IsValid() bool {
	switch t {
	case TileOpenStreetMap, TileCartoDBPositron, TileEsriWorldStreetMap:
		return true
	}
	return false
}

// URL devolve o template de tiles da camada, no formato esperado pelo Leaflet
func (t TileLayer) URL() string {
	switch t {
	case TileOpenStreetMap:
		return "https://tile.openstreetmap.org/{z}/{x}/{y}.png"
	case TileEsriWorldStreetMap:
		return "https://server.arcgisonline.com/ArcGIS/rest/services/World_Street_Map/MapServer/tile/{z}/{y}/{x}"
	default:
		return "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png"
	}
}

// Attribution devolve o texto de atribuição exigido pelo provedor de tiles
func (t TileLayer) Attribution() string {
	switch t {
	case TileOpenStreetMap:
		return `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
	case TileEsriWorldStreetMap:
		return `Tiles &copy; Esri &mdash; Source: Esri, DeLorme, NAVTEQ, USGS, Intermap, iPC, NRCAN, Esri Japan, METI, Esri China (Hong Kong), Esri (Thailand), TomTom, 2012`
	default:
		return `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors &copy; <a href="https://carto.com/attributions">CARTO</a>`
	}
}

// TileLayers enumera as camadas disponíveis, na ordem de exibição do seletor
func TileLayers() []TileLayer {
	return []TileLayer{TileOpenStreetMap, TileCartoDBPositron, TileEsriWorldStreetMap}
}

// MapOptions são as opções de exibição imutáveis de um passe de renderização.
type MapOptions struct {
	Layer    TileLayer
	Zoom     int
	IconSize int
}

// MapQuery representa os parâmetros de exibição do mapa
// @Description Parâmetros opcionais de exibição: camada, zoom inicial e tamanho do ícone.
type MapQuery struct {
	// Camada de mapa: OpenStreetMap, CartoDB positron ou Esri WorldStreetMap
	Layer string `form:"layer" example:"CartoDB positron" enums:"OpenStreetMap,CartoDB positron,Esri WorldStreetMap"`
	// Zoom inicial (1-8, default: 3)
	Zoom int `form:"zoom" example:"3" minimum:"1" maximum:"8"`
	// Tamanho do ícone em pixels (24-72, passo 2, default: 44)
	IconSize int `form:"icon_size" example:"44" minimum:"24" maximum:"72"`
}

// Options resolve a query em opções de exibição: vazios recebem os defaults e
// valores fora dos limites são ajustados, como os controles originais fariam.
// Camada desconhecida é o único caso de erro.
func (q *MapQuery) Options(defaults MapOptions) (MapOptions, error) {
	opts := defaults

	if q.Layer != "" {
		layer := TileLayer(q.Layer)
		if !layer.IsValid() {
			return MapOptions{}, ErrInvalidTileLayer
		}
		opts.Layer = layer
	}

	if q.Zoom != 0 {
		opts.Zoom = clamp(q.Zoom, MinZoom, MaxZoom)
	}

	if q.IconSize != 0 {
		size := clamp(q.IconSize, MinIconSize, MaxIconSize)
		size -= size % IconSizeStep
		opts.IconSize = size
	}

	return opts, nil
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
