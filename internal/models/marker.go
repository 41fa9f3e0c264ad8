package models

// IconSpec descreve o ícone redondo de um marcador: HTML pronto para o
// DivIcon, lado do quadrado em pixels e âncora centralizada.
type IconSpec struct {
	HTML   string `json:"html"`
	SizePx int    `json:"size_px"`
	Anchor int    `json:"anchor"`
}

// PopupSpec descreve o popup de um marcador, com faixa de largura fixa.
type PopupSpec struct {
	HTML     string `json:"html"`
	MinWidth int    `json:"min_width"`
	MaxWidth int    `json:"max_width"`
}

// MarkerSpec é o marcador derivado de um escritório válido. Criado na
// montagem do mapa e consumido imediatamente pela camada de exibição.
type MarkerSpec struct {
	ID        string    `json:"id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Tooltip   string    `json:"tooltip"`
	Icon      IconSpec  `json:"icon"`
	Popup     PopupSpec `json:"popup"`
}

// MapViewSpec é a configuração de viewport de um passe de renderização:
// opções de exibição mais o centro calculado dos escritórios válidos.
type MapViewSpec struct {
	Layer     TileLayer `json:"layer"`
	Zoom      int       `json:"zoom"`
	IconSize  int       `json:"icon_size"`
	CenterLat float64   `json:"center_lat"`
	CenterLon float64   `json:"center_lon"`
}

// RenderableMap é o mapa montado: viewport e um marcador por escritório
// válido, na ordem do arquivo de origem.
type RenderableMap struct {
	View    MapViewSpec  `json:"view"`
	Markers []MarkerSpec `json:"markers"`
}
