package models

import (
	"errors"
	"testing"
)

func defaultOptions() MapOptions {
	return MapOptions{
		Layer:    DefaultTileLayer,
		Zoom:     DefaultZoom,
		IconSize: DefaultIconSize,
	}
}

func TestMapQueryOptions(t *testing.T) {
	tests := []struct {
		name     string
		query    MapQuery
		expected MapOptions
	}{
		{
			name:     "query vazia recebe os defaults",
			query:    MapQuery{},
			expected: MapOptions{Layer: TileCartoDBPositron, Zoom: 3, IconSize: 44},
		},
		{
			name:     "valores dentro dos limites passam intactos",
			query:    MapQuery{Layer: "OpenStreetMap", Zoom: 5, IconSize: 60},
			expected: MapOptions{Layer: TileOpenStreetMap, Zoom: 5, IconSize: 60},
		},
		{
			name:     "zoom acima do limite é ajustado",
			query:    MapQuery{Zoom: 15},
			expected: MapOptions{Layer: TileCartoDBPositron, Zoom: 8, IconSize: 44},
		},
		{
			name:     "zoom abaixo do limite é ajustado",
			query:    MapQuery{Zoom: -2},
			expected: MapOptions{Layer: TileCartoDBPositron, Zoom: 1, IconSize: 44},
		},
		{
			name:     "tamanho de ícone ímpar desce para o par",
			query:    MapQuery{IconSize: 45},
			expected: MapOptions{Layer: TileCartoDBPositron, Zoom: 3, IconSize: 44},
		},
		{
			name:     "tamanho de ícone acima do limite é ajustado",
			query:    MapQuery{IconSize: 100},
			expected: MapOptions{Layer: TileCartoDBPositron, Zoom: 3, IconSize: 72},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.query.Options(defaultOptions())
			if err != nil {
				t.Fatalf("Options() erro inesperado: %v", err)
			}
			if opts != tt.expected {
				t.Errorf("Options() = %+v, esperado %+v", opts, tt.expected)
			}
		})
	}
}

func TestMapQueryOptionsCamadaDesconhecida(t *testing.T) {
	q := MapQuery{Layer: "Google Satellite"}

	_, err := q.Options(defaultOptions())
	if !errors.Is(err, ErrInvalidTileLayer) {
		t.Errorf("Options() = %v, esperado ErrInvalidTileLayer", err)
	}
}

func TestTileLayerIsValid(t *testing.T) {
	for _, layer := range TileLayers() {
		if !layer.IsValid() {
			t.Errorf("camada enumerada deve ser válida: %q", layer)
		}
		if layer.URL() == "" {
			t.Errorf("camada %q sem template de tiles", layer)
		}
		if layer.Attribution() == "" {
			t.Errorf("camada %q sem atribuição", layer)
		}
	}

	if TileLayer("Stamen Toner").IsValid() {
		t.Error("camada fora do conjunto não pode ser válida")
	}
}
