package maps

import (
	"testing"

	"github.com/capco-latam/app-offices-map/internal/models"
)

func TestCenter(t *testing.T) {
	tests := []struct {
		name    string
		offices []models.Office
		wantLat float64
		wantLon float64
	}{
		{
			name: "dois escritórios",
			offices: []models.Office{
				{Latitude: 10.0, Longitude: 20.0},
				{Latitude: 20.0, Longitude: 40.0},
			},
			wantLat: 15.0,
			wantLon: 30.0,
		},
		{
			name:    "um escritório é o próprio centro",
			offices: []models.Office{{Latitude: -23.5675, Longitude: -46.6932}},
			wantLat: -23.5675,
			wantLon: -46.6932,
		},
		{
			name: "hemisférios opostos se cancelam",
			offices: []models.Office{
				{Latitude: 30.0, Longitude: -60.0},
				{Latitude: -30.0, Longitude: 60.0},
			},
			wantLat: 0.0,
			wantLon: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon := Center(tt.offices)
			if lat != tt.wantLat || lon != tt.wantLon {
				t.Errorf("Center() = (%v, %v), esperado (%v, %v)", lat, lon, tt.wantLat, tt.wantLon)
			}
		})
	}
}
