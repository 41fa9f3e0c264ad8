package config

import (
	"testing"

	"github.com/capco-latam/app-offices-map/internal/models"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, esperado 8080", cfg.ServerPort)
	}
	if cfg.OfficesFile != "data/offices.yaml" {
		t.Errorf("OfficesFile = %q", cfg.OfficesFile)
	}
	if cfg.MapDefaultLayer != string(models.DefaultTileLayer) {
		t.Errorf("MapDefaultLayer = %q", cfg.MapDefaultLayer)
	}
	if cfg.TracingEnabled {
		t.Error("tracing deve vir desabilitado por padrão")
	}
}

func TestLoadConfigSobrescritaPorEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("OFFICES_FILE", "/tmp/offices.yaml")
	t.Setenv("MAP_DEFAULT_ZOOM", "5")
	t.Setenv("MAP_DEFAULT_ICON_SIZE", "60")

	cfg := LoadConfig()

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q", cfg.ServerPort)
	}
	if cfg.OfficesFile != "/tmp/offices.yaml" {
		t.Errorf("OfficesFile = %q", cfg.OfficesFile)
	}
	if cfg.MapDefaultZoom != 5 || cfg.MapDefaultIconSize != 60 {
		t.Errorf("defaults do mapa = zoom %d, ícone %d", cfg.MapDefaultZoom, cfg.MapDefaultIconSize)
	}
}

func TestMapDefaults(t *testing.T) {
	cfg := &Config{
		MapDefaultLayer:    "OpenStreetMap",
		MapDefaultZoom:     4,
		MapDefaultIconSize: 48,
	}

	opts := cfg.MapDefaults()
	if opts.Layer != models.TileOpenStreetMap || opts.Zoom != 4 || opts.IconSize != 48 {
		t.Errorf("MapDefaults() = %+v", opts)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("MAP_DEFAULT_ZOOM", "não-numérico")

	if got := getEnvInt("MAP_DEFAULT_ZOOM", 3); got != 3 {
		t.Errorf("valor não numérico deve cair no default: %d", got)
	}
}
