// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP do servidor (default: 8080)
//
// ## Dados
//   - OFFICES_FILE: Caminho do arquivo YAML de escritórios (default: data/offices.yaml)
//
// ## Mapa
//   - PAGE_TITLE: Título da página do mapa (default: CAPCO Interactive Map)
//   - MAP_DEFAULT_LAYER: Camada de tiles inicial (default: CartoDB positron)
//   - MAP_DEFAULT_ZOOM: Zoom inicial, 1 a 8 (default: 3)
//   - MAP_DEFAULT_ICON_SIZE: Lado do ícone em pixels, 24 a 72, passo 2 (default: 44)
//
// ## Observabilidade
//   - TRACING_ENABLED: Habilita exportação de traces OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint gRPC do collector (default: localhost:4317)
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/capco-latam/app-offices-map/internal/models"
)

type Config struct {
	ServerPort string `validate:"required"`

	OfficesFile string `validate:"required"`

	PageTitle          string `validate:"required"`
	MapDefaultLayer    string `validate:"required"`
	MapDefaultZoom     int    `validate:"min=1,max=8"`
	MapDefaultIconSize int    `validate:"min=24,max=72"`

	TracingEnabled  bool
	TracingEndpoint string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		OfficesFile: getEnv("OFFICES_FILE", "data/offices.yaml"),

		PageTitle:          getEnv("PAGE_TITLE", "CAPCO Interactive Map"),
		MapDefaultLayer:    getEnv("MAP_DEFAULT_LAYER", string(models.DefaultTileLayer)),
		MapDefaultZoom:     getEnvInt("MAP_DEFAULT_ZOOM", models.DefaultZoom),
		MapDefaultIconSize: getEnvInt("MAP_DEFAULT_ICON_SIZE", models.DefaultIconSize),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		log.Fatalf("Configuração inválida: %v", err)
	}

	if !models.TileLayer(cfg.MapDefaultLayer).IsValid() {
		log.Fatalf("MAP_DEFAULT_LAYER inválida: %q (use: OpenStreetMap, CartoDB positron, Esri WorldStreetMap)", cfg.MapDefaultLayer)
	}

	if cfg.MapDefaultIconSize%models.IconSizeStep != 0 {
		log.Fatalf("MAP_DEFAULT_ICON_SIZE inválido: %d (use um valor par entre %d e %d)", cfg.MapDefaultIconSize, models.MinIconSize, models.MaxIconSize)
	}

	return cfg
}

// MapDefaults devolve as opções de exibição padrão do servidor, usadas quando
// a requisição não escolhe camada, zoom ou tamanho de ícone.
func (c *Config) MapDefaults() models.MapOptions {
	return models.MapOptions{
		Layer:    models.TileLayer(c.MapDefaultLayer),
		Zoom:     c.MapDefaultZoom,
		IconSize: c.MapDefaultIconSize,
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
