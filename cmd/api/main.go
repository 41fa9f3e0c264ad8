package main

import (
	"log"

	_ "github.com/capco-latam/app-offices-map/docs"
	"github.com/capco-latam/app-offices-map/internal/api/routes"
	"github.com/capco-latam/app-offices-map/internal/config"
	"github.com/capco-latam/app-offices-map/internal/observability"
)

// @title           CAPCO Offices Map API
// @version         1.0
// @description     Mapa interativo dos escritórios CAPCO: cada registro válido do arquivo vira um marcador com ícone redondo e popup informativo

// @contact.name   CAPCO LATAM
// @contact.url    https://www.capco.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080

func main() {

	cfg := config.LoadConfig()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	r := routes.SetupRouter(cfg)

	log.Printf("Servidor iniciado na porta %s", cfg.ServerPort)
	err := r.Run(":" + cfg.ServerPort)
	if err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}
}
