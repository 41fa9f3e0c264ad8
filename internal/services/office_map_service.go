package services

import (
	"context"
	"log"

	"github.com/capco-latam/app-offices-map/internal/maps"
	middlewares "github.com/capco-latam/app-offices-map/internal/middleware"
	"github.com/capco-latam/app-offices-map/internal/models"
	"github.com/capco-latam/app-offices-map/internal/offices"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// OfficeMapService executa o passe completo de montagem do mapa: carga,
// validação, centro e marcadores, estritamente em sequência. Sem estado entre
// passes; o arquivo é relido a cada montagem (datasets pequenos e estáticos,
// escritórios na casa das dezenas).
type OfficeMapService struct {
	filePath string
}

func NewOfficeMapService(filePath string) *OfficeMapService {
	return &OfficeMapService{filePath: filePath}
}

// Build monta o mapa com as opções do passe. Devolve o mapa renderizável, os
// problemas de validação por registro e o erro fatal, quando houver: falha de
// leitura/parse do arquivo ou nenhum escritório válido. Nos dois casos fatais
// nada é renderizado; problemas por registro acompanham o mapa sem impedi-lo,
// e acompanham também o erro de zero válidos, para exibição junto da mensagem.
func (s *OfficeMapService) Build(ctx context.Context, opts models.MapOptions) (*models.RenderableMap, []string, error) {
	_, span := otel.Tracer("offices").Start(ctx, "BuildMap")
	defer span.End()

	span.SetAttributes(
		attribute.String("map.layer", string(opts.Layer)),
		attribute.Int("map.zoom", opts.Zoom),
		attribute.Int("map.icon_size", opts.IconSize),
	)

	records, err := offices.Load(s.filePath)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Load offices failed")
		return nil, nil, err
	}

	valids, problems := offices.Validate(records)
	span.SetAttributes(
		attribute.Int("offices.total", len(records)),
		attribute.Int("offices.valid", len(valids)),
		attribute.Int("offices.problems", len(problems)),
	)

	if len(valids) == 0 {
		span.SetStatus(codes.Error, "No valid offices")
		return nil, problems, models.ErrNoValidOffices
	}

	centerLat, centerLon := maps.Center(valids)
	view := models.MapViewSpec{
		Layer:     opts.Layer,
		Zoom:      opts.Zoom,
		IconSize:  opts.IconSize,
		CenterLat: centerLat,
		CenterLon: centerLon,
	}

	m := maps.Assemble(valids, view)

	if id := middlewares.RequestIDFromContext(ctx); id != "" {
		log.Printf("[%s] Mapa montado: %d escritórios válidos de %d, %d problemas", id, len(valids), len(records), len(problems))
	} else {
		log.Printf("Mapa montado: %d escritórios válidos de %d, %d problemas", len(valids), len(records), len(problems))
	}

	return m, problems, nil
}

// FilePath devolve o caminho do arquivo de escritórios servido.
func (s *OfficeMapService) FilePath() string {
	return s.filePath
}
