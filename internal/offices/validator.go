package offices

import (
	"fmt"
	"strings"

	"github.com/capco-latam/app-offices-map/internal/models"
)

// Validate filtra os registros brutos em escritórios válidos e descrições de
// problema legíveis, uma por registro rejeitado (posições 1-based). A validação
// é tudo-ou-nada por registro: qualquer campo obrigatório ausente ou coordenada
// não coagível exclui o registro inteiro do mapa. Nunca devolve erro; problemas
// por registro viram dados, e o caso de zero válidos fica a cargo do chamador.
func Validate(recs []models.RawRecord) ([]models.Office, []string) {
	valids := make([]models.Office, 0, len(recs))
	var errs []string

	for i, rec := range recs {
		item := i + 1

		var missing []string
		for _, field := range models.RequiredForMarker {
			if rec.IsMissing(field) {
				missing = append(missing, field)
			}
		}
		for _, field := range models.RequiredForCard {
			if rec.IsMissing(field) {
				missing = append(missing, field)
			}
		}
		if !rec.HasAddress() {
			missing = append(missing, models.FieldAdress+"/"+models.FieldAddress)
		}
		if len(missing) > 0 {
			errs = append(errs, fmt.Sprintf("Item %d: faltando campos %s", item, strings.Join(missing, ", ")))
			continue
		}

		lat, latOK := rec.FloatValue(models.FieldLatitude)
		lon, lonOK := rec.FloatValue(models.FieldLongitude)
		if !latOK || !lonOK {
			errs = append(errs, fmt.Sprintf("Item %d: latitude/longitude inválidas", item))
			continue
		}

		valids = append(valids, models.Office{
			Ordinal:      item,
			Latitude:     lat,
			Longitude:    lon,
			City:         rec.StringValue(models.FieldCity),
			Nome:         rec.StringValue(models.FieldNome),
			Region:       rec.StringValue(models.FieldRegion),
			CapcoHub:     rec.StringValue(models.FieldCapcoHub),
			Contact:      rec.StringValue(models.FieldContact),
			Address:      rec.Address(),
			CardImageURL: rec.OptionalURL(models.FieldCardImageURL),
			IconImageURL: rec.OptionalURL(models.FieldIconImageURL),
		})
	}

	return valids, errs
}
