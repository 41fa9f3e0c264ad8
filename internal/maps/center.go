// Package maps deriva os elementos visuais do mapa a partir dos escritórios
// validados: centro do viewport, ícones redondos, popups e marcadores.
package maps

import "github.com/capco-latam/app-offices-map/internal/models"

// Center calcula o centro inicial do viewport: média aritmética das latitudes
// e das longitudes, de forma independente. É só uma dica de viewport, sem
// ponderação nem correção geodésica. Pré-condição: lista não vazia (o chamador
// já abortou com ErrNoValidOffices quando a validação não deixou nada).
func Center(offices []models.Office) (float64, float64) {
	var latSum, lonSum float64
	for _, o := range offices {
		latSum += o.Latitude
		lonSum += o.Longitude
	}
	n := float64(len(offices))
	return latSum / n, lonSum / n
}
