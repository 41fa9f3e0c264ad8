package models

import "errors"

var (
	ErrNotAList         = errors.New("o arquivo de escritórios deve conter uma lista de escritórios")
	ErrNoValidOffices   = errors.New("nenhum escritório válido encontrado")
	ErrInvalidTileLayer = errors.New("camada de mapa inválida (use: OpenStreetMap, CartoDB positron, Esri WorldStreetMap)")
)
