package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Nomes de campos de um registro de escritório, como lidos do arquivo YAML.
const (
	FieldLatitude     = "latitude"
	FieldLongitude    = "longitude"
	FieldCity         = "city"
	FieldNome         = "nome"
	FieldRegion       = "region"
	FieldCapcoHub     = "CapcoHub"
	FieldContact      = "contact"
	FieldAdress       = "adress" // grafia tolerada nos arquivos existentes
	FieldAddress      = "address"
	FieldCardImageURL = "card_image_url"
	FieldIconImageURL = "icon_image_url"
)

// RequiredForMarker são os campos sem os quais o marcador não pode ser posicionado.
var RequiredForMarker = []string{FieldLatitude, FieldLongitude, FieldCity}

// RequiredForCard são os campos sem os quais o popup não pode ser montado.
var RequiredForCard = []string{FieldNome, FieldRegion, FieldCapcoHub, FieldContact}

// RawRecord representa um registro de escritório como decodificado do arquivo,
// ainda sem tipagem nem validação.
type RawRecord map[string]interface{}

// Office representa um registro validado: coordenadas numéricas finitas e todos
// os campos necessários para exibição. Produzido exclusivamente pelo validador.
type Office struct {
	Ordinal      int // posição 1-based no arquivo de origem
	Latitude     float64
	Longitude    float64
	City         string
	Nome         string
	Region       string
	CapcoHub     string
	Contact      string
	Address      string
	CardImageURL string
	IconImageURL string
}

// IsMissing informa se o campo está ausente, nulo ou é um NaN numérico.
func (r RawRecord) IsMissing(field string) bool {
	v, ok := r[field]
	if !ok || v == nil {
		return true
	}
	if f, isFloat := v.(float64); isFloat && math.IsNaN(f) {
		return true
	}
	return false
}

// StringValue devolve o valor do campo como texto de exibição. Ausente ou nulo
// vira string vazia; escalares não-string são formatados.
func (r RawRecord) StringValue(field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case uint64:
		return strconv.FormatUint(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FloatValue coage o campo para float64. Aceita números e strings numéricas;
// rejeita booleanos, valores não escalares e resultados não finitos (NaN, ±Inf).
func (r RawRecord) FloatValue(field string) (float64, bool) {
	var f float64
	switch v := r[field].(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint64:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// HasAddress informa se o registro traz endereço em alguma das duas grafias
// aceitas. Basta a chave existir, mesmo com valor nulo.
func (r RawRecord) HasAddress() bool {
	_, misspelled := r[FieldAdress]
	_, spelled := r[FieldAddress]
	return misspelled || spelled
}

// Address devolve o primeiro endereço não vazio entre as duas grafias.
func (r RawRecord) Address() string {
	if s := r.StringValue(FieldAdress); s != "" {
		return s
	}
	return r.StringValue(FieldAddress)
}

// OptionalURL devolve o campo como URL quando o valor bruto é uma string.
// Qualquer outro tipo conta como ausente e ativa o fallback de renderização.
func (r RawRecord) OptionalURL(field string) string {
	s, _ := r[field].(string)
	return s
}
