// Package web embute os templates HTML servidos pela aplicação.
package web

import (
	"embed"
	"encoding/json"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates devolve o conjunto de templates da aplicação, pronto para ser
// instalado no router com SetHTMLTemplate.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

// MarshalJS serializa um valor como JSON pronto para interpolação em contexto
// de script dos templates, sem passar pelo escape de HTML.
func MarshalJS(value interface{}) (template.JS, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}
