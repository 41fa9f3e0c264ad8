package maps

import (
	"bytes"
	"html/template"

	"github.com/capco-latam/app-offices-map/internal/models"
)

// Cor do círculo quando o escritório não tem logo utilizável
const neutralIconColor = "#c4c4c4"

type iconData struct {
	URL      string
	Diameter int
}

var iconImageTmpl = template.Must(template.New("icon_image").Parse(
	`<div style="width:{{.Diameter}}px;height:{{.Diameter}}px;border-radius:50%;overflow:hidden;box-shadow:0 0 0 2px rgba(0,0,0,0.12), 0 6px 14px rgba(0,0,0,0.2);"><img src="{{.URL}}" style="width:100%;height:100%;object-fit:cover;display:block;" /></div>`))

var iconFallbackTmpl = template.Must(template.New("icon_fallback").Parse(
	`<div style="width:{{.Diameter}}px;height:{{.Diameter}}px;border-radius:50%;background:` + neutralIconColor + `;box-shadow:0 0 0 2px rgba(0,0,0,0.12), 0 6px 14px rgba(0,0,0,0.2);"></div>`))

// RenderIcon deriva o ícone redondo de um marcador. URL que passa no teste de
// imagem direta vira imagem circular recortada com exatamente diameter pixels;
// qualquer outro caso (ausente, tipo errado, sem extensão de imagem) vira um
// círculo preenchido na cor neutra, do mesmo tamanho. A âncora fica no centro
// exato do círculo. Nunca falha: toda entrada produz um ícone renderizável.
func RenderIcon(iconURL string, diameter int) models.IconSpec {
	var buf bytes.Buffer
	if IsDirectImage(iconURL) {
		_ = iconImageTmpl.Execute(&buf, iconData{URL: iconURL, Diameter: diameter})
	} else {
		_ = iconFallbackTmpl.Execute(&buf, iconData{Diameter: diameter})
	}
	return models.IconSpec{
		HTML:   buf.String(),
		SizePx: diameter,
		Anchor: diameter / 2,
	}
}
