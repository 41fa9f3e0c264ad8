package maps

import (
	"bytes"
	"html/template"

	"github.com/capco-latam/app-offices-map/internal/models"
)

// Faixa de largura do popup, independente do conteúdo
const (
	popupMinWidth = 320
	popupMaxWidth = 360
)

type popupData struct {
	models.Office
	ShowImage bool
}

// Os campos vêm dos dados e passam pelo escape contextual do html/template
// antes de entrar na marcação.
var popupTmpl = template.Must(template.New("popup").Parse(`
<div style="font-family: Inter, system-ui, -apple-system, Segoe UI, Roboto, Arial; width: 320px;">
  <div style="border-radius: 16px; box-shadow: 0 8px 24px rgba(0,0,0,0.12); overflow: hidden; border: 1px solid #e6e6e6;">
    <div style="height: 140px; background:#f6f6f6; display:flex; align-items:center; justify-content:center;">
      {{if .ShowImage}}<img src="{{.CardImageURL}}" alt="office" style="max-width:100%; max-height:140px; display:block;" />{{else}}<div style="color:#999;">Sem imagem (use URL direta de imagem)</div>{{end}}
    </div>
    <div style="padding: 12px 14px;">
      <div style="font-size: 14px; color:#6b7280; margin-bottom: 2px;">{{.City}} · {{.Region}}</div>
      <div style="font-weight: 700; font-size: 16px; line-height: 1.2; margin-bottom: 8px;">{{.Nome}}</div>
      <div style="font-size: 13px; color:#111827; margin-bottom: 6px;">📍 {{.Address}}</div>
      <div style="font-size: 13px; color:#111827; margin-bottom: 6px;">☎️ {{.Contact}}</div>
      <div style="margin-top: 8px;">
        <a href="{{.CapcoHub}}" target="_blank" rel="noopener noreferrer" style="text-decoration:none; font-size: 13px; font-weight:600; color:#2563eb;">Abrir CapcoHub →</a>
      </div>
    </div>
  </div>
</div>
`))

// RenderPopup monta o conteúdo do popup de um escritório: região de imagem
// (ou aviso pedindo URL direta de imagem), linha de localidade cidade·região,
// nome em destaque, endereço, contato e link externo para o CapcoHub aberto em
// outra aba, sem vazar referrer nem opener.
func RenderPopup(o models.Office) models.PopupSpec {
	var buf bytes.Buffer
	_ = popupTmpl.Execute(&buf, popupData{Office: o, ShowImage: IsDirectImage(o.CardImageURL)})
	return models.PopupSpec{
		HTML:     buf.String(),
		MinWidth: popupMinWidth,
		MaxWidth: popupMaxWidth,
	}
}
