package maps

import (
	"html"
	"strings"
	"testing"

	"github.com/capco-latam/app-offices-map/internal/models"
)

func sampleOffice() models.Office {
	return models.Office{
		Ordinal:   1,
		Latitude:  -23.5675,
		Longitude: -46.6932,
		City:      "São Paulo",
		Nome:      "CAPCO São Paulo",
		Region:    "América Latina",
		CapcoHub:  "https://www.capco.com/offices/sao-paulo",
		Contact:   "+55 11 3568-3100",
		Address:   "Av. Brigadeiro Faria Lima, 3477",
	}
}

func TestRenderPopupConteudo(t *testing.T) {
	o := sampleOffice()
	o.CardImageURL = "https://x.test/card.jpg"

	spec := RenderPopup(o)

	// O html/template escapa texto de dados no popup; o "+" do contato sai
	// como &#43;, então as asserções comparam sobre o HTML desescapado.
	rendered := html.UnescapeString(spec.HTML)
	for _, want := range []string{
		"São Paulo · América Latina",
		"CAPCO São Paulo",
		"Av. Brigadeiro Faria Lima, 3477",
		"+55 11 3568-3100",
		"https://x.test/card.jpg",
		"Abrir CapcoHub",
		`target="_blank"`,
		`rel="noopener noreferrer"`,
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("popup deve conter %q", want)
		}
	}

	if !strings.Contains(spec.HTML, "&#43;55 11 3568-3100") {
		t.Errorf("o contato deve chegar escapado à marcação: %q", spec.HTML)
	}

	if spec.MinWidth != 320 || spec.MaxWidth != 360 {
		t.Errorf("faixa de largura = (%d, %d), esperado (320, 360)", spec.MinWidth, spec.MaxWidth)
	}
}

func TestRenderPopupSemImagemDireta(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"sem URL", ""},
		{"URL sem extensão de imagem", "https://x.test/card?id=9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := sampleOffice()
			o.CardImageURL = tt.url

			spec := RenderPopup(o)

			if strings.Contains(spec.HTML, "<img") {
				t.Errorf("sem imagem direta o popup não deve conter <img>: %q", spec.HTML)
			}
			if !strings.Contains(spec.HTML, "Sem imagem (use URL direta de imagem)") {
				t.Errorf("popup deve mostrar o aviso de imagem: %q", spec.HTML)
			}
		})
	}
}

func TestRenderPopupEscapaDados(t *testing.T) {
	o := sampleOffice()
	o.Nome = `<script>alert("x")</script>`
	o.Address = `Rua <b>Sete</b> & Cia`

	spec := RenderPopup(o)

	if strings.Contains(spec.HTML, "<script>") {
		t.Errorf("texto vindo dos dados deve ser escapado: %q", spec.HTML)
	}
	if !strings.Contains(spec.HTML, "&lt;script&gt;") {
		t.Errorf("o nome escapado deve permanecer visível: %q", spec.HTML)
	}
	if strings.Contains(spec.HTML, "<b>Sete</b>") {
		t.Errorf("endereço não pode virar marcação: %q", spec.HTML)
	}
}

func TestRenderPopupLinkInseguro(t *testing.T) {
	o := sampleOffice()
	o.CapcoHub = "javascript:alert(1)"

	spec := RenderPopup(o)

	if strings.Contains(spec.HTML, `href="javascript:alert(1)"`) {
		t.Errorf("esquema inseguro não pode chegar cru ao href: %q", spec.HTML)
	}
}
