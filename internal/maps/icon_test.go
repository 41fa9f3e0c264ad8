package maps

import (
	"strings"
	"testing"
)

func TestRenderIconImagemDireta(t *testing.T) {
	spec := RenderIcon("https://x.test/logo.PNG", 44)

	if spec.SizePx != 44 {
		t.Errorf("SizePx = %d, esperado 44", spec.SizePx)
	}
	if spec.Anchor != 22 {
		t.Errorf("Anchor = %d, esperado o centro exato 22", spec.Anchor)
	}
	if !strings.Contains(spec.HTML, "<img") {
		t.Errorf("ícone de imagem direta deve conter <img>: %q", spec.HTML)
	}
	if !strings.Contains(spec.HTML, "https://x.test/logo.PNG") {
		t.Errorf("HTML deve referenciar a URL da imagem: %q", spec.HTML)
	}
	if !strings.Contains(spec.HTML, "border-radius:50%") {
		t.Errorf("ícone deve ser circular: %q", spec.HTML)
	}
	if !strings.Contains(spec.HTML, "width:44px") {
		t.Errorf("ícone deve ter exatamente o diâmetro pedido: %q", spec.HTML)
	}
}

func TestRenderIconFallback(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"sem URL", ""},
		{"sem extensão de imagem", "https://x.test/profile?id=1"},
		{"extensão não reconhecida", "https://x.test/doc.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := RenderIcon(tt.url, 44)

			if strings.Contains(spec.HTML, "<img") {
				t.Errorf("fallback não deve conter <img>: %q", spec.HTML)
			}
			if !strings.Contains(spec.HTML, "#c4c4c4") {
				t.Errorf("fallback deve usar a cor neutra: %q", spec.HTML)
			}
			if spec.SizePx != 44 || spec.Anchor != 22 {
				t.Errorf("fallback mantém tamanho e âncora: SizePx=%d Anchor=%d", spec.SizePx, spec.Anchor)
			}
		})
	}
}

func TestRenderIconAncoraDiametroImpar(t *testing.T) {
	spec := RenderIcon("", 45)
	if spec.Anchor != 22 {
		t.Errorf("Anchor = %d, esperado 22 (divisão inteira)", spec.Anchor)
	}
}

func TestRenderIconURLInsegura(t *testing.T) {
	spec := RenderIcon("javascript:alert(1);//logo.png", 44)

	if strings.Contains(spec.HTML, "javascript:alert") {
		t.Errorf("URL com esquema inseguro não pode chegar crua à marcação: %q", spec.HTML)
	}
}
