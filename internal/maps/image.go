package maps

import "strings"

// Extensões aceitas como referência direta de imagem
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".svg"}

// IsDirectImage informa se a URL aponta diretamente para um arquivo de imagem:
// string não vazia cujo caminho (descartada a query string) termina com uma
// das extensões conhecidas, sem distinção de caixa.
func IsDirectImage(url string) bool {
	if url == "" {
		return false
	}
	path := strings.ToLower(url)
	if i := strings.Index(path, "?"); i >= 0 {
		path = path[:i]
	}
	for _, ext := range imageExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
