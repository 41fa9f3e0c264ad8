// Package offices carrega e valida os registros de escritórios usados no mapa.
package offices

import (
	"fmt"
	"os"

	"github.com/capco-latam/app-offices-map/internal/models"
	"gopkg.in/yaml.v3"
)

// Load lê o arquivo de escritórios e devolve os registros brutos na ordem do
// arquivo. O nível superior do documento deve ser uma lista; qualquer outra
// forma (mapeamento único, escalar, documento vazio) é rejeitada com
// models.ErrNotAList. Falhas de leitura ou de parse abortam o passe inteiro;
// não há carga parcial nem retry.
func Load(path string) ([]models.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("erro ao ler %s: %w", path, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("erro ao ler %s: %w", path, models.ErrNotAList)
	}

	// Itens que não são mapeamentos ficam nil e são rejeitados um a um na
	// validação, sem derrubar o restante do arquivo.
	records := make([]models.RawRecord, len(root.Content))
	for i, item := range root.Content {
		var rec models.RawRecord
		if err := item.Decode(&rec); err == nil {
			records[i] = rec
		}
	}

	return records, nil
}
