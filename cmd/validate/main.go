package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/capco-latam/app-offices-map/internal/config"
	"github.com/capco-latam/app-offices-map/internal/offices"
)

// Checador offline do arquivo de escritórios: roda a mesma carga e validação
// do servidor e imprime o resultado, sem subir o mapa. Problemas por registro
// não falham a execução, como não impedem o mapa no servidor; só as condições
// fatais (arquivo ilegível, não-lista, zero válidos) saem com código 1.
func main() {
	cfg := config.LoadConfig()

	file := flag.String("file", cfg.OfficesFile, "Caminho do arquivo YAML de escritórios")
	quiet := flag.Bool("quiet", false, "Imprime apenas o resumo, sem os problemas por registro")
	flag.Parse()

	records, err := offices.Load(*file)
	if err != nil {
		log.Fatalf("Erro: %v", err)
	}

	valids, problems := offices.Validate(records)

	if !*quiet {
		for _, p := range problems {
			fmt.Println(p)
		}
	}

	fmt.Println("=== Resumo da validação ===")
	fmt.Printf("Arquivo:         %s\n", *file)
	fmt.Printf("Total:           %d\n", len(records))
	fmt.Printf("Válidos:         %d\n", len(valids))
	fmt.Printf("Com problemas:   %d\n", len(problems))

	if len(valids) == 0 {
		fmt.Println("Nenhum escritório válido encontrado")
		os.Exit(1)
	}
}
