package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"dolarbot/internal/adapter/llm"
	"dolarbot/internal/agent"
	"dolarbot/internal/config"
	"dolarbot/pkg/logger"
)

func main() {
	log := logger.NewLogger(os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// The chat entry point cannot run without a model credential. The quote
	// HTTP service stays independently operable without it.
	if cfg.Gemini.APIKey == "" {
		log.Error("GEMINI_API_KEY is not set; obtain one at https://aistudio.google.com/")
		os.Exit(1)
	}

	model := llm.NewGemini(cfg.Gemini.BaseURL, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout, log)
	registry := agent.NewRegistry(cfg.Tools.ServerURL, cfg.Tools.Timeout, log)
	orchestrator := agent.NewOrchestrator(model, registry, agent.KeywordClassifier{}, log)

	fmt.Println("💵 CONSULTAS DE DÓLAR USD/ARS")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Tipos disponibles: blue, oficial, bolsa, liqui, turista")
	fmt.Println("Ejemplos:")
	fmt.Println("• 'precio del dólar blue'")
	fmt.Println("• 'evolución del oficial últimos 7 días'")
	fmt.Println("• 'tipos de dólar disponibles'")
	fmt.Println("• 'salir' para terminar")
	fmt.Println(strings.Repeat("=", 50))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n🔍 Tu consulta: ")
		if !scanner.Scan() {
			break
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}

		switch strings.ToLower(question) {
		case "salir", "exit", "quit":
			fmt.Println("👋 ¡Hasta luego!")
			return
		}

		fmt.Println("⏳ Consultando datos...")
		answer, err := orchestrator.Answer(context.Background(), question)
		if err != nil {
			fmt.Printf("\n❌ Error en la consulta: %v\n", err)
			continue
		}

		fmt.Printf("\n📊 Respuesta:\n%s\n", answer)
		fmt.Println(strings.Repeat("-", 60))
	}

	if err := scanner.Err(); err != nil {
		log.Error("Failed to read input", "error", err)
		os.Exit(1)
	}
}
