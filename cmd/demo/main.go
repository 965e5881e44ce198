package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/fsrpwl/flordiee/internal/config"
	"github.com/fsrpwl/flordiee/internal/logger"
	"github.com/fsrpwl/flordiee/internal/services"
)

const (
	demoChatQuery  = "What are the core departments in FSRPWL?"
	demoDepartment = "Sheriff's Office"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func main() {
	// Best-effort .env load; the mock client works without an API key
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Setup(cfg)

	genAI := services.NewMockGenAIService(cfg.GeminiAPIKey, log)
	chatService := services.NewChatService(genAI, cfg.ModelName, log)
	scenarioService := services.NewScenarioService(genAI, cfg.ModelName, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Println(titleStyle.Render("--- FSRPWL AI Tool Demonstration ---"))

	// Demo 1: grounded chatbot response with sources
	fmt.Println()
	fmt.Println(promptStyle.Render("[DEMO 1] Chatbot Query: " + demoChatQuery))

	chatResponse, err := chatService.GenerateChatResponse(ctx, demoChatQuery)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate chat response: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(sectionStyle.Render("--- AI Chat Response (Grounded) ---"))
	fmt.Println(chatResponse.Text)
	if len(chatResponse.Sources) > 0 {
		fmt.Println("\nSources Used:")
		for _, source := range chatResponse.Sources {
			fmt.Printf("- %s: %s\n", source.Title, source.URI)
		}
	}

	fmt.Println("\n" + strings.Repeat("=", 50) + "\n")

	// Demo 2: creative scenario response
	fmt.Println(promptStyle.Render("[DEMO 2] Scenario Request for: " + demoDepartment))

	scenario, err := scenarioService.GenerateRPScenario(ctx, demoDepartment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate scenario: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(sectionStyle.Render("--- AI Scenario Response (Creative) ---"))
	fmt.Println(scenario)

	fmt.Println()
	fmt.Println(titleStyle.Render("--- Demonstration Complete ---"))
}
