package main

import (
	"log"
	"os"

	"go-purchase-tracker/internal/tui"
	"go-purchase-tracker/pkg/client"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	token := os.Getenv("API_TOKEN")

	api := client.New(baseURL, token, nil)
	vm := tui.NewPurchaseViewModel(api, tui.NewQueryCache())

	p := tea.NewProgram(tui.NewModel(vm), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
