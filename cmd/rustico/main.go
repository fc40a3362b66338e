package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adiaz/rustico/internal/accounts"
	"github.com/adiaz/rustico/internal/api"
	"github.com/adiaz/rustico/internal/config"
	"github.com/adiaz/rustico/internal/logger"
	"github.com/adiaz/rustico/internal/movements"
	"github.com/adiaz/rustico/internal/store"
	"github.com/adiaz/rustico/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, closer, err := logger.New(cfg.Log.File)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	session := store.NewSession()
	alerts := store.NewAlerts()

	httpClient := &http.Client{Timeout: cfg.Server.Timeout}
	client := api.NewClient(cfg.Server.BaseURL, httpClient, zl, session.LogOut)

	movs := movements.New(client, zl)
	accts := accounts.NewLoader(client, zl)

	p := tea.NewProgram(
		tui.New(ctx, cfg, client, session, alerts, movs, accts),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}
