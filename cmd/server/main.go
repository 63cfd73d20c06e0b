package main

import (
	"flag"
	"net/http"
	"time"

	"go.uber.org/zap"

	"hearts/internal/bots"
	"hearts/internal/config"
	"hearts/internal/engine"
	"hearts/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	logger, err := buildLogger(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := engine.New(seed)
	game.SetChooser(bots.NewRandom(seed).ChooseCard)
	hub := server.NewHub(game, cfg.BotFill, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.WSHandler)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	logger.Info("listening", zap.String("addr", cfg.Addr), zap.Bool("bot_fill", cfg.BotFill))
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func buildLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
