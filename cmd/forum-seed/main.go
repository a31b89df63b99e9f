// Seed tool: wipes the database and fills it with sample threads.
// Run with: go run ./cmd/forum-seed -config_folder config
package main

import (
	"flag"
	"os"

	"github.com/coding-gurus/forum/internal/config"
	"github.com/coding-gurus/forum/internal/domain"
	"github.com/coding-gurus/forum/internal/logger"
	"github.com/coding-gurus/forum/internal/storage/pg"
)

const sampleContent = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, " +
	"sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. " +
	"Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris " +
	"nisi ut aliquip ex ea commodo consequat."

func main() {
	var configFolder string
	var count int
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.IntVar(&count, "count", 10, "number of sample threads")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.Log.Level, cfg.Public.Log.JSON)

	storage, err := pg.New(cfg)
	if err != nil {
		logger.Log.Error("failed to connect to db", "error", err)
		os.Exit(1)
	}
	defer storage.Cleanup()

	if err := storage.Reset(); err != nil {
		logger.Log.Error("failed to wipe existing data", "error", err)
		os.Exit(1)
	}

	for i := 0; i < count; i++ {
		_, err := storage.CreateThread(domain.ThreadCreationData{
			Title:   "Sample thread title",
			Content: sampleContent,
		})
		if err != nil {
			logger.Log.Error("failed to create sample thread", "error", err)
			os.Exit(1)
		}
	}

	logger.Log.Info("seeded database", "threads", count)
}
