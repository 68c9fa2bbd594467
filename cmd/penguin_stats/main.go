package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ThiagoRGoveia/penguin-stats/internal/config"
	"github.com/ThiagoRGoveia/penguin-stats/internal/parser"
	"github.com/ThiagoRGoveia/penguin-stats/internal/report"
	"github.com/ThiagoRGoveia/penguin-stats/internal/stats"
	"github.com/joho/godotenv"
)

func setup() (*config.Config, *log.Logger, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := log.New(os.Stdout, cfg.LogPrefix, cfg.LogFlags)
	return cfg, logger, nil
}

func execute(cfg *config.Config, logger *log.Logger) error {
	logger.Printf(">>> Looking for: %s", cfg.DataFilePath)

	dataset, err := parser.LoadDataset(cfg.DataFilePath)
	if err != nil {
		return err
	}
	log.Printf("Dataset checksum: %s", dataset.CheckSum)

	if cfg.PrintRecords {
		report.PrintRecords(logger, dataset.Records)
	} else {
		logger.Printf(">>> Rows loaded: %d", len(dataset.Records))
	}

	report.PrintSummary(logger, stats.Summarize(dataset.Records))
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file: %v", err)
	}
	startTime := time.Now()

	cfg, logger, err := setup()
	if err != nil {
		log.Fatal(err)
	}

	if err := execute(cfg, logger); err != nil {
		log.Fatalf("Error during summary: %v\n", err)
	}

	log.Printf("Execution time: %s\n", time.Since(startTime))
}
