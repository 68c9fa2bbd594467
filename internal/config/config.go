package config

import (
	"fmt"
	"os"
	"strconv"
)

const DefaultDataFilePath = "project/penguins.csv"

type Config struct {
	DataFilePath string
	PrintRecords bool
	LogPrefix    string
	LogFlags     int
}

func New() (*Config, error) {
	cfg := &Config{
		DataFilePath: DefaultDataFilePath,
		PrintRecords: true,
		LogPrefix:    os.Getenv("LOG_PREFIX"),
		LogFlags:     0,
	}

	if path := os.Getenv("PENGUINS_CSV_PATH"); path != "" {
		cfg.DataFilePath = path
	}

	var err error
	cfg.PrintRecords, err = getEnvAsBool("PRINT_RECORDS", cfg.PrintRecords)
	if err != nil {
		return nil, err
	}

	cfg.LogFlags, err = getEnvAsInt("LOG_FLAGS", cfg.LogFlags)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: expected an integer, got '%s'", key, valueStr)
	}

	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s: expected a boolean, got '%s'", key, valueStr)
	}

	return value, nil
}
