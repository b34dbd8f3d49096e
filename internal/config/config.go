package config

import (
	"os"
	"strconv"
)

type Config struct {
	Root         string
	SrcDir       string
	LogLevel     string
	LogFormat    string
	HistoryLimit int
}

func Load() Config {
	return Config{
		Root:         getenv("NEWSSENSE_ROOT", "."),
		SrcDir:       getenv("NEWSSENSE_SRC_DIR", "src"),
		LogLevel:     getenv("NEWSSENSE_LOG_LEVEL", "info"),
		LogFormat:    getenv("NEWSSENSE_LOG_FORMAT", "text"),
		HistoryLimit: getenvInt("NEWSSENSE_HISTORY_LIMIT", 10),
	}
}

func getenv(k, fallback string) string {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	return v
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
