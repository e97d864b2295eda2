package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	DataFile  string
	LogLevel  string
	LogFormat string
	// Lang is the startup locale ("en" or "ar"); switchable at runtime.
	Lang string
	// Theme is the startup terminal theme ("light" or "dark").
	Theme string
	// SpeechRate is forwarded to the speech synthesizer (1.0 = normal).
	SpeechRate float64
	// AnswerAdvance is the pause between answer feedback and the next
	// question (or the completion summary).
	AnswerAdvance time.Duration
	// ChunkGap is the pause between consecutive narration chunks.
	ChunkGap time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		DataFile:      getEnv("DATA_FILE", "./audiolearn.json"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "pretty"),
		Lang:          getEnv("LANG_CODE", "en"),
		Theme:         getEnv("THEME", "light"),
		SpeechRate:    getEnvFloat("SPEECH_RATE", 0.9),
		AnswerAdvance: time.Duration(getEnvInt("ANSWER_ADVANCE_MS", 2000)) * time.Millisecond,
		ChunkGap:      time.Duration(getEnvInt("CHUNK_GAP_MS", 100)) * time.Millisecond,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
