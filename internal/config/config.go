package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr string

	BankPath string // question bank JSON; built-in bank when empty/unreadable

	HistoryDriver string // file|sqlite|postgres
	HistoryPath   string // for file driver
	DBDSN         string // for sqlite/postgres drivers

	ExamDurationSec int

	AuthHMACSecret string
	CORSOrigins    []string
}

func FromEnv() Config {
	return Config{
		HTTPAddr:        envOr("HTTP_ADDR", ":8080"),
		BankPath:        envOr("BANK_PATH", "./data/questions.json"),
		HistoryDriver:   envOr("HISTORY_DRIVER", "file"),
		HistoryPath:     envOr("HISTORY_PATH", "./data/history.json"),
		DBDSN:           envOr("DB_DSN", ""),
		ExamDurationSec: envInt("EXAM_DURATION_SEC", 1800),
		AuthHMACSecret:  envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		CORSOrigins:     csvOr("CORS_ORIGINS", "http://localhost:3000"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
