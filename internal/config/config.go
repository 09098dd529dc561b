package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	OutputDir string

	HTTPTimeoutMs int
	RateLimitRPS  int
	MaxBodyBytes  int64
	UserAgent     string

	SenateRosterURL   string
	SenateVoteBaseURL string
	HouseRosterURL    string
	HouseVoteBaseURL  string

	GCSBucket string

	LogLevel  string
	LogFormat string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "data")),

		HTTPTimeoutMs: getEnvInt("HTTP_TIMEOUT_MS", 30000),
		RateLimitRPS:  getEnvInt("HTTP_RATE_LIMIT_RPS", 2),
		MaxBodyBytes:  int64(getEnvInt("HTTP_MAX_BODY_BYTES", 8<<20)),
		UserAgent:     getEnv("HTTP_USER_AGENT", "rollcall/1.0"),

		SenateRosterURL:   getEnv("SENATE_ROSTER_URL", "https://www.senate.gov/general/contact_information/senators_cfm.xml"),
		SenateVoteBaseURL: getEnv("SENATE_VOTE_BASE_URL", "https://www.senate.gov/legislative/LIS/roll_call_votes"),
		HouseRosterURL:    getEnv("HOUSE_ROSTER_URL", "https://clerk.house.gov/Members/ViewMemberList"),
		HouseVoteBaseURL:  getEnv("HOUSE_VOTE_BASE_URL", "https://clerk.house.gov/Votes"),

		GCSBucket: getEnv("GCS_BUCKET", ""),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(getEnv(key, ""))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
