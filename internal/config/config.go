package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// JWTConfig defines issuer/secret pair for auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                    string
	MongoURI                string
	MongoDatabase           string
	AccountCollection       string
	ReportCollection        string
	VisitPlanCollection     string
	RAEntryCollection       string
	NotificationCollection  string
	Timeout                 time.Duration
	Timezone                string
	ServerLog               *log.Logger
	JWTConfigs              []JWTConfig
	JWTAudience             string
	AppBaseURL              string
	NotificationIconURL     string
	FirebaseProjectID       string
	FirebaseCredentialsFile string
	AllowedOrigins          []string
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	allowedOrigins := parseList("API_ALLOWED_ORIGINS", []string{"*"})

	appBaseURL := strings.TrimSpace(os.Getenv("APP_BASE_URL"))
	if appBaseURL == "" {
		log.Fatal("APP_BASE_URL must be configured")
	}
	appBaseURL = strings.TrimRight(appBaseURL, "/")

	iconURL := strings.TrimSpace(os.Getenv("NOTIFICATION_ICON_URL"))
	if iconURL == "" {
		iconURL = appBaseURL + "/favicon.ico"
	}

	var jwtConfigs []JWTConfig
	if secret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_JWT_ISSUER", "daily-pulse-auth"),
			Secret: []byte(secret),
		})
	}

	if len(jwtConfigs) == 0 {
		log.Fatal("JWT secret not configured. Set AUTH_JWT_SECRET.")
	}

	jwtAudience := strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE"))

	firebaseProject := strings.TrimSpace(os.Getenv("FIREBASE_PROJECT_ID"))
	firebaseCredentials := strings.TrimSpace(os.Getenv("FIREBASE_CREDENTIALS_FILE"))

	cfg := Config{
		Addr:                    envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:                envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:           envOrDefault("MONGO_DB", "daily-pulse"),
		AccountCollection:       envOrDefault("ACCOUNT_COLLECTION", "users"),
		ReportCollection:        envOrDefault("REPORT_COLLECTION", "reports"),
		VisitPlanCollection:     envOrDefault("VISIT_PLAN_COLLECTION", "pjp_plans"),
		RAEntryCollection:       envOrDefault("RA_ENTRY_COLLECTION", "ra_entries"),
		NotificationCollection:  envOrDefault("NOTIFICATION_COLLECTION", "notifications"),
		Timeout:                 timeout,
		Timezone:                envOrDefault("TIMEZONE", "Asia/Kolkata"),
		ServerLog:               log.New(os.Stdout, "[daily-pulse-api] ", log.LstdFlags|log.Lshortfile),
		JWTConfigs:              jwtConfigs,
		JWTAudience:             jwtAudience,
		AppBaseURL:              appBaseURL,
		NotificationIconURL:     iconURL,
		FirebaseProjectID:       firebaseProject,
		FirebaseCredentialsFile: firebaseCredentials,
		AllowedOrigins:          allowedOrigins,
	}

	cfg.ServerLog.Printf("loaded config: appBaseURL=%q firebaseProject=%q timezone=%q", appBaseURL, firebaseProject, cfg.Timezone)

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
