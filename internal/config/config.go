package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config aggregates every tunable of the service.
type Config struct {
	Server  ServerConfig
	Site    SiteConfig
	Session SessionConfig
	Chat    ChatConfig
	Auth    AuthConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	site, err := loadSiteConfig()
	if err != nil {
		return nil, err
	}

	session, err := loadSessionConfig()
	if err != nil {
		return nil, err
	}

	chat, err := loadChatConfig()
	if err != nil {
		return nil, err
	}

	auth, err := loadAuthConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Site: site, Session: session, Chat: chat, Auth: auth}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// SiteConfig holds the public identity of the site used when building
// canonical and Open Graph URLs.
type SiteConfig struct {
	BaseURL string
	Name    string
	Locale  string
}

func loadSiteConfig() (SiteConfig, error) {
	base := getEnvOrDefault("SITE_URL", "https://www.designdynasty.com")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		return SiteConfig{}, fmt.Errorf("SITE_URL must be absolute, got %q", base)
	}

	return SiteConfig{
		BaseURL: strings.TrimRight(base, "/"),
		Name:    getEnvOrDefault("SITE_NAME", "Design Dynasty"),
		Locale:  getEnvOrDefault("SITE_LOCALE", "en_US"),
	}, nil
}

// SessionConfig controls session lifetime and the background expiry sweep.
// Both values are injected so tests can run with compressed clocks.
type SessionConfig struct {
	Timeout       time.Duration
	SweepInterval time.Duration
}

func loadSessionConfig() (SessionConfig, error) {
	timeout, err := parseDurationEnv("SESSION_TIMEOUT", 5*time.Minute)
	if err != nil {
		return SessionConfig{}, err
	}

	sweep, err := parseDurationEnv("SESSION_SWEEP_INTERVAL", 15*time.Second)
	if err != nil {
		return SessionConfig{}, err
	}

	if timeout <= 0 {
		return SessionConfig{}, fmt.Errorf("SESSION_TIMEOUT must be positive, got %s", timeout)
	}
	if sweep <= 0 {
		return SessionConfig{}, fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive, got %s", sweep)
	}

	return SessionConfig{Timeout: timeout, SweepInterval: sweep}, nil
}

// ChatConfig controls the support widget.
type ChatConfig struct {
	ReplyDelay time.Duration
}

func loadChatConfig() (ChatConfig, error) {
	delay, err := parseDurationEnv("CHAT_REPLY_DELAY", 500*time.Millisecond)
	if err != nil {
		return ChatConfig{}, err
	}
	if delay < 0 {
		return ChatConfig{}, fmt.Errorf("CHAT_REPLY_DELAY must not be negative, got %s", delay)
	}
	return ChatConfig{ReplyDelay: delay}, nil
}

// AuthConfig holds the OTP lifetime and the optional seeded admin account.
type AuthConfig struct {
	OTPTTL        time.Duration
	AdminEmail    string
	AdminPassword string
}

func loadAuthConfig() (AuthConfig, error) {
	ttl, err := parseDurationEnv("OTP_TTL", 10*time.Minute)
	if err != nil {
		return AuthConfig{}, err
	}
	if ttl <= 0 {
		return AuthConfig{}, fmt.Errorf("OTP_TTL must be positive, got %s", ttl)
	}

	return AuthConfig{
		OTPTTL:        ttl,
		AdminEmail:    strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}
