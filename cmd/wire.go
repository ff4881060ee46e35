package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"xwstats/internal/adapters/cookiejar"
	"xwstats/internal/adapters/nyt"
	monthrender "xwstats/internal/adapters/render/month"
	"xwstats/internal/application"
	"xwstats/internal/ports"
)

const (
	configDirName  = ".xwstats"
	configName     = "config"
	configType     = "toml"
	cookiesFile    = "cookies.txt"
	userIDKey      = "user_id"
	cookiesPathKey = "cookies.path"
	cookieNameKey  = "cookies.name"
	baseURLKey     = "api.base_url"
)

type config struct {
	UserID      string
	CookiesPath string
	CookieName  string
	BaseURL     string
}

type app struct {
	cfg           config
	configDir     string
	api           ports.PuzzleAPI
	clock         ports.Clock
	monthRenderer func(application.MonthView, monthrender.RenderOptions) (string, error)
}

func (a *app) now() time.Time {
	return a.clock.Now()
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, configDirName)

	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(configDir)
	cfg.SetDefault(userIDKey, "")
	cfg.SetDefault(cookiesPathKey, filepath.Join(configDir, cookiesFile))
	cfg.SetDefault(cookieNameKey, cookiejar.DefaultCookieName)
	cfg.SetDefault(baseURLKey, nyt.DefaultBaseURL)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	conf := config{
		UserID:      envOrDefault("XW_USER_ID", cfg.GetString(userIDKey)),
		CookiesPath: envOrDefault("XW_COOKIES", cfg.GetString(cookiesPathKey)),
		CookieName:  envOrDefault("XW_COOKIE_NAME", cfg.GetString(cookieNameKey)),
		BaseURL:     envOrDefault("XW_BASE_URL", cfg.GetString(baseURLKey)),
	}

	return &app{
		cfg:           conf,
		configDir:     configDir,
		api:           nyt.NewClient(conf.BaseURL),
		clock:         ports.SystemClock{},
		monthRenderer: monthrender.Render,
	}, nil
}

// session builds an authenticated session, resolving the cookie jar once.
// A --user flag wins over the configured user_id.
func (a *app) session(ctx context.Context, userIDFlag string) (*application.Session, error) {
	userID := userIDFlag
	if userID == "" {
		userID = a.cfg.UserID
	}
	if userID == "" {
		return nil, errors.New("user id not set: pass --user or set user_id in the config file")
	}

	resolver := cookiejar.NewResolver(a.cfg.CookiesPath, a.cfg.CookieName)

	return application.NewSession(ctx, userID, resolver, a.api)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
