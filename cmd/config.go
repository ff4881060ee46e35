package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

const (
	configDirMode  = 0o700
	configFileMode = 0o600
)

type configSchema struct {
	UserID  string              `toml:"user_id"`
	Cookies cookiesConfigSchema `toml:"cookies"`
	API     apiConfigSchema     `toml:"api"`
}

type cookiesConfigSchema struct {
	Path string `toml:"path"`
	Name string `toml:"name"`
}

type apiConfigSchema struct {
	BaseURL string `toml:"base_url"`
}

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage xw configuration",
	}

	cmd.AddCommand(newConfigInitCmd(app))

	return cmd
}

func newConfigInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file with the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, app, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, app *app, force bool) error {
	configPath := filepath.Join(app.configDir, configName+"."+configType)

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", configPath)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	schema := configSchema{
		UserID: app.cfg.UserID,
		Cookies: cookiesConfigSchema{
			Path: app.cfg.CookiesPath,
			Name: app.cfg.CookieName,
		},
		API: apiConfigSchema{
			BaseURL: app.cfg.BaseURL,
		},
	}

	data, err := toml.Marshal(schema)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	if err := os.MkdirAll(app.configDir, configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if err := os.WriteFile(configPath, data, configFileMode); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
	return err
}
