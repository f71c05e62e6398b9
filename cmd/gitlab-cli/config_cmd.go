package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fuseraft/gitlab-cli/internal/config"
	"github.com/fuseraft/gitlab-cli/internal/gitlab"
	"github.com/fuseraft/gitlab-cli/internal/prompt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure GitLab connection settings",
	Long: `Interactive configuration wizard to set up GitLab URL and access token.
Creates or updates the configuration file at ~/.config/gitlab-cli/config.yaml`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// testConnection validates the settings against the live instance. Replaced
// in tests.
var testConnection = func(cfg *config.Config) error {
	client, err := gitlab.New(cfg.URL, cfg.Token, cfg.GetTimeout())
	if err != nil {
		return fmt.Errorf("failed to create GitLab client: %w", err)
	}
	return client.TestConnection()
}

func runConfig(cmd *cobra.Command, args []string) error {
	return runConfigWizard(prompt.New(os.Stdin, os.Stdout))
}

func runConfigWizard(prompter prompt.Prompter) error {
	printTitle("gitlab-cli configuration")

	// Load existing config if available; all fields default to it
	existing, err := config.Load()
	if err != nil {
		existing = &config.Config{Timeout: config.DefaultTimeout}
	}

	urlQuestion := "GitLab URL"
	if existing.URL != "" {
		urlQuestion += fmt.Sprintf(" [%s]", existing.URL)
	}
	url, err := prompter.Ask(urlQuestion + ": ")
	if err != nil {
		return err
	}
	if url == "" {
		url = existing.URL
	}
	if url == "" {
		return fmt.Errorf("GitLab URL is required")
	}

	tokenQuestion := "GitLab Personal Access Token"
	if existing.Token != "" {
		tokenQuestion += fmt.Sprintf(" [%s]", maskToken(existing.Token))
	}
	token, err := prompter.Ask(tokenQuestion + ": ")
	if err != nil {
		return err
	}
	if token == "" {
		token = existing.Token
	}
	if token == "" {
		return fmt.Errorf("GitLab token is required")
	}

	timeoutStr, err := prompter.Ask(fmt.Sprintf("API timeout in seconds [%d]: ", existing.Timeout))
	if err != nil {
		return err
	}
	timeout := existing.Timeout
	if timeoutStr != "" {
		parsed, convErr := strconv.Atoi(timeoutStr)
		if convErr != nil || parsed <= 0 {
			printWarning(fmt.Sprintf("invalid timeout '%s', using %d seconds", timeoutStr, config.DefaultTimeout))
			parsed = config.DefaultTimeout
		}
		timeout = parsed
	}

	cfg := &config.Config{
		URL:     url,
		Token:   token,
		Timeout: timeout,
	}

	fmt.Printf("\nTesting connection to %s...\n", cfg.URL)
	if err := testConnection(cfg); err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}
	printSuccess("Connection successful!")

	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(config.ConfigPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	printSuccess(fmt.Sprintf("Configuration saved to %s", config.ConfigPath()))
	printMuted("You can now run 'gitlab-cli --search --project <name>' to search projects.")

	return nil
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "********"
	}
	return token[:4] + "****" + token[len(token)-4:]
}
