package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication helpers",
	}

	cmd.AddCommand(newAuthSetKeyCmd())
	return cmd
}

func newAuthSetKeyCmd() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "set-key",
		Short: "Save an API key to the active profile",
		Long:  "Save an API key to the active profile. Without --api-key the key is read from a hidden terminal prompt so it never lands in shell history.",
		Example: `  # Prompt for the key without echoing it
  govx auth set-key

  # Non-interactive (for scripts)
  govx auth set-key --api-key $KEY`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if apiKey == "" {
				if !term.IsTerminal(int(os.Stdin.Fd())) {
					return fmt.Errorf("stdin is not a terminal: pass --api-key instead")
				}
				_, _ = fmt.Fprint(os.Stderr, "API key: ")
				raw, err := term.ReadPassword(int(os.Stdin.Fd()))
				_, _ = fmt.Fprintln(os.Stderr)
				if err != nil {
					return fmt.Errorf("read key: %w", err)
				}
				apiKey = strings.TrimSpace(string(raw))
			}
			if apiKey == "" {
				return fmt.Errorf("no API key provided")
			}

			cfg, err := LoadUserConfig()
			if err != nil {
				cfg = &UserConfig{Profiles: make(map[string]Profile)}
			}
			profileName := cfg.CurrentProfile
			if profileName == "" {
				profileName = "default"
				cfg.CurrentProfile = profileName
			}
			if cfg.Profiles == nil {
				cfg.Profiles = make(map[string]Profile)
			}
			p := cfg.Profiles[profileName]
			p.APIKey = apiKey
			cfg.Profiles[profileName] = p
			if err := SaveUserConfig(cfg); err != nil {
				return fmt.Errorf("save config: %w", err)
			}

			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, map[string]string{
					"status":  "ok",
					"profile": profileName,
				})
			}
			_, _ = fmt.Fprintf(os.Stdout, "API key saved to profile %q\n", profileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key (omit to be prompted)")

	return cmd
}
