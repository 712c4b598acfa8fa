// Package cli implements the govx command-line interface for the
// governance explorer API.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"governance-explorer/internal/service/audit"
	"governance-explorer/internal/service/bundle"
	"governance-explorer/internal/source"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output, _ := rootCmd.PersistentFlags().GetString("output")
		if output == "json" {
			_ = printJSON(os.Stdout, map[string]any{"error": err.Error()})
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// session carries the resolved connection settings shared by all commands.
type session struct {
	host        string
	apiKey      string
	bundleLimit int
	eventLimit  int
}

func (s *session) client() *source.Client {
	return source.NewClient(s.host, s.apiKey, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *session) bundles() *bundle.Service {
	return bundle.NewService(s.client(), s.bundleLimit)
}

func (s *session) history() *audit.Service {
	return audit.NewService(s.client(), s.eventLimit)
}

func newRootCmd() *cobra.Command {
	var (
		output  string
		profile string
	)
	sess := &session{}

	rootCmd := &cobra.Command{
		Use:           "govx",
		Short:         "Governance Explorer CLI",
		Long:          "Command-line interface for browsing governance bundles and their audit trails.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Load config from profile if flags/env not set
			cfg, err := LoadUserConfig()
			if err != nil {
				// Config file is optional
				cfg = &UserConfig{
					CurrentProfile: "default",
					Profiles:       map[string]Profile{},
				}
			}

			p := cfg.ActiveProfile(profile)

			// Apply precedence: flag > env > profile > default
			if !cmd.Flags().Changed("host") {
				if v := os.Getenv("GOVX_HOST"); v != "" {
					sess.host = v
				} else if p.Host != "" {
					sess.host = p.Host
				}
			}
			if !cmd.Flags().Changed("api-key") {
				if v := os.Getenv("GOVX_API_KEY"); v != "" {
					sess.apiKey = v
				} else if p.APIKey != "" {
					sess.apiKey = p.APIKey
				}
			}
			if !cmd.Flags().Changed("output") {
				if v := os.Getenv("GOVX_OUTPUT"); v != "" {
					output = v
				} else if p.Output != "" {
					output = p.Output
				}
			}

			return validateOutputFormat(output)
		},
	}

	rootCmd.PersistentFlags().StringVar(&sess.host, "host", "http://localhost:8888", "API host URL")
	rootCmd.PersistentFlags().StringVar(&sess.apiKey, "api-key", "", "API key for authentication")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "Config profile to use")
	rootCmd.PersistentFlags().IntVar(&sess.bundleLimit, "bundle-limit", 1000, "Maximum bundles to fetch")
	rootCmd.PersistentFlags().IntVar(&sess.eventLimit, "event-limit", 500, "Maximum audit events to fetch")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newBundlesCmd(sess))
	rootCmd.AddCommand(newHistoryCmd(sess))
	rootCmd.AddCommand(newMetricsCmd(sess))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
	return cmd
}
