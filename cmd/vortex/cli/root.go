package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/vortex"
	"github.com/dmitrymomot/vortex/pkg/config"
	"github.com/dmitrymomot/vortex/pkg/logger"
	"github.com/dmitrymomot/vortex/pkg/requestid"
)

var errMissingAPIKey = errors.New("api key is required: pass --api-key or set VORTEX_API_KEY")

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	apiKey    string
	baseURL   string
	envFile   string
	output    string
	logFormat string
	verbose   bool
}

// Execute creates the root command tree and runs it.
func Execute(version, commit, date string) error {
	return newRootCmd(version, commit, date).Execute()
}

func newRootCmd(version, commit, date string) *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "vortex",
		Short: "Manage Vortex invitations from the command line",
		Long: `vortex talks to the Vortex invitation API with your account's API key.

It can sign widget tokens locally, and fetch, create, accept, revoke and
reinvite invitations, manage group invitations and configure autojoin domains.

The API key and endpoint are read from VORTEX_API_KEY and VORTEX_API_BASE_URL
(a .env file in the working directory is loaded if present) unless the
matching flags are given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.envFile != "" {
				if err := config.LoadEnv(opts.envFile); err != nil {
					return err
				}
			} else if err := config.LoadEnv(); err != nil {
				return err
			}
			switch logger.Format(opts.logFormat) {
			case logger.FormatText, logger.FormatJSON:
			default:
				return fmt.Errorf("unsupported log format %q: must be %q or %q", opts.logFormat, logger.FormatText, logger.FormatJSON)
			}
			switch opts.output {
			case formatJSON, formatYAML:
				return nil
			default:
				return fmt.Errorf("unsupported output format %q: must be %q or %q", opts.output, formatJSON, formatYAML)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.apiKey, "api-key", "", "Vortex API key (default is $VORTEX_API_KEY)")
	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "API endpoint (default is $VORTEX_API_BASE_URL or "+vortex.DefaultBaseURL+")")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "load environment variables from this file")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", formatJSON, "output format: json or yaml")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", string(logger.FormatText), "log format on stderr: text or json")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log requests to stderr")

	cmd.AddCommand(newTokenCmd(opts))
	cmd.AddCommand(newInvitationsCmd(opts))
	cmd.AddCommand(newGroupsCmd(opts))
	cmd.AddCommand(newAutojoinCmd(opts))
	cmd.AddCommand(newVersionCmd(version, commit, date))

	return cmd
}

// logger writes logs to the command's stderr. Attributes that could carry
// the raw API key are masked.
func (o *globalOptions) logger(cmd *cobra.Command) *slog.Logger {
	return logger.New(
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithFormat(logger.Format(o.logFormat)),
		logger.WithVerbose(o.verbose),
		logger.WithRedactedKeys("key", "api_key", "api-key"),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
}

// newClient resolves the API key and endpoint (flags over environment) and
// builds a client that logs through the command's stderr.
func (o *globalOptions) newClient(cmd *cobra.Command) (*vortex.Client, error) {
	cfg, err := vortex.LoadConfig()
	if err != nil {
		return nil, err
	}
	if o.apiKey != "" {
		cfg.APIKey = o.apiKey
	}
	if cfg.APIKey == "" {
		return nil, errMissingAPIKey
	}

	return vortex.NewFromConfig(cfg,
		vortex.WithBaseURL(o.baseURL),
		vortex.WithLogger(o.logger(cmd)),
		vortex.WithUserAgent(vortex.SDKName+"-cli/"+vortex.SDKVersion()),
	)
}
