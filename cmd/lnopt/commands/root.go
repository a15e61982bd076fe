package commands

import (
	"fmt"

	"github.com/arthur-debert/lnopt/internal/version"
	"github.com/arthur-debert/lnopt/pkg/config"
	"github.com/arthur-debert/lnopt/pkg/dedup"
	"github.com/arthur-debert/lnopt/pkg/errors"
	"github.com/arthur-debert/lnopt/pkg/logging"
	"github.com/arthur-debert/lnopt/pkg/pool"
	"github.com/arthur-debert/lnopt/pkg/report"
	"github.com/arthur-debert/lnopt/pkg/types"
	"github.com/arthur-debert/lnopt/pkg/ui"
	"github.com/arthur-debert/lnopt/pkg/ui/confirmations"
	"github.com/arthur-debert/lnopt/pkg/ui/progress"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// flagKeys maps flag names to configuration keys
var flagKeys = map[string]string{
	"method":     "method",
	"skip-small": "skip_small",
	"jobs":       "jobs",
	"dry-run":    "dry_run",
	"yes":        "assume_yes",
	"summary":    "summary",
	"color":      "color",
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity   int
		configFile  string
		printConfig bool
		defaults    = config.Default()
		method      = defaults.Method
	)

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if printConfig && len(args) == 0 {
				return nil
			}
			if len(args) != 1 {
				return fmt.Errorf(MsgErrArgs, len(args))
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{
				ConfigFile: configFile,
				Flags:      changedFlags(cmd),
			})
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			if printConfig {
				out, err := cfg.ToTOML()
				if err != nil {
					return fmt.Errorf(MsgErrPrintConfig, err)
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), out)
				return err
			}

			return runDedup(cmd, args[0], cfg)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.SetVersionTemplate("lnopt version " + version.String() + "\n")

	flags := rootCmd.Flags()
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	flags.Var(&method, "method", MsgFlagMethod)
	flags.Int64("skip-small", defaults.SkipSmall, MsgFlagSkipSmall)
	flags.IntP("jobs", "j", defaults.Jobs, MsgFlagJobs)
	flags.Bool("dry-run", defaults.DryRun, MsgFlagDryRun)
	flags.BoolP("yes", "y", defaults.AssumeYes, MsgFlagYes)
	flags.String("summary", defaults.Summary, MsgFlagSummary)
	flags.String("color", defaults.Color, MsgFlagColor)
	flags.StringVar(&configFile, "config", "", MsgFlagConfig)
	flags.BoolVar(&printConfig, "print-config", false, MsgFlagPrintConfig)

	_ = rootCmd.RegisterFlagCompletionFunc("method", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(types.Methods))
		for _, m := range types.Methods {
			names = append(names, m.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("summary", cobra.FixedCompletions(
		[]string{string(report.SummaryNone), string(report.SummaryYAML)}, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(
		[]string{"auto", "term", "text"}, cobra.ShellCompDirectiveNoFileComp))
	rootCmd.ValidArgsFunction = func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveFilterDirs
	}

	return rootCmd
}

// changedFlags collects the flags set on the command line, keyed by
// configuration key, so they override every other source
func changedFlags(cmd *cobra.Command) map[string]interface{} {
	values := make(map[string]interface{})
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		values[key] = flag.Value.String()
	}
	return values
}

func runDedup(cmd *cobra.Command, root string, cfg *config.Config) error {
	stderr := cmd.ErrOrStderr()
	reporter := report.New(stderr, cfg.Format())

	var confirmer types.Confirmer = confirmations.NewConsoleDialog(cmd.InOrStdin(), stderr)
	if cfg.AssumeYes {
		confirmer = confirmations.Always
	}

	opts := dedup.Options{
		Root:      root,
		Method:    cfg.Method,
		MinSize:   cfg.SkipSmall,
		Jobs:      cfg.Jobs,
		DryRun:    cfg.DryRun,
		Confirmer: confirmer,
		Reporter:  reporter,
	}
	if ui.IsTerminal(stderr) {
		opts.Progress = func(total int) (pool.Observer, func()) {
			bar, err := progress.Start(stderr, MsgProgressTitle, total)
			if err != nil {
				log.Debug().Err(err).Msg("Progress bar unavailable")
				return nil, nil
			}
			return bar, bar.Stop
		}
	}

	log.Info().
		Str("root", root).
		Str("method", string(cfg.Method)).
		Bool("dry_run", cfg.DryRun).
		Msg("Deduplicating")

	result, err := dedup.Run(cmd.Context(), opts)
	if err != nil {
		log.Debug().
			Str("code", string(errors.GetErrorCode(err))).
			Interface("details", errors.GetErrorDetails(err)).
			Msg("Deduplication aborted")
		return err
	}

	summary := report.NewSummary(result.Root, &result.Statistics, result.Links)
	if err := summary.Write(cmd.OutOrStdout(), cfg.SummaryFormat()); err != nil {
		return fmt.Errorf(MsgErrSummary, err)
	}
	return nil
}
