// Package cli implements the eppctl command line interface.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/eppctl/eppctl/internal/config"
	"github.com/eppctl/eppctl/internal/epp"
	"github.com/eppctl/eppctl/internal/logging"
	"github.com/eppctl/eppctl/internal/privilege"
	"github.com/eppctl/eppctl/internal/sys/cpufreq"
	"github.com/eppctl/eppctl/pkg/version"
)

const shortDesc = "Manage AMD Energy Performance Preference (EPP) settings."

const privilegeNote = "Setting a profile requires root privileges."

// options holds the flag values bound to the root command.
type options struct {
	performance        bool
	balancePerformance bool
	balancePower       bool
	power              bool
	profileLevel       uint8
	show               bool
	format             string
	verbose            bool
}

// selectionKind tags the single action resolved from the flag set.
type selectionKind int

const (
	selectNone selectionKind = iota
	selectApply
	selectShow
)

// selection is the one action an invocation performs. The flags are declared
// mutually exclusive, so at most one variant can be populated.
type selection struct {
	kind    selectionKind
	profile epp.Profile
}

// NewRootCmd builds the eppctl command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "eppctl",
		Short:         shortDesc,
		Long:          shortDesc + "\n\n" + strings.TrimRight(profileHelpSection(), "\n") + "\n\n" + privilegeNote,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.performance, "performance", false, "Set EPP profile to 'performance'.")
	flags.BoolVar(&opts.balancePerformance, "balance-performance", false, "Set EPP profile to 'balance-performance'.")
	flags.BoolVar(&opts.balancePower, "balance-power", false, "Set EPP profile to 'balance-power'.")
	flags.BoolVar(&opts.power, "power", false, "Set EPP profile to 'power'.")
	flags.Uint8VarP(&opts.profileLevel, "profile-level", "p", 0,
		"Set EPP profile by level (0=performance, 1=balance-performance, 2=balance-power, 3=power)")
	flags.BoolVarP(&opts.show, "show", "s", false, "Show current EPP values for all CPU cores.")
	flags.StringVarP(&opts.format, "format", "o", string(FormatTable),
		fmt.Sprintf("Output format for --show (%s)", strings.Join(formatNames(), ", ")))
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output (show additional details)")

	cmd.MarkFlagsMutuallyExclusive(
		"performance", "balance-performance", "balance-power", "power", "profile-level", "show",
	)

	return cmd
}

// resolveSelection reduces the mutually exclusive action flags to a single
// tagged value. The flag set distinguishes an explicit -p 0 from an unset
// level flag.
func resolveSelection(flags *pflag.FlagSet, opts *options) (selection, error) {
	switch {
	case opts.performance:
		return selection{kind: selectApply, profile: epp.Performance}, nil
	case opts.power:
		return selection{kind: selectApply, profile: epp.Power}, nil
	case opts.balancePerformance:
		return selection{kind: selectApply, profile: epp.BalancePerformance}, nil
	case opts.balancePower:
		return selection{kind: selectApply, profile: epp.BalancePower}, nil
	case flags.Changed("profile-level"):
		profile, err := epp.FromLevel(opts.profileLevel)
		if err != nil {
			return selection{}, err
		}
		return selection{kind: selectApply, profile: profile}, nil
	case opts.show:
		return selection{kind: selectShow}, nil
	default:
		return selection{kind: selectNone}, nil
	}
}

func run(cmd *cobra.Command, opts *options) error {
	sel, err := resolveSelection(cmd.Flags(), opts)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("format") {
		if err := validateFormat(opts.format); err != nil {
			return err
		}
		if sel.kind != selectShow {
			return errors.New("--format can only be used together with --show")
		}
	}

	// No action selected prints help, matching the bare invocation.
	if sel.kind == selectNone {
		return cmd.Help()
	}

	cfg := config.FromEnv()
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logger := logging.New(logCfg)

	if privilege.IsRunningUnderSudo() {
		if userCtx, err := privilege.DetectOriginalUser(); err == nil {
			logger.Debug().
				Str("user", userCtx.Username).
				Int("uid", userCtx.UID).
				Msg("invoked via sudo")
		}
	}

	locations, err := cpufreq.Discover(cfg.CPURoot)
	if err != nil {
		return err
	}
	logger.Debug().Int("count", len(locations)).Msg("discovered EPP control files")

	// Cores without a control file usually mean the cpufreq driver is not
	// running in active mode.
	if logical, err := cpu.Counts(true); err == nil && logical != len(locations) {
		logger.Debug().
			Int("logical_cpus", logical).
			Int("control_files", len(locations)).
			Msg("EPP control files do not cover all logical CPUs")
	}

	mgr := epp.NewManager(locations, logging.NewWithComponent(logCfg, "epp"))

	switch sel.kind {
	case selectApply:
		return runApply(cmd, mgr, sel.profile)
	case selectShow:
		return runShow(cmd, mgr, OutputFormat(opts.format))
	}
	return nil
}

func runApply(cmd *cobra.Command, mgr *epp.Manager, profile epp.Profile) error {
	// cobra's Printf falls back to stderr when no out writer is set; the
	// user-facing lines belong on stdout, next to the show report.
	fmt.Fprintf(cmd.OutOrStdout(), "Applying EPP setting: %s\n", profile.Token())

	if err := mgr.Apply(profile); err != nil {
		var permErr *epp.PermissionError
		if errors.As(err, &permErr) && !privilege.IsRoot() {
			return fmt.Errorf("%w (try running with sudo)", err)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Successfully set value to %s for all detected CPU cores.\n", profile.Token())
	return nil
}

func runShow(cmd *cobra.Command, mgr *epp.Manager, format OutputFormat) error {
	entries, err := mgr.Read()
	if err != nil {
		return err
	}
	return renderEntries(cmd.OutOrStdout(), entries, format)
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
