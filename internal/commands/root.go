package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"AstroSentinel/internal/config"
	"AstroSentinel/internal/logger"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	asJSON     bool
	serving    bool

	cfg *config.Config
	log *logrus.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "astrosentinel",
		Short: "Deterministic astrological market dashboards",
		Long: `AstroSentinel fabricates reproducible "astrological" market dashboards:
a synthetic price path with EMA20/EMA50 and a table of fictitious planetary transits.

Identical (symbol, date, timeframe) selections always produce identical output.
Nothing here is market data or investment advice.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context(), cmd.ErrOrStderr())
		},
	}

	defaultConfig := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultConfig = v
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", defaultConfig, "path to the YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override logging.level")
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print JSON instead of tables")

	root.AddCommand(
		newSeedCmd(a),
		newSeriesCmd(a),
		newTransitsCmd(a),
		newReportCmd(a),
		newHistoryCmd(a),
		newServeCmd(a),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	root := NewRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

func (a *app) init(ctx context.Context, stderr io.Writer) error {
	if wd, err := os.Getwd(); err == nil {
		if err := config.LoadDotEnv(wd); err != nil {
			fmt.Fprintf(stderr, "warning: %v\n", err)
		}
	}

	cfg, err := config.Load(ctx, a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format, stderr)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
