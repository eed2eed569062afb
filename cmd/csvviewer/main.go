package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csvviewer/internal/config"
	"csvviewer/internal/logger"
	"csvviewer/internal/reader"
	"csvviewer/internal/table"
)

type options struct {
	configFile string
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "csvviewer",
		Short:         "CSV file viewer",
		Long:          "Loads a CSV file and prints every row with its index, the same grid the CsvViewer window shows",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "YAML file overriding the built-in settings")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	showCmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print the file as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadModel(cmd, opts, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderModel(m))
			return nil
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Load the file and report its size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadModel(cmd, opts, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rows=%d columns=%d\n", len(m.Rows), len(m.Columns))
			return nil
		},
	}

	rootCmd.AddCommand(showCmd, checkCmd)
	return rootCmd
}

// loadModel reads path with the configured loader and lays it out
func loadModel(cmd *cobra.Command, opts *options, path string) (table.Model, error) {
	level, err := logger.ParseLevel(opts.logLevel)
	if err != nil {
		return table.Model{}, err
	}
	log := logger.NewConsole(cmd.ErrOrStderr(), level)

	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		return table.Model{}, err
	}

	ds, err := reader.NewLoader(cfg.Loader).Load(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("load failed")
		return table.Model{}, err
	}

	m := table.Build(ds, table.LayoutFrom(cfg.Table))
	log.Info().
		Str("path", path).
		Int("rows", len(m.Rows)).
		Int("columns", len(m.Columns)).
		Msg("dataset loaded")
	return m, nil
}

func loadConfig(filename string) (*config.Config, error) {
	if filename == "" {
		return config.Default()
	}
	return config.Load(filename)
}
