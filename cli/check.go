package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Philipp01105/tracelog/config"
)

// ErrConfigRequired is returned when a command needs --config and none
// was given.
var ErrConfigRequired = errors.New("config file required, pass --config")

func newCheckCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a config file and report the effective settings",
		Long: `Check loads a config file, layers TRACELOG_* environment overrides on
top, validates the result and reports the effective settings. When the
config names a trace file, check also verifies that it can be opened
for appending.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath == "" {
				return ErrConfigRequired
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = cfg.MergeEnv()
			if err := cfg.Validate(); err != nil {
				return errors.Wrapf(err, "config %s", configPath)
			}

			sink := "stderr"
			if cfg.File != "" {
				if err := probeTraceFile(cfg.File); err != nil {
					return err
				}
				sink = cfg.File + " (writable)"
			}

			table := tablewriter.NewTable(cmd.OutOrStdout())
			table.Header([]string{"Setting", "Value"})
			table.Bulk([][]string{
				{"error", enabledWord(cfg.Error)},
				{"warning", enabledWord(cfg.Warning)},
				{"info", enabledWord(cfg.Info)},
				{"verbose", strconv.FormatUint(uint64(cfg.Verbose), 10)},
				{"format", formatWord(cfg.Format)},
			})
			table.Render()
			fmt.Fprintf(cmd.OutOrStdout(), "file: %s\nconfig OK\n", sink)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file to validate")
	return cmd
}

func enabledWord(flag *bool) string {
	if flag == nil || *flag {
		return "enabled"
	}
	return "disabled"
}

func formatWord(format string) string {
	if format == "" {
		return "default"
	}
	return format
}

// probeTraceFile opens the trace file the same way the logger would
// and removes it again when the probe itself created it.
func probeTraceFile(path string) error {
	_, statErr := os.Stat(path)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrapf(err, "trace file %s", path)
	}
	f.Close()
	if os.IsNotExist(statErr) {
		os.Remove(path)
	}
	return nil
}
