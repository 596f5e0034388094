package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Philipp01105/tracelog/config"
	"github.com/Philipp01105/tracelog/core"
	"github.com/Philipp01105/tracelog/logger"
)

// emitVerbose is the verbose level of the sample verbose record in
// each batch.
const emitVerbose = 1

func newEmitCommand() *cobra.Command {
	var (
		configPath string
		count      int
		format     string
		file       string
	)

	cmd := &cobra.Command{
		Use:   "emit [MESSAGE]",
		Short: "Emit sample records at every level",
		Long: `Emit configures a logger and sends sample record batches through it,
one record per severity plus a verbose record when the verbose level
admits it. Operators use it to verify where records land and what the
prefix looks like. Without --file or a config the records go to
stderr.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := logger.New()
			defer l.Close()

			if configPath != "" {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				if err := cfg.MergeEnv().Apply(l); err != nil {
					return err
				}
			}
			if format != "" {
				f, err := core.ParseFormat(format)
				if err != nil {
					return err
				}
				l.SetFormat(f)
			}
			if cmd.Flags().Changed("file") {
				l.SetFile(file)
			}

			message := "tracelog sample record"
			if len(args) > 0 {
				message = strings.Join(args, " ")
			}

			for i := 0; i < count; i++ {
				l.Error(message)
				l.Warning(message)
				l.Info(message)
				l.Verbose(emitVerbose).Print(message)
			}
			l.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file to apply first")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of record batches to emit")
	cmd.Flags().StringVar(&format, "format", "", "prefix layout, default or ISO8601")
	cmd.Flags().StringVarP(&file, "file", "f", "", "trace file to append to (default: stderr)")
	return cmd
}
