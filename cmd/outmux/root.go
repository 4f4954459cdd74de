package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/outmux/internal/version"
	"github.com/arthur-debert/outmux/pkg/chainlog"
	"github.com/arthur-debert/outmux/pkg/config"
	"github.com/arthur-debert/outmux/pkg/dispatch"
	"github.com/arthur-debert/outmux/pkg/logging"
	"github.com/arthur-debert/outmux/pkg/render"
)

var (
	verbosity int
	cfgFile   string

	destTokens  []string
	colors      []string
	join        string
	severity    string
	separator   string
	noNewline   bool
	appendPath  string
	logPath     string
	replacePath string
	xmlPath     string
	dryRun      bool

	rootCmd = &cobra.Command{
		Use:   "outmux [values...]",
		Short: "Route values to multiple named output destinations",
		Long: `outmux formats a batch of values and delivers each one to every requested
destination: the screen, plain or tamper-evident chained log files, the
logging channels, or an XML dump. Values routed to the Output destination
pass through unchanged.

Destinations accept full names, unambiguous prefixes, or compact
single-letter codes ("hol" addresses Host, Output and Log at once).`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE:          runRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	values := make([]any, 0, len(args))
	for _, a := range args {
		values = append(values, a)
	}
	if len(values) == 0 {
		// No arguments: treat each stdin line as one value.
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			values = append(values, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	mode, err := chainlog.ParseMode(cfg.Chain.Mode)
	if err != nil {
		log.Warn().Err(err).Msg("Falling back to weak chain mode")
	}
	chain := chainlog.NewWriter(chainlog.NewStore(), mode)

	req := dispatch.Request{
		Values:       values,
		Destinations: destTokens,
		Colors:       colors,
		Severity:     severity,
		Separator:    separator,
		NoNewline:    noNewline,
		AppendPath:   appendPath,
		LogPath:      logPath,
		ReplacePath:  replacePath,
		XmlPath:      xmlPath,
		DryRun:       dryRun,
	}
	if len(req.Colors) == 0 {
		req.Colors = cfg.Host.Colors
	}
	if cmd.Flags().Changed("join") {
		req.Join = &join
	}

	d := dispatch.New(render.NewHostFile(os.Stdout), chain, cfg.Paths)
	out, err := d.Dispatch(req)
	if err != nil {
		return err
	}
	for _, v := range out {
		fmt.Fprintln(cmd.OutOrStdout(), render.Text(v))
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $XDG_CONFIG_HOME/outmux/outmux.toml)")

	rootCmd.Flags().StringSliceVarP(&destTokens, "dest", "d", nil, "Destination tokens (default Output)")
	rootCmd.Flags().StringSliceVar(&colors, "color", nil, "Foreground colors cycled across values on the Host screen")
	rootCmd.Flags().StringVar(&join, "join", "", "Join multi-line values into one Host line with this string")
	rootCmd.Flags().StringVarP(&severity, "severity", "s", "", "Severity code: I, W, C, E or F")
	rootCmd.Flags().StringVar(&separator, "separator", "", "Separator line emitted after each value's group")
	rootCmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "Print Host segments without line breaks")
	rootCmd.Flags().StringVar(&appendPath, "append-path", "", "Target file for the Append destination")
	rootCmd.Flags().StringVar(&logPath, "log-path", "", "Target file for the chained Log destination")
	rootCmd.Flags().StringVar(&replacePath, "replace-path", "", "Target file for the Replace destination")
	rootCmd.Flags().StringVar(&xmlPath, "xml-path", "", "Target file for the Xml destination")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Skip filesystem writes")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(verifyCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for outmux`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("outmux version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
