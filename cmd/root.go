package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	version string
	baseDir string
	dirFlag string
	debug   bool
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "rwgui",
	Short: "Retained-mode widget toolkit demo host",
	Long: `rwgui - windows, menus and dialogues laid out by the RWGui engine, shown in the terminal.

Each configured viewer gets its own screen; switch between them with tab.
The player roster behind the players menu lives in a local SQLite database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := suggest(firstNonFlagArg(os.Args[1:])); hint != "" && strings.HasPrefix(err.Error(), "unknown command") {
			fmt.Fprintf(os.Stderr, "Did you mean %q?\n", hint)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir, initLogging)

	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "C", "", "Base directory (default: current directory)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log debug messages")
	rootCmd.SetGlobalNormalizationFunc(normalizeFlag)
}

// normalizeFlag accepts config-style underscores in flag names.
func normalizeFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func initBaseDir() {
	if dirFlag != "" {
		abs, err := filepath.Abs(dirFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad --dir %q: %v\n", dirFlag, err)
			os.Exit(1)
		}
		baseDir = abs
		return
	}
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

func initLogging() {
	setLogOutput(os.Stderr)
}

// setLogOutput points the default logger at w.
func setLogOutput(w io.Writer) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// getBaseDir returns the base directory for the project
func getBaseDir() string {
	return baseDir
}

// firstNonFlagArg returns the first argument not starting with a dash.
func firstNonFlagArg(args []string) string {
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return ""
}

// suggest returns the command name closest to name, if any matches.
func suggest(name string) string {
	if name == "" {
		return ""
	}
	var names []string
	for _, c := range rootCmd.Commands() {
		if !c.Hidden {
			names = append(names, c.Name())
		}
	}
	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
