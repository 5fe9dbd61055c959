// Command themec compiles color theme definitions into a binary artifact.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/themec"
	"github.com/fwojciec/themec/binfmt"
	"github.com/fwojciec/themec/bubbletea"
	"github.com/fwojciec/themec/chroma"
	"github.com/fwojciec/themec/fs"
	"github.com/fwojciec/themec/hjson"
	"github.com/fwojciec/themec/internal/logger"
	"github.com/fwojciec/themec/jsonl"
	dv "github.com/fwojciec/themec/lipgloss"
	"github.com/fwojciec/themec/yaml"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var version = "1.1.0"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		fmt.Fprintln(os.Stderr, "Use `--help` to get some help.")
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Each call uses a fresh viper instance.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	var configFile, samplePath string
	var cfg *Config

	root := &cobra.Command{
		Use:   "themec [flags] filenames...",
		Short: "Compile color themes into a binary artifact",
		Long: `themec merges theme definitions from one or more YAML, JSON or Hjson
(.hjson) files into a single binary artifact. When several files define the same theme, the first
definition wins. Arguments of the form chroma:<style> import a builtin chroma
style.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = loadConfig(v, configFile, ".env")
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := logger.New(stderr, cfg.LogLevel)
			if err != nil {
				return err
			}

			opts := []binfmt.Option{binfmt.WithLogger(logger.WithPrefix(l, "encoder"))}
			if cfg.Strict {
				opts = append(opts, binfmt.WithStrictColorCount())
			}

			app := &CompileApp{
				Inputs:    args,
				Output:    cfg.Output,
				Loader:    fs.NewLoader(yaml.NewParser(), fs.WithParser(".hjson", hjson.NewParser())),
				Encoder:   binfmt.NewEncoder(opts...),
				WriteFile: fs.WriteFileAtomic,
				Logger:    l,
			}
			return app.Run()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ./themec.yaml or "+configDirHint()+")")
	root.PersistentFlags().String(keyLogLevel, "", "Log level (debug|info|warn|error) [default: info]")
	root.PersistentFlags().String(keyUI, "", "UI colors for inspect and preview (dark|light)")
	root.Flags().StringP(keyOutput, "o", "", "Generate file named FILENAME")
	root.Flags().Bool(keyStrict, false, "Reject themes with more than 255 colors instead of truncating")
	mustBind(v, keyLogLevel, root.PersistentFlags())
	mustBind(v, keyUI, root.PersistentFlags())
	mustBind(v, keyOutput, root.Flags())
	mustBind(v, keyStrict, root.Flags())

	inspect := &cobra.Command{
		Use:   "inspect <artifact>",
		Short: "Print the themes stored in a compiled artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var w themec.ArtifactWriter
			switch cfg.Format {
			case "jsonl":
				w = jsonl.NewWriter()
			case "text":
				w = dv.NewRenderer(cfg.UITheme(), termenv.NewOutput(cmd.OutOrStdout()).EnvColorProfile())
			default:
				return fmt.Errorf("unknown format %q: want text or jsonl", cfg.Format)
			}
			app := &InspectApp{
				Input:   args[0],
				Decoder: binfmt.NewDecoder(),
				Writer:  w,
				Out:     cmd.OutOrStdout(),
			}
			return app.Run()
		},
	}
	inspect.Flags().String(keyFormat, "", "Output format (text|jsonl) [default: text]")
	mustBind(v, keyFormat, inspect.Flags())

	preview := &cobra.Command{
		Use:   "preview <artifact>",
		Short: "Browse the themes of a compiled artifact interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sample, err := loadSample(samplePath)
			if err != nil {
				return err
			}
			app := &PreviewApp{
				Input:   args[0],
				Decoder: binfmt.NewDecoder(),
				Viewer: bubbletea.NewViewer(cfg.UITheme(),
					bubbletea.WithHighlighter(chroma.NewHighlighter(), sample)),
			}
			return app.Run(cmd.Context())
		},
	}
	preview.Flags().StringVar(&samplePath, "sample", "", "Source file shown with each theme (default: builtin Go snippet)")

	styles := &cobra.Command{
		Use:   "styles",
		Short: "List chroma styles usable as chroma:<style> inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range chroma.Styles() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "themec v%s (artifact format %d.%d)\n",
				version, themec.FormatMajor, themec.FormatMinor)
		},
	}

	root.AddCommand(inspect, preview, styles, versionCmd)
	return root
}

func mustBind(v *viper.Viper, key string, flags *pflag.FlagSet) {
	if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", key, err))
	}
}

func configDirHint() string {
	if dir := fs.DefaultConfigDir(); dir != "" {
		return dir + "/themec.yaml"
	}
	return "$XDG_CONFIG_HOME/themec/themec.yaml"
}
