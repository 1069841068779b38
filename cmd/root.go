package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/tsplay/internal/app"
	"github.com/zhubert/tsplay/internal/config"
	perrors "github.com/zhubert/tsplay/internal/errors"
	"github.com/zhubert/tsplay/internal/logger"
	"github.com/zhubert/tsplay/internal/playground"
	"github.com/zhubert/tsplay/internal/rcfile"
	"github.com/zhubert/tsplay/internal/report"
	"github.com/zhubert/tsplay/internal/watch"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	version, commit, date string

	// Settings seeded from the command line
	linkFlag       string
	tsFlag         string
	fileTypeFlag   string
	sourceTypeFlag string
	eslintrcFlag   string
	tsconfigFlag   string
	osc52Flag      bool
	watchFlag      bool
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "tsplay [file]",
	Short: "Terminal playground options panel for typescript-eslint",
	Long: `tsplay shows a TypeScript source file next to the typescript-eslint
playground options: TypeScript version, file type, source type and view
toggles. It copies shareable playground links and bug report Markdown to the
clipboard and opens a prefilled issue form.

Settings are remembered between runs in ~/.tsplay/config.json.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.tsplay/config.json)")

	rootCmd.PersistentFlags().StringVar(&linkFlag, "link", "", "Start from the settings in a shared playground link")
	rootCmd.PersistentFlags().StringVar(&tsFlag, "ts", "", "TypeScript version")
	rootCmd.PersistentFlags().StringVar(&fileTypeFlag, "file-type", "", "File type the source is parsed as (default from the file name)")
	rootCmd.PersistentFlags().StringVar(&sourceTypeFlag, "source-type", "", "Source type: script or module")
	rootCmd.PersistentFlags().StringVar(&eslintrcFlag, "eslintrc", "", "ESLint config file (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&tsconfigFlag, "tsconfig", "", "TypeScript config file (JSON or YAML)")
	rootCmd.Flags().BoolVar(&osc52Flag, "osc52", false, "Also copy through the terminal (OSC 52), for remote sessions")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Reload the source file when it changes")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("tsplay %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("tsplay %s\n", version)
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// seedOptions are the command-line sources of playground settings
type seedOptions struct {
	Link       string
	TS         string
	FileType   string
	SourceType string
	File       string // path of the source file, "" for none
	ESLintRC   string // path of an ESLint config file
	TSConfig   string // path of a TypeScript config file
}

func currentSeedOptions(args []string) seedOptions {
	opts := seedOptions{
		Link:       linkFlag,
		TS:         tsFlag,
		FileType:   fileTypeFlag,
		SourceType: sourceTypeFlag,
		ESLintRC:   eslintrcFlag,
		TSConfig:   tsconfigFlag,
	}
	if len(args) > 0 {
		opts.File = args[0]
	}
	return opts
}

// seedState applies the command line over base. A link goes first, then
// the source file, then config files, then the individual setting flags.
func seedState(base playground.State, opts seedOptions) (playground.State, error) {
	state := base

	if opts.Link != "" {
		p, err := report.ParseLink(opts.Link)
		if err != nil {
			return base, err
		}
		state = playground.Apply(state, p)
	}

	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return base, perrors.E(perrors.Op("cmd.seedState"), perrors.KindIO, err)
		}
		p := playground.Partial{Code: playground.String(string(data))}
		if ft := fileTypeFromPath(opts.File); ft != "" {
			p.FileType = playground.String(ft)
		}
		state = playground.Apply(state, p)
	}

	if opts.ESLintRC != "" {
		text, err := rcfile.Load(opts.ESLintRC)
		if err != nil {
			return base, err
		}
		state.ESLintRC = text
	}
	if opts.TSConfig != "" {
		text, err := rcfile.Load(opts.TSConfig)
		if err != nil {
			return base, err
		}
		state.TSConfig = text
	}

	var p playground.Partial
	if opts.TS != "" {
		p.TS = playground.String(opts.TS)
	}
	if opts.FileType != "" {
		p.FileType = playground.String(opts.FileType)
	}
	if opts.SourceType != "" {
		p.SourceType = playground.String(opts.SourceType)
	}
	if err := playground.ValidatePartial(p); err != nil {
		return base, err
	}
	return playground.Apply(state, p), nil
}

// fileTypeFromPath returns the longest known file type the name ends
// with, so "a.d.ts" is "d.ts" rather than "ts". Unknown extensions give "".
func fileTypeFromPath(path string) string {
	name := filepath.Base(path)
	best := ""
	for _, ft := range playground.FileTypes {
		if strings.HasSuffix(name, "."+ft) && len(ft) > len(best) {
			best = ft
		}
	}
	return best
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	opts := currentSeedOptions(args)
	if watchFlag && opts.File == "" {
		return fmt.Errorf("--watch needs a source file")
	}
	state, err := seedState(cfg.GetPlayground(), opts)
	if err != nil {
		return err
	}
	cfg.SetPlayground(state)

	// Ensure logger is closed on exit
	defer logger.Close()

	var sourceName string
	if opts.File != "" {
		sourceName = filepath.Base(opts.File)
	}
	appOpts := app.Options{SourceName: sourceName, OSC52: osc52Flag}
	if watchFlag {
		w, err := watch.New(opts.File, watch.DefaultDebounce)
		if err != nil {
			return err
		}
		defer w.Close()
		appOpts.Watcher = w
	}

	m := app.New(cfg, version, appOpts)
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
