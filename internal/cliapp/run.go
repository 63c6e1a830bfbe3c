package cliapp

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"rtscheck/internal/config"
	"rtscheck/internal/corpus"
	"rtscheck/internal/grammar"
	"rtscheck/internal/history"
	"rtscheck/internal/ledger"
	"rtscheck/internal/report"
	"rtscheck/internal/validate"
)

// Run is the process entry point; the returned value becomes the exit code.
func Run(args []string) int {
	opts, err := parseOptions(args)
	if err != nil {
		return 2
	}

	if opts.version {
		fmt.Printf("rtscheck v%s\n", versionString)
		return 0
	}

	configureLogging(opts.verbose)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fatalf("Error: could not load config %s: %v", opts.configPath, err)
		return 1
	}
	applyFlagOverrides(cfg, opts)
	cfg.ResolveLedgerPath()

	if opts.historyN > 0 {
		return showHistory(cfg, opts.historyN)
	}

	app := &App{cfg: cfg, singleFile: opts.file}

	if opts.watch {
		return app.runWatch()
	}
	return app.runOnce()
}

// App drives one or more validation runs over a fixed configuration.
type App struct {
	cfg        *config.Config
	singleFile string
}

// runOnce walks the whole state machine: compile grammar, locate files,
// validate each, summarize, persist. Fatal errors before validation starts
// return 1; per-file failures only affect the final exit code.
func (a *App) runOnce() int {
	printHeader()

	parser, err := grammar.LoadFile(a.cfg.GrammarPath)
	if err != nil {
		fatalf("Error loading grammar: %v", err)
		return 1
	}
	fmt.Printf("%s Grammar loaded successfully from %s\n", okMark(), a.cfg.GrammarPath)

	files, err := a.locate()
	if err != nil {
		fatalf("Error: %v", err)
		return 1
	}
	if a.singleFile != "" {
		fmt.Printf("Found 1 file to validate: %s\n", filepath.Base(files[0]))
	} else {
		fmt.Printf("Found %d file(s) to validate\n", len(files))
	}

	return a.validateFiles(parser, files)
}

func (a *App) locate() ([]string, error) {
	if a.singleFile != "" {
		return corpus.LocateFile(a.singleFile)
	}
	return corpus.LocateDir(a.cfg.SamplesPath, a.cfg.Pattern)
}

func (a *App) validateFiles(parser validate.Parser, files []string) int {
	corpusMode := a.singleFile == ""

	var prior map[string]string
	if corpusMode {
		var err error
		prior, err = ledger.LoadPrior(a.cfg.LedgerPath)
		if err != nil {
			slog.Warn("could not load prior ledger", "path", a.cfg.LedgerPath, "error", err)
		}
	}

	fmt.Println("\nValidating files...")
	fmt.Println(divider('-'))

	led := ledger.New()
	for i, path := range files {
		outcome := validate.File(parser, path)
		name := filepath.Base(path)

		fmt.Printf("[%3d/%d] %-40s %s\n", i+1, len(files), name, statusMark(outcome.Passed))

		if !outcome.Passed && !corpusMode {
			fmt.Printf("\nError details (%s):\n%s\n\n", outcome.Kind, outcome.Reason)
			grammar.PrintErrorContext(outcome.Err, 4)
		}

		led.Record(name, outcome)
	}

	summary := led.Summary()

	fmt.Println("\n" + divider('='))
	fmt.Println(headerStyle.Render("VALIDATION SUMMARY"))
	fmt.Println(divider('='))
	fmt.Print(report.Render(summary))

	if corpusMode {
		a.printChanges(prior, led.Entries())

		if err := led.Persist(a.cfg.LedgerPath); err != nil {
			slog.Warn("could not persist ledger", "path", a.cfg.LedgerPath, "error", err)
		} else {
			fmt.Printf("\nUpdated status written to %s\n", filepath.Base(a.cfg.LedgerPath))
		}

		a.recordHistory(summary)
	}

	if summary.Failed == 0 {
		fmt.Println("\n" + passStyle.Render("[SUCCESS]") + " All files parsed successfully!")
		return 0
	}
	fmt.Printf("\n%s %d file(s) failed validation\n", failStyle.Render("[FAIL]"), summary.Failed)
	return 1
}

func (a *App) printChanges(prior, current map[string]string) {
	fixed, regressed := report.Changes(prior, current)
	if len(fixed) == 0 && len(regressed) == 0 {
		return
	}

	fmt.Println()
	for _, name := range fixed {
		fmt.Printf("%s %s now passes\n", passStyle.Render("[FIXED]"), name)
	}
	for _, name := range regressed {
		fmt.Printf("%s %s passed last run\n", failStyle.Render("[REGRESSED]"), name)
	}
}

func (a *App) recordHistory(summary ledger.Summary) {
	if a.cfg.HistoryPath == "" {
		return
	}

	store, err := history.Open(a.cfg.HistoryPath)
	if err != nil {
		slog.Warn("could not open history store", "path", a.cfg.HistoryPath, "error", err)
		return
	}
	defer store.Close()

	err = store.SaveRun(history.Run{
		GrammarPath: a.cfg.GrammarPath,
		Total:       summary.Total,
		Passed:      summary.Passed,
		Failed:      summary.Failed,
	})
	if err != nil {
		slog.Warn("could not record run history", "path", a.cfg.HistoryPath, "error", err)
	}
}

func showHistory(cfg *config.Config, limit int) int {
	if cfg.HistoryPath == "" {
		fatalf("Error: history requested but history_path is not configured")
		return 1
	}

	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		fatalf("Error: could not open history store: %v", err)
		return 1
	}
	defer store.Close()

	runs, err := store.RecentRuns(limit)
	if err != nil {
		fatalf("Error: could not load run history: %v", err)
		return 1
	}

	fmt.Print(renderHistory(runs))
	return 0
}

func configureLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// loadConfig tolerates a missing file only at the default path; an explicit
// --config pointing nowhere is an error.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if path == defaultConfigPath && errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return nil, err
}

func applyFlagOverrides(cfg *config.Config, opts cliOptions) {
	if opts.set["grammar"] {
		cfg.GrammarPath = opts.grammar
	}
	if opts.set["samples"] {
		cfg.SamplesPath = opts.samples
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, failStyle.Render(fmt.Sprintf(format, args...)))
}
