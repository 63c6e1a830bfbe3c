package cliapp

import "flag"

const versionString = "1.0.0"
const defaultConfigPath = "./rtscheck.toml"

type cliOptions struct {
	configPath string
	file       string
	grammar    string
	samples    string
	watch      bool
	historyN   int
	verbose    bool
	version    bool

	// set records which flags were given explicitly, so they can override
	// config file values.
	set map[string]bool
}

func parseOptions(args []string) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("rtscheck", flag.ContinueOnError)

	fs.StringVar(&opts.configPath, "config", defaultConfigPath, "Path to config file")
	fs.StringVar(&opts.file, "file", "", "Validate a single script file instead of the samples directory")
	fs.StringVar(&opts.grammar, "grammar", "realtest.lark", "Path to the grammar file")
	fs.StringVar(&opts.samples, "samples", "samples", "Path to the samples directory")
	fs.BoolVar(&opts.watch, "watch", false, "Stay alive and re-validate when the grammar or samples change")
	fs.IntVar(&opts.historyN, "history", 0, "Print the last N validation runs and exit")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})

	return opts, nil
}
