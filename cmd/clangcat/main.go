// Package main is the entry point for clangcat — know your checkers.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/clangcat/clangcat/internal/clang"
	"github.com/clangcat/clangcat/internal/config"
	"github.com/clangcat/clangcat/internal/logging"
	"github.com/clangcat/clangcat/internal/output"
	"github.com/clangcat/clangcat/internal/runner"
	"github.com/clangcat/clangcat/internal/sysinfo"
	"github.com/clangcat/clangcat/internal/types"
)

// version is set at build time via -ldflags. The default is a dev fallback
// for plain `go install` or `go run` usage.
var version = "0.4.1"

// stringList is a repeatable flag value that preserves argument order.
// Order matters: plugin paths become compiler load order.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Config holds all parsed CLI flag values.
type Config struct {
	Compiler        string
	Plugins         stringList
	ConfigFile      string
	Format          string
	OutputFile      string
	Show            string
	CheckerID       string
	NoColor         bool
	Quiet           bool
	Debug           bool
	CompilerVersion bool
	ShowVersion     bool
}

// parseFlags parses command-line arguments into a Config using a dedicated
// FlagSet, keeping the global flag.CommandLine clean for testability.
func parseFlags(args []string) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet("clangcat", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.Compiler, "clang", "", "Compiler to query (path or binary name, default: clang from PATH)")
	fs.StringVar(&cfg.Compiler, "c", "", "Compiler to query (shorthand)")
	fs.Var(&cfg.Plugins, "plugin", "Analyzer plugin to load (repeatable, load order preserved)")
	fs.Var(&cfg.Plugins, "p", "Analyzer plugin to load (shorthand)")
	fs.StringVar(&cfg.ConfigFile, "config", "", "Path to config file (default: .clangcat.yaml, then XDG config dir)")
	fs.StringVar(&cfg.Format, "format", "", "Output format: text, json, jsonl (default: text)")
	fs.StringVar(&cfg.Format, "f", "", "Output format (shorthand)")
	fs.StringVar(&cfg.OutputFile, "output", "", "Write output to file (default: stdout)")
	fs.StringVar(&cfg.OutputFile, "o", "", "Write output to file (shorthand)")
	fs.StringVar(&cfg.Show, "show", "all", "Which checkers to display: all, active, inactive")
	fs.StringVar(&cfg.Show, "s", "all", "Which checkers to display (shorthand)")
	fs.StringVar(&cfg.CheckerID, "id", "", "Look up a single checker by name")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Suppress output, exit code only (0 = catalog built, 1 = failure)")
	fs.BoolVar(&cfg.Quiet, "q", false, "Suppress output (shorthand)")
	fs.BoolVar(&cfg.Debug, "debug", false, "Log spawned compiler commands to stderr")
	fs.BoolVar(&cfg.CompilerVersion, "compiler-version", false, "Print the compiler version line and exit")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print the clangcat version and exit")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "       _                             _\n")
		fmt.Fprintf(os.Stderr, "   ___| | __ _ _ __   __ _  ___ __ _| |_\n")
		fmt.Fprintf(os.Stderr, "  / __| |/ _` | '_ \\ / _` |/ __/ _` | __|\n")
		fmt.Fprintf(os.Stderr, " | (__| | (_| | | | | (_| | (_| (_| | |_\n")
		fmt.Fprintf(os.Stderr, "  \\___|_|\\__,_|_| |_|\\__, |\\___\\__,_|\\__|\n")
		fmt.Fprintf(os.Stderr, "                     |___/  know your checkers\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "  Usage: clangcat [options]\n\n")
		fmt.Fprintf(os.Stderr, "  Options:\n")
		fmt.Fprintf(os.Stderr, "    -c,  --clang <path>       Compiler to query (default: clang from PATH)\n")
		fmt.Fprintf(os.Stderr, "    -p,  --plugin <path>      Analyzer plugin to load (repeatable, in order)\n")
		fmt.Fprintf(os.Stderr, "         --config <file>      Config file (default: .clangcat.yaml)\n")
		fmt.Fprintf(os.Stderr, "    -f,  --format <type>      Output format: text, json, jsonl (default: text)\n")
		fmt.Fprintf(os.Stderr, "    -o,  --output <file>      Write output to file (default: stdout)\n")
		fmt.Fprintf(os.Stderr, "    -s,  --show <mode>        Display filter: all, active, inactive\n")
		fmt.Fprintf(os.Stderr, "         --id <checker>       Look up a single checker by name\n")
		fmt.Fprintf(os.Stderr, "         --no-color           Disable colored output\n")
		fmt.Fprintf(os.Stderr, "    -q,  --quiet              Suppress output, exit code only\n")
		fmt.Fprintf(os.Stderr, "         --debug              Log spawned compiler commands\n")
		fmt.Fprintf(os.Stderr, "         --compiler-version   Print the compiler version line and exit\n")
		fmt.Fprintf(os.Stderr, "         --version            Print the clangcat version and exit\n")
		fmt.Fprintf(os.Stderr, "\n  Examples:\n")
		fmt.Fprintf(os.Stderr, "    clangcat                              Full catalog, colored text\n")
		fmt.Fprintf(os.Stderr, "    clangcat --show active                Only checkers enabled by default\n")
		fmt.Fprintf(os.Stderr, "    clangcat --id unix.Malloc             Inspect one checker\n")
		fmt.Fprintf(os.Stderr, "    clangcat -c clang-18                  Query a specific toolchain\n")
		fmt.Fprintf(os.Stderr, "    clangcat -p ./mychecks.so             Include plugin checkers\n")
		fmt.Fprintf(os.Stderr, "    clangcat --format json -o cat.json    JSON for tooling\n")
		fmt.Fprintf(os.Stderr, "    clangcat --format jsonl               JSONL for log pipelines\n")
		fmt.Fprintf(os.Stderr, "\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	os.Exit(run(cfg))
}

// run executes the catalog query with the given configuration and returns
// an exit code: 0 success, 1 operational failure, 2 usage error.
func run(cfg *Config) int {
	if cfg.ShowVersion {
		fmt.Printf("clangcat %s\n", version)
		return 0
	}

	logging.SetDebug(cfg.Debug)

	if code := applyConfigFile(cfg); code >= 0 {
		return code
	}
	if code := validateFlags(cfg); code >= 0 {
		return code
	}

	compilerSpec := cfg.Compiler
	if compilerSpec == "" {
		compilerSpec = "clang"
	}
	compilerPath, err := runner.ResolveCompiler(compilerSpec)
	if err != nil {
		fail(cfg, err)
		return 1
	}

	ctx := context.Background()
	tc := clang.New(runner.ExecRunner{}, compilerPath)

	compilerVersion, err := tc.Version(ctx)
	if err != nil {
		fail(cfg, err)
		return 1
	}
	if cfg.CompilerVersion {
		if !cfg.Quiet {
			fmt.Println(compilerVersion)
		}
		return 0
	}

	queryStart := time.Now()
	catalog, err := tc.BuildCatalog(ctx, cfg.Plugins)
	if err != nil {
		fail(cfg, err)
		return 1
	}

	if cfg.CheckerID != "" {
		return lookupChecker(cfg, catalog)
	}
	if cfg.Quiet {
		return 0
	}

	report := buildReport(cfg, compilerPath, compilerVersion, catalog, queryStart)
	return writeReport(cfg, report)
}

// fail prints an operational error unless quiet mode is on.
func fail(cfg *Config, err error) {
	if !cfg.Quiet {
		fmt.Fprintf(os.Stderr, "  ✗ %v\n", err)
	}
}

// applyConfigFile loads the config file (explicit or default locations)
// and fills in values the flags left unset. Returns -1 on success or an
// exit code.
func applyConfigFile(cfg *Config) int {
	var fileCfg *config.Config
	var err error

	if cfg.ConfigFile != "" {
		fileCfg, err = config.Load(cfg.ConfigFile)
	} else {
		fileCfg, _, err = config.LoadDefault()
	}
	if err != nil {
		fail(cfg, err)
		return 1
	}

	if cfg.Compiler == "" {
		cfg.Compiler = fileCfg.Compiler
	}
	if len(cfg.Plugins) == 0 {
		cfg.Plugins = fileCfg.Plugins
	}
	if cfg.Format == "" {
		cfg.Format = fileCfg.Format
	}
	if fileCfg.NoColor {
		cfg.NoColor = true
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	return -1
}

// validateFlags checks --show and --format values.
// Returns -1 if valid, or an exit code (2) if invalid.
func validateFlags(cfg *Config) int {
	switch cfg.Show {
	case "all", "active", "inactive":
	default:
		fmt.Fprintf(os.Stderr, "  ✗ Invalid --show value %q (must be all, active, or inactive)\n", cfg.Show)
		return 2
	}
	switch cfg.Format {
	case "text", "json", "jsonl":
	default:
		fmt.Fprintf(os.Stderr, "  ✗ Invalid --format value %q (must be text, json, or jsonl)\n", cfg.Format)
		return 2
	}
	return -1
}

// lookupChecker handles --id: prints the single matching entry, or
// suggestions when the name is unknown.
func lookupChecker(cfg *Config, catalog types.Catalog) int {
	entry, ok := catalog[cfg.CheckerID]
	if !ok {
		if !cfg.Quiet {
			fmt.Fprintf(os.Stderr, "  ✗ No checker named %q\n", cfg.CheckerID)
			if suggestions := suggestNames(cfg.CheckerID, catalog.Names()); len(suggestions) > 0 {
				fmt.Fprintf(os.Stderr, "\n  Did you mean:\n")
				for _, s := range suggestions {
					fmt.Fprintf(os.Stderr, "    • %s\n", s)
				}
			}
		}
		return 1
	}

	if cfg.Quiet {
		return 0
	}
	status := "opt-in"
	if entry.Active {
		status = "active"
	}
	fmt.Printf("%s  [%s]\n    %s\n", entry.Name, status, entry.Description)
	return 0
}

// buildReport assembles the catalog report struct.
func buildReport(cfg *Config, compilerPath, compilerVersion string,
	catalog types.Catalog, queryStart time.Time,
) *types.CatalogReport {
	active := catalog.CountActive()
	return &types.CatalogReport{
		Version:   version,
		Timestamp: queryStart,
		Compiler: types.CompilerInfo{
			Path:    compilerPath,
			Version: compilerVersion,
		},
		System:  sysinfo.Collect(),
		Plugins: cfg.Plugins,
		Summary: types.Summary{
			Total:      len(catalog),
			Active:     active,
			Inactive:   len(catalog) - active,
			DurationMS: time.Since(queryStart).Milliseconds(),
		},
		Checkers: catalog.Entries(),
	}
}

// writeReport formats and writes the catalog report to stdout or a file.
func writeReport(cfg *Config, report *types.CatalogReport) int {
	isDumb := output.IsDumbTerm()
	if cfg.NoColor || cfg.Format != "text" || cfg.OutputFile != "" || isDumb {
		color.NoColor = true
	}

	termWidth := 0
	if cfg.OutputFile == "" && cfg.Format == "text" {
		if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
			if tw, _, err := term.GetSize(fd); err == nil && tw > 0 {
				termWidth = tw
			}
		}
	}

	var formatter output.Formatter
	switch cfg.Format {
	case "json":
		formatter = &output.JSONFormatter{}
	case "jsonl":
		formatter = &output.JSONLFormatter{}
	default:
		formatter = &output.TextFormatter{
			Show:  cfg.Show,
			Width: termWidth,
			Dumb:  isDumb,
		}
	}

	dest := os.Stdout
	if cfg.OutputFile != "" {
		f, err := os.Create(cfg.OutputFile)
		if err != nil {
			fail(cfg, err)
			return 1
		}
		defer f.Close()
		dest = f
	}

	if err := formatter.Write(dest, report); err != nil {
		fail(cfg, err)
		return 1
	}
	return 0
}
