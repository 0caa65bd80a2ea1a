// Package main is the entry point for the webgroom configuration
// tool: it loads configuration from a file, TOML and the environment,
// and prints or checks the effective settings.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/webgroom/webgroom/internal/config"
	"github.com/webgroom/webgroom/internal/config/loader"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

const envPrefix = "WEBGROOM_"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		tomlPath    string
		showVersion bool
		checkOnly   bool
	)
	flag.StringVar(&configPath, "config", "", "path to a groomrc configuration file")
	flag.StringVar(&configPath, "c", "", "path to a groomrc configuration file (shorthand)")
	flag.StringVar(&tomlPath, "toml", "", "path to a TOML configuration file")
	flag.BoolVar(&checkOnly, "check", false, "validate the configuration and exit")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("webgroom %s (%s)\n", version, commit)
		return 0
	}

	problems := 0
	cfg := config.New(config.WithErrorHandler(func(err error) {
		fmt.Fprintf(os.Stderr, "webgroom: %v\n", err)
	}))

	if configPath == "" {
		configPath = defaultConfigPath()
	}
	if configPath != "" && config.FileExists(configPath) {
		n, err := cfg.ParseFile(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "webgroom: %v\n", err)
			return 1
		}
		problems += n
	}

	if tomlPath != "" {
		n, err := loader.NewTOMLLoader(tomlPath).Load(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "webgroom: %v\n", err)
			return 1
		}
		problems += n
	}

	n, err := loader.NewEnvLoader(envPrefix).Load(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "webgroom: %v\n", err)
		return 1
	}
	problems += n

	// command line overrides: name=value pairs
	for _, arg := range flag.Args() {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "webgroom: expected name=value, got %q\n", arg)
			return 2
		}
		if err := cfg.ParseOption(name, value); err != nil {
			problems++
		}
	}
	cfg.Adjust()

	if checkOnly {
		if problems > 0 {
			fmt.Fprintf(os.Stderr, "webgroom: %d configuration problem(s)\n", problems)
			return 1
		}
		fmt.Println("configuration ok")
		return 0
	}

	if err := cfg.Save(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "webgroom: %v\n", err)
		return 1
	}
	if problems > 0 {
		return 1
	}
	return 0
}

// defaultConfigPath finds the conventional configuration file, if any.
func defaultConfigPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".groomrc")
		if config.FileExists(p) {
			return p
		}
	}
	return ""
}
