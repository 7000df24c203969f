package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-imd1/internal/config"
	"github.com/alnah/go-imd1/internal/fileutil"
	"github.com/alnah/go-imd1/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command in args and returns the process exit
// code. A first argument that names a Markdown file or an existing
// directory is treated as "convert".
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	var err error

	switch {
	case isCommand(cmd, "convert"):
		err = runConvertCmd(ctx, rest, env)
	case isCommand(cmd, "config"):
		err = runConfigCmd(rest, env)
	case isCommand(cmd, "version"), cmd == "--version":
		fmt.Fprintf(env.Stdout, "imd1 %s\n", Version)
	case isCommand(cmd, "help"), cmd == "-h", cmd == "--help":
		return runHelp(rest, env)
	case looksLikeMarkdown(cmd) || isDir(cmd):
		err = runConvertCmd(ctx, args[1:], env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	return reportError(env.Stderr, err)
}

// reportError prints err with its hint and maps it to an exit code.
// A help request is not an error.
func reportError(w io.Writer, err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintf(w, "error: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}

// isCommand reports whether arg names cmd.
func isCommand(arg, cmd string) bool {
	return arg == cmd
}

// looksLikeMarkdown reports whether arg has a Markdown file extension.
func looksLikeMarkdown(arg string) bool {
	ext := filepath.Ext(arg)
	return ext == ".md" || ext == ".markdown"
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// runConfigCmd prints the effective configuration as YAML.
func runConfigCmd(args []string, env *Environment) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	var common commonFlags
	addCommonFlags(fs, &common)
	fs.Usage = func() { printConfigUsage(env.Stderr) }

	if err := parseFlagSet(fs, args); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	cfg, err := loadConfig(common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	return printConfig(env.Stdout, cfg)
}

// loadConfig loads the config named by the flag, falling back to
// IMD1_CONFIG, or returns defaults when neither is set.
func loadConfig(name string, env *envConfig) (*config.Config, error) {
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		var searched []string
		if !fileutil.IsFilePath(name) {
			searched = config.SearchPaths(name)
		}
		return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(searched))
	}
	return cfg, nil
}
