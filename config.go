package main

import (
	"fmt"
	"os"
	"strings"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const envPrefix = "MAN2MD_"

// applyConfig layers configuration sources in increasing priority: config
// file, then MAN2MD_* environment variables, then command-line flags. The
// merged values replace the flag-bound options before execution.
func (app *cliApp) applyConfig(flags *pflag.FlagSet) error {
	k := koanf.New(".")
	if path := findConfigFile(app.opts.configPath); path != "" {
		if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
			return fmt.Errorf("load config %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(envPrefix, ".", envToFlag), nil); err != nil {
		return fmt.Errorf("load environment: %w", err)
	}
	if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
		return fmt.Errorf("load flags: %w", err)
	}

	app.opts.manRoot = k.String("man-root")
	app.opts.section = k.Int("section")
	app.opts.exportsPath = k.String("exports")
	app.opts.outputPath = k.String("output")
	app.opts.plain = k.Bool("plain")
	app.opts.exactArgs = k.Bool("exact-args")
	app.opts.jsonOut = k.Bool("json")
	app.opts.verbose = k.Bool("verbose")
	return nil
}

// envToFlag maps MAN2MD_MAN_ROOT to the flag name man-root.
func envToFlag(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", "-")
}

// findConfigFile picks the config file to load: an explicit path wins, then
// man2md.yaml or man2md.yml in the working directory. No file is fine.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"man2md.yaml", "man2md.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}
