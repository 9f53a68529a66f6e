package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"

	"github.com/agentflare-ai/man2md/internal/manpath"
)

const rootLongDesc = `
man2md converts nroff-style manual pages into Markdown and extracts
per-function documentation keyed by function name and inferred arity. It
resolves pages under a documentation root (flag, MAN2MD_MANROOT, MANPATH, or
the conventional system locations), matches function blocks against an
exports manifest, and renders:

  • the whole page for a bare module argument (` + "`man2md lists`" + `)
  • a single function with ` + "`module:function`" + ` or ` + "`module:function/arity`" + `
  • structured records via --json for host toolchains

Output goes to stdout (styled when interactive, see --plain) or to a file
via -o. Shell completion and CLI reference docs are built in.
`

func newRootCmd(stdout io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout}
	cmd := &cobra.Command{
		Use:           "man2md [flags] module[:function[/arity]] [module...]",
		Short:         "Render manual pages as Markdown",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVar(&app.opts.manRoot, "man-root", "", "documentation root to search (overrides environment discovery)")
	flags.IntVar(&app.opts.section, "section", manpath.DefaultSection, "manual section to search")
	flags.StringVar(&app.opts.exportsPath, "exports", "", "YAML manifest of module exports (required for function extraction)")
	flags.StringVarP(&app.opts.outputPath, "output", "o", "", "write output Markdown to file instead of stdout")
	flags.BoolVar(&app.opts.plain, "plain", false, "disable terminal styling")
	flags.BoolVar(&app.opts.exactArgs, "exact-args", false, "emit exactly arity signature placeholders instead of the legacy arity+1")
	flags.BoolVar(&app.opts.jsonOut, "json", false, "emit documentation records as JSON")
	flags.BoolVarP(&app.opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&app.opts.configPath, "config", "", "config file (default man2md.yaml in the working directory)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if err := app.applyConfig(cmd.Flags()); err != nil {
			return err
		}
		return app.execute(ctx, args)
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const longDesc = `Generate shell completion scripts for man2md.

The output should be evaluated by your shell. For example:

  # bash
  man2md completion bash > /usr/local/etc/bash_completion.d/man2md

  # zsh
  man2md completion zsh > "${fpath[1]}/_man2md"

  # fish
  man2md completion fish | source

  # PowerShell
  man2md completion powershell | Out-String | Invoke-Expression
`
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  man2md gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
