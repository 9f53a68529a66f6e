// # man2md
//
// `man2md` converts documentation written in the nroff dot-macro markup
// (manual pages) into Markdown, and extracts per-function documentation
// blocks keyed by function name and inferred arity so they can be displayed
// as API documentation by a host toolchain.
//
// Key capabilities:
//
//   - transcode a whole page (title, sections, paragraphs, verbatim regions,
//     inline font escapes) into GitHub-friendly Markdown, degrading
//     gracefully on unrecognized macros instead of failing.
//   - split a page into its module description and EXPORTS section, carve
//     the latter into one block per documented function, and match blocks
//     against an exports manifest (longest name wins on shared prefixes).
//   - infer each function's arity from its signature line and attach
//     placeholder parameter names (see `--exact-args` for the legacy
//     off-by-one).
//   - render Markdown to stdout (styled when interactive) or any file path
//     via `-o`, or emit structured JSON records via `--json`.
//   - convert several modules in one invocation; pages are processed
//     concurrently and emitted in argument order.
//   - ship a Cobra-powered CLI with rich `--help`, `--version`, shell
//     completion, and a `gen-docs` helper for publishing the CLI reference.
//
// ## Usage
//
//	man2md [flags] module[:function[/arity]] [module...]
//
// Examples:
//
//   - Render the lists page and print to stdout:
//
//     man2md --exports exports.yaml lists
//
//   - Render one function, picking the three-argument variant:
//
//     man2md --exports exports.yaml lists:foldl/3
//
//   - Export a page as Markdown for a docs site:
//
//     man2md --exports exports.yaml -o docs/lists.md lists
//
// ## Supported Flags
//
//   - `--man-root DIR`: documentation root; when unset, discovery walks
//     `MAN2MD_MANROOT`, `MANPATH`, then the conventional system locations.
//   - `--section N`: manual section to search (default 3).
//   - `--exports FILE`: YAML manifest declaring each module's exported
//     functions and arities; required for function extraction.
//   - `-o FILE`: write Markdown to `FILE` (stdout when omitted).
//   - `--plain`: disable terminal styling.
//   - `--json`: emit documentation records as JSON.
//   - `--exact-args`: signatures carry exactly `arity` placeholders instead
//     of the legacy `arity+1`.
//   - `--config FILE`: config file (default `man2md.yaml`); values layer
//     under `MAN2MD_*` environment variables, which layer under flags.
//
// ## Exports Manifests
//
// Function extraction needs to know what a module exports. The manifest is
// plain YAML:
//
//	modules:
//	  lists:
//	    append: 2
//	    reverse: 1
//
// A module missing from the manifest fails the lookup loudly; a page without
// an EXPORTS section is a structural error. Blocks that match no export are
// silently dropped.
//
// ## Shell Completion
//
// Autocompletion is provided via Cobra's generators:
//
//	man2md completion bash        # bash
//	man2md completion zsh         # zsh
//	man2md completion fish | source
//	man2md completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
// `man2md` can generate Markdown for each CLI command via `gen-docs`:
//
//	man2md gen-docs ./docs/cli
//
// Every command becomes its own Markdown file under the provided directory.
package main
