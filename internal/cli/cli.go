package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/indaco/ctorargs/internal/extract"
	"github.com/indaco/ctorargs/internal/input"
	"github.com/indaco/ctorargs/internal/metadata"
	"github.com/indaco/ctorargs/internal/parser"
	"github.com/indaco/ctorargs/internal/printer"
	"github.com/indaco/ctorargs/internal/version"
	"github.com/tidwall/sjson"
	urfavecli "github.com/urfave/cli/v3"
)

const usageText = `Usage: ctorargs <initcode_file_or_hex> <solc_version>

Examples:
  ctorargs /tmp/initcode.txt 0.8.29
  ctorargs 0x608060405234801... 0.8.28
  ctorargs --solc-from foundry.toml /tmp/initcode.txt`

const usageHint = "Get solc version from foundry.toml: grep solc foundry.toml"

// New builds and returns the root CLI command. Results go to stdout;
// urfave/cli writes its own errors to stderr.
func New(stdout, stderr io.Writer) *urfavecli.Command {
	var noColorFlag bool

	return &urfavecli.Command{
		Name:      "ctorargs",
		Version:   "v" + strings.TrimPrefix(version.GetVersion(), "v"),
		Usage:     "Extract ABI-encoded constructor arguments from contract initcode",
		UsageText: "ctorargs [options] <initcode-file-or-hex> <solc-version>",
		Writer:    stdout,
		ErrWriter: stderr,

		// A positional "help" or "h" may be an initcode file.
		HideHelpCommand: true,

		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:      "solc-from",
				Usage:     "Read the solc version from a project file (foundry.toml, build artifact, ...)",
				TakesFile: true,
			},
			&urfavecli.StringFlag{
				Name:  "solc-field",
				Usage: "Dot-separated field holding the version in the --solc-from file",
			},
			&urfavecli.StringFlag{
				Name:  "solc-format",
				Usage: "Format of the --solc-from file: json, yaml, toml or raw (default: from extension)",
			},
			&urfavecli.BoolFlag{
				Name:  "json",
				Usage: "Print the marker and arguments as a JSON object",
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag)
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			return runExtract(cmd)
		},
	}
}

// runExtract resolves the inputs, builds the marker and prints the
// constructor arguments that follow it.
func runExtract(cmd *urfavecli.Command) error {
	solcFrom := cmd.String("solc-from")

	required := 2
	if solcFrom != "" {
		required = 1
	}
	if cmd.Args().Len() < required {
		printUsage(cmd.Writer)
		return ErrUsage
	}

	if cmd.Args().Len() > 2 {
		printer.FprintWarning(cmd.ErrWriter, fmt.Sprintf("ignoring %d extra argument(s)", cmd.Args().Len()-2))
	}

	data, src, err := input.Resolve(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	if src == input.SourceFile {
		printer.FprintFaint(cmd.ErrWriter, fmt.Sprintf("reading initcode from %s %s", src, cmd.Args().Get(0)))
	}

	solcVersion, err := resolveVersion(cmd, solcFrom)
	if err != nil {
		return err
	}

	pattern, err := metadata.MarkerFor(solcVersion)
	if err != nil {
		return err
	}

	args, ok := extract.ConstructorArgs(data, pattern)
	if !ok {
		return &PatternNotFoundError{Pattern: pattern}
	}

	if cmd.Bool("json") {
		out, err := jsonResult(pattern, args)
		if err != nil {
			return err
		}
		printer.Fprintln(cmd.Writer, out)
		return nil
	}

	printer.Fprintln(cmd.Writer, args)
	return nil
}

// resolveVersion returns the positional version, or reads it from the
// --solc-from file when no positional was given.
func resolveVersion(cmd *urfavecli.Command, solcFrom string) (string, error) {
	if cmd.Args().Len() >= 2 {
		return cmd.Args().Get(1), nil
	}

	v, err := parser.NewReader().ReadVersion(parser.FileConfig{
		Path:   solcFrom,
		Format: parser.Format(cmd.String("solc-format")),
		Field:  cmd.String("solc-field"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to read solc version: %w", err)
	}
	printer.FprintFaint(cmd.ErrWriter, fmt.Sprintf("using solc %s from %s", v, solcFrom))
	return v, nil
}

func jsonResult(pattern, args string) (string, error) {
	out, err := sjson.Set("", "pattern", pattern)
	if err != nil {
		return "", err
	}
	return sjson.Set(out, "args", args)
}

func printUsage(w io.Writer) {
	printer.Fprintln(w, usageText)
	printer.Fprintln(w, "")
	printer.FprintFaint(w, usageHint)
}
