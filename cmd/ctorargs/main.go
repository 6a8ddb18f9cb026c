// Command ctorargs prints the ABI-encoded constructor arguments appended to
// contract initcode, for use with block explorer source verification.
//
// Usage:
//
//	ctorargs <initcode_file_or_hex> <solc_version>
//	ctorargs /tmp/initcode.txt 0.8.29
//	ctorargs 0x608060405234801... 0.8.28
package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/indaco/ctorargs/internal/cli"
	"github.com/indaco/ctorargs/internal/printer"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// run executes the CLI and maps its outcome to a process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if err := runCLI(ctx, args, stdout, stderr); err != nil {
		// Usage text is already on stdout.
		if !errors.Is(err, cli.ErrUsage) {
			printer.FprintError(stderr, err.Error())
		}
		return 1
	}
	return 0
}

func runCLI(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	return cli.New(stdout, stderr).Run(ctx, args)
}
