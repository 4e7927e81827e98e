package cli

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/veldt-lang/veldt"
	"github.com/veldt-lang/veldt/diag"
)

type ParseCmd struct {
	File FileOrStdin `help:"Veldt input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *ParseCmd) Run(ctx *kong.Context) error {
	src, err := cmd.File.Source()
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	expr, err := veldt.ParseString(src, cmd.File.Filename)
	if err != nil {
		formatter := diag.NewTextFormatter(diag.WithSource(src))
		_, _ = fmt.Fprintln(ctx.Stderr, formatter.Format(veldt.ErrorDiagnostic(err)))
		os.Exit(1)
	}

	repr.Println(expr)

	return nil
}
