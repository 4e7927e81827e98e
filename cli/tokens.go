package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/veldt-lang/veldt"
	"github.com/veldt-lang/veldt/scanner"
)

type TokensCmd struct {
	File  FileOrStdin `help:"Veldt input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Parts bool        `help:"Also list the parts of qualified names with their sub-intervals."`
}

func (cmd *TokensCmd) Run(ctx *kong.Context) error {
	src, err := cmd.File.Source()
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	tokens := veldt.ScanString(src, cmd.File.Filename)
	for _, tok := range tokens {
		_, _ = fmt.Fprintf(ctx.Stdout, "%-16s %-24s %q\n", tok.Type, tok.Interval, tok.Text)

		if cmd.Parts && tok.Type == scanner.QUALIFIED {
			for _, part := range tok.Parts() {
				_, _ = fmt.Fprintf(ctx.Stdout, "  %-14s %-24s %q\n", "part", part.Interval, part.Text)
			}
		}
	}

	return nil
}
