package cli

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/veldt-lang/veldt"
	"github.com/veldt-lang/veldt/diag"
)

// maxDiagnostics is how many diagnostics are shown before asking whether to
// continue.
const maxDiagnostics = 10

type CheckCmd struct {
	File  FileOrStdin `help:"Veldt input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	JSON  bool        `help:"Report diagnostics as JSON."`
	Watch bool        `help:"Re-check whenever the file changes."`
}

func (cmd *CheckCmd) Run(ctx *kong.Context) error {
	if cmd.Watch {
		if cmd.File.IsStdin() || cmd.File.Filename == "" {
			return fmt.Errorf("--watch requires a file argument")
		}
		return cmd.watch(ctx)
	}

	failed, err := cmd.checkOnce(ctx)
	if err != nil {
		return err
	}
	if failed {
		os.Exit(1)
	}
	return nil
}

// checkOnce runs a single check pass, reporting whether diagnostics were
// found.
func (cmd *CheckCmd) checkOnce(ctx *kong.Context) (bool, error) {
	src, err := cmd.File.Source()
	if err != nil {
		return false, fmt.Errorf("failed to read input: %w", err)
	}

	filename := cmd.File.Filename
	diagnostics := veldt.Check(src, filename)

	if cmd.JSON {
		_, _ = fmt.Fprintln(ctx.Stdout, diag.NewJSONFormatter().FormatAll(diagnostics))
		return len(diagnostics) > 0, nil
	}

	if len(diagnostics) == 0 {
		printSuccess(ctx.Stdout, "Check passed")
		return false, nil
	}

	shown := diagnostics
	if len(diagnostics) > maxDiagnostics {
		shown = diagnostics[:maxDiagnostics]
	}

	formatter := diag.NewTextFormatter(diag.WithSource(src))
	_, _ = fmt.Fprintln(ctx.Stderr, formatter.FormatAll(shown))

	if rest := diagnostics[len(shown):]; len(rest) > 0 {
		more, err := promptYesNo(fmt.Sprintf("Show the remaining %d diagnostics?", len(rest)))
		if err != nil {
			return true, err
		}
		if more {
			_, _ = fmt.Fprintln(ctx.Stderr, formatter.FormatAll(rest))
		}
	}

	_, _ = fmt.Fprintln(ctx.Stderr)
	printError(ctx.Stderr, fmt.Sprintf("%d diagnostic(s) found", len(diagnostics)))
	return true, nil
}

// watch re-checks the file whenever it changes, until interrupted.
func (cmd *CheckCmd) watch(ctx *kong.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(cmd.File.AbsoluteFilename()); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cmd.File.Filename, err)
	}

	if _, err := cmd.checkOnce(ctx); err != nil {
		return err
	}
	printInfof(ctx.Stdout, "Watching %s", cmd.File.Filename)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	// Debounce timer - editors often write files in multiple steps.
	const debounceDelay = 100 * time.Millisecond
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	recheck := make(chan struct{}, 1)
	for {
		select {
		case <-interrupt:
			return nil

		case <-recheck:
			if _, err := cmd.checkOnce(ctx); err != nil {
				return err
			}

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Remove/Rename are common in atomic saves.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				// Re-add the path so atomic saves keep being watched.
				_ = watcher.Add(cmd.File.AbsoluteFilename())
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case recheck <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("watch error: %v", err))
		}
	}
}
