package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"
	m "incov.dev/pkg/incov/internal/model"
)

// ErrNoAnalyzer is returned when no analyzer command is configured.
var ErrNoAnalyzer = errors.New("no analyzer command configured")

// AnalyzeArgs holds the (possibly filtered) inputs handed to the analyzer.
type AnalyzeArgs struct {
	Command     string
	ExecFiles   []m.Path
	ClassFiles  []m.Path
	SourceFiles []m.Path
	Extra       []string
}

// AnalyzerAdapter runs the external coverage analyzer.
type AnalyzerAdapter interface {
	Analyze(ctx context.Context, args AnalyzeArgs) error
}

// LocalAnalyzerAdapter runs the analyzer as a child process, streaming its
// output to the given writers.
type LocalAnalyzerAdapter struct {
	stdout io.Writer
	stderr io.Writer
}

// NewLocalAnalyzerAdapter constructs a LocalAnalyzerAdapter.
func NewLocalAnalyzerAdapter(stdout, stderr io.Writer) *LocalAnalyzerAdapter {
	return &LocalAnalyzerAdapter{
		stdout: stdout,
		stderr: stderr,
	}
}

// Analyze runs the analyzer command and waits for it to finish.
func (a *LocalAnalyzerAdapter) Analyze(ctx context.Context, args AnalyzeArgs) error {
	argv, err := BuildAnalyzerArgv(args)
	if err != nil {
		return err
	}

	slog.Debug("running analyzer", "argv", argv)

	// #nosec G204 - the analyzer command is user configuration
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = a.stdout
	cmd.Stderr = a.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("analyzer %s: %w", argv[0], err)
	}

	return nil
}

// BuildAnalyzerArgv splits the configured command shell-style and appends the
// exec files, one --classfiles/--sourcefiles pair per entry, then the extra
// arguments.
func BuildAnalyzerArgv(args AnalyzeArgs) ([]string, error) {
	if strings.TrimSpace(args.Command) == "" {
		return nil, ErrNoAnalyzer
	}

	argv, err := shellwords.Parse(args.Command)
	if err != nil {
		return nil, fmt.Errorf("parse analyzer command %q: %w", args.Command, err)
	}

	if len(argv) == 0 {
		return nil, ErrNoAnalyzer
	}

	for _, p := range args.ExecFiles {
		argv = append(argv, string(p))
	}

	for _, p := range args.ClassFiles {
		argv = append(argv, "--classfiles", string(p))
	}

	for _, p := range args.SourceFiles {
		argv = append(argv, "--sourcefiles", string(p))
	}

	return append(argv, args.Extra...), nil
}
