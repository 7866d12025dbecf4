// seehuhn.de/go/fontconv - convert fonts between TrueType and OpenType
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package fontforge converts fonts by running the FontForge executable.
//
// FontForge is started in script mode and asked to open the input font and
// to generate the output font.  FontForge chooses the output format from the
// file name extension.
package fontforge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"seehuhn.de/go/fontconv/convert"
)

// DefaultExecutable is the name of the FontForge executable used if
// no other name is configured.
const DefaultExecutable = "fontforge"

// EnvExecutable names the environment variable which can be used to
// override the location of the FontForge executable.
const EnvExecutable = "FONTCONV_FONTFORGE"

// script is run by FontForge's native scripting language.
// $1 is the input file name, $2 the output file name.
const script = "Open($1); Generate($2)"

// Backend implements [convert.Backend] by running FontForge.
type Backend struct {
	// Executable is the path or name of the FontForge binary.
	Executable string

	// Timeout, if positive, limits the running time of FontForge.
	Timeout time.Duration

	Logger *slog.Logger
}

// New returns a backend which runs the given executable.  If exe is empty,
// the value of $FONTCONV_FONTFORGE is used, falling back to "fontforge".
func New(exe string) *Backend {
	if exe == "" {
		exe = os.Getenv(EnvExecutable)
	}
	if exe == "" {
		exe = DefaultExecutable
	}
	return &Backend{Executable: exe}
}

// Name implements the [convert.Backend] interface.
func (b *Backend) Name() string {
	return "fontforge"
}

// Supports implements the [convert.Backend] interface.
// FontForge detects both formats itself, so every pair is accepted.
func (b *Backend) Supports(from, to convert.Format) bool {
	return true
}

// Available reports whether the FontForge executable can be found.
func (b *Backend) Available() bool {
	_, err := exec.LookPath(b.Executable)
	return err == nil
}

// Convert implements the [convert.Backend] interface.
func (b *Backend) Convert(ctx context.Context, in, out string) error {
	// FontForge creates no output if Open() fails, but it does so after
	// printing its banner.  Checking first gives a clearer error.
	if _, err := os.Stat(in); err != nil {
		return fmt.Errorf("open: %w", err)
	}

	if b.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, b.Executable, "-lang=ff", "-c", script, in, out)
	err := b.run(ctx, cmd)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	return nil
}

// run starts cmd and waits for it to finish.
// On failure, the returned error is a *CmdError.
func (b *Backend) run(ctx context.Context, cmd *exec.Cmd) error {
	logger := b.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// log in a way we can copy-and-paste into a terminal
	args := quoteArgs(cmd.Args)
	logger.Info("running", "cmd", args)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	logger.Debug("finished", "duration", time.Since(start), "stderr", strings.TrimSpace(stderr.String()))
	if err != nil {
		var cause error = err
		if ctxErr := context.Cause(ctx); ctxErr != nil {
			cause = fmt.Errorf("%w (%v)", ctxErr, err)
		}
		return &CmdError{
			Args:   args,
			Stderr: lastLines(stderr.String(), 5),
			Cause:  cause,
		}
	}
	return nil
}

// CmdError describes a failed run of an external program.
type CmdError struct {
	Args   string
	Stderr string
	Cause  error
}

func (ce *CmdError) Error() string {
	res := fmt.Sprintf("`%v` failed: %v", ce.Args, ce.Cause)
	if ce.Stderr != "" {
		res = fmt.Sprintf("%s: %s", res, ce.Stderr)
	}
	return res
}

func (ce *CmdError) Unwrap() error {
	return ce.Cause
}

// ExitCode returns the exit status of the program, or -1 if the program
// did not exit normally.
func (ce *CmdError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(ce.Cause, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// quoteArgs joins args into a single line which a POSIX shell splits back
// into the same words.
func quoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		if arg == "" || strings.IndexFunc(arg, needsQuote) >= 0 {
			arg = "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
		}
		quoted[i] = arg
	}
	return strings.Join(quoted, " ")
}

// needsQuote reports whether r has a special meaning to the shell.
func needsQuote(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return false
	case strings.ContainsRune("-_./,:+=@%", r):
		return false
	default:
		return true
	}
}

// lastLines returns the final n non-empty lines of s.  FontForge prints a
// copyright banner before any error message.
func lastLines(s string, n int) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
