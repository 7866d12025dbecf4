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

package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"seehuhn.de/go/fontconv/convert"
	"seehuhn.de/go/fontconv/internal/fontforge"
	"seehuhn.de/go/fontconv/internal/logging"
	"seehuhn.de/go/fontconv/pathres"
	"seehuhn.de/go/fontconv/proof"
	"seehuhn.de/go/fontconv/tools/internal/buildinfo"
	"seehuhn.de/go/fontconv/tools/internal/profile"
)

const toolName = "fontconv"

// options holds the values of the command line flags.
type options struct {
	backend   string
	fontforge string
	timeout   time.Duration

	force     bool
	verify    bool
	proofFile string
	proofText string
	proofSize float64

	logLevel   string
	logFormat  string
	cpuprofile string
	memprofile string

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opt := &options{}

	cmd := &cobra.Command{
		Use:   toolName + " <input_filename> <output_filename>",
		Short: "Convert TTF files to OTF (and vice versa)",
		Long: `Convert a font file between the TrueType (.ttf) and OpenType (.otf)
formats.  The output format is chosen by the extension of the output file.
Paths may be given in Windows notation (containing '\' or ':') or in POSIX
notation.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       buildinfo.Read(toolName).VersionString(),
		RunE: opt.profiled(func(cc *cobra.Command, args []string) error {
			return opt.runConvert(cc, args[0], args[1])
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&opt.backend, "backend", "auto", "conversion backend (auto, native, fontforge)")
	flags.StringVar(&opt.fontforge, "fontforge", "", "FontForge executable (default $"+fontforge.EnvExecutable+" or \"fontforge\")")
	flags.DurationVar(&opt.timeout, "timeout", 0, "maximum running time of FontForge (0 for no limit)")
	flags.BoolVarP(&opt.force, "force", "f", false, "overwrite an existing output file")
	flags.BoolVar(&opt.verify, "verify", false, "re-read the output and compare it to the input")
	flags.StringVar(&opt.proofFile, "proof", "", "render a sample of the converted font into this PNG `file`")
	flags.StringVar(&opt.proofText, "proof-text", proof.DefaultText, "sample text for --proof")
	flags.Float64Var(&opt.proofSize, "proof-size", 48, "font size in pixels for --proof")

	pflags := cmd.PersistentFlags()
	pflags.StringVar(&opt.logLevel, "log-level", logging.DefaultLevel(), "log level (debug, info, warn, error)")
	pflags.StringVar(&opt.logFormat, "log-format", "", "log format (text, logfmt, json)")
	pflags.StringVar(&opt.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	pflags.StringVar(&opt.memprofile, "memprofile", "", "write memory profile to `file`")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		logger, err := logging.New(cc.ErrOrStderr(), opt.logLevel, opt.logFormat)
		if err != nil {
			return err
		}
		opt.logger = logger
		return nil
	}

	cmd.AddCommand(newConvertDirCmd(opt), newInspectCmd(opt), newVersionCmd())
	return cmd
}

// profiled wraps a command so that it runs with CPU and memory profiling,
// if requested.  The profiles are written even if run fails.
func (opt *options) profiled(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cc *cobra.Command, args []string) (err error) {
		stop, err := profile.Start(opt.cpuprofile, opt.memprofile)
		if err != nil {
			return err
		}
		defer func() {
			if stopErr := stop(); err == nil {
				err = stopErr
			}
		}()
		return run(cc, args)
	}
}

// runConvert implements the main command: resolve the paths, print them,
// convert the font.
func (opt *options) runConvert(cc *cobra.Command, rawIn, rawOut string) error {
	if opt.proofFile != "" && !(opt.proofSize > 0) {
		return fmt.Errorf("invalid --proof-size %g", opt.proofSize)
	}

	in, err := pathres.Abs(rawIn)
	if err != nil {
		return err
	}
	out, err := pathres.Abs(rawOut)
	if err != nil {
		return err
	}
	opt.logger.Debug("resolved paths",
		"input", in, "input_style", pathres.Classify(rawIn),
		"output", out, "output_style", pathres.Classify(rawOut))

	fmt.Fprintf(cc.OutOrStdout(), "Inpath: %s, Outpath: %s\n", in, out)

	conv, err := opt.converter()
	if err != nil {
		return err
	}
	err = conv.Convert(cc.Context(), in, out)
	if err != nil {
		return err
	}

	if opt.verify {
		want := convert.FormatFromExt(out)
		if want != convert.TrueType && want != convert.OpenType {
			opt.logger.Warn("cannot verify output", "format", want)
		} else if err := convert.Verify(in, out, want); err != nil {
			return err
		}
	}

	if opt.proofFile != "" {
		return opt.writeProof(out)
	}
	return nil
}

func (opt *options) converter() (*convert.Converter, error) {
	native := &convert.Native{Logger: opt.logger}
	ff := fontforge.New(opt.fontforge)
	ff.Timeout = opt.timeout
	ff.Logger = opt.logger

	var backends []convert.Backend
	switch opt.backend {
	case "auto":
		backends = []convert.Backend{native}
		if ff.Available() {
			backends = append(backends, ff)
		} else {
			opt.logger.Debug("FontForge not found", "executable", ff.Executable)
		}
	case "native":
		backends = []convert.Backend{native}
	case "fontforge":
		backends = []convert.Backend{ff}
	default:
		return nil, fmt.Errorf("unknown backend %q", opt.backend)
	}
	return &convert.Converter{
		Backends:  backends,
		Overwrite: opt.force,
		Logger:    opt.logger,
	}, nil
}

func (opt *options) writeProof(fontFile string) error {
	info, err := convert.ReadFont(fontFile)
	if err != nil {
		return fmt.Errorf("proof: %w", err)
	}
	img, err := proof.Render(info, opt.proofText, opt.proofSize)
	if err != nil {
		return err
	}
	proofFile, err := pathres.Abs(opt.proofFile)
	if err != nil {
		return err
	}
	opt.logger.Info("writing proof", "file", proofFile)
	return proof.WritePNG(proofFile, img)
}
