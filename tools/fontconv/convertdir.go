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

	"github.com/spf13/cobra"

	"seehuhn.de/go/fontconv/internal/fontforge"
	"seehuhn.de/go/fontconv/pathres"
)

func newConvertDirCmd(opt *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert-dir <directory>",
		Short: "Convert all TTF files in a directory to OTF (and vice versa)",
		Long: `Convert every .ttf and .otf file in a directory to the other format.
Each output file is written next to its input, with the extension swapped.
Existing output files are skipped unless --force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: opt.profiled(func(cc *cobra.Command, args []string) error {
			dir, err := pathres.Abs(args[0])
			if err != nil {
				return err
			}
			conv, err := opt.converter()
			if err != nil {
				return err
			}

			rep, err := conv.ConvertDir(cc.Context(), dir)
			if rep == nil {
				return err
			}
			for _, out := range rep.Converted {
				fmt.Fprintf(cc.OutOrStdout(), "Converted: %s\n", out)
			}
			for _, out := range rep.Skipped {
				fmt.Fprintf(cc.OutOrStdout(), "Skipped: %s (file exists)\n", out)
			}
			fmt.Fprintf(cc.OutOrStdout(), "%d converted, %d skipped, %d errors\n",
				len(rep.Converted), len(rep.Skipped), rep.Errors)
			if err != nil && rep.Errors > 0 {
				return fmt.Errorf("%d fonts failed to convert: %w", rep.Errors, err)
			}
			return err
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&opt.backend, "backend", "auto", "conversion backend (auto, native, fontforge)")
	flags.StringVar(&opt.fontforge, "fontforge", "", "FontForge executable (default $"+fontforge.EnvExecutable+" or \"fontforge\")")
	flags.DurationVar(&opt.timeout, "timeout", 0, "maximum running time of FontForge per font (0 for no limit)")
	flags.BoolVarP(&opt.force, "force", "f", false, "overwrite existing output files")
	return cmd
}
