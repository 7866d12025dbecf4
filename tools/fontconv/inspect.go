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
	"github.com/spf13/cobra"

	"seehuhn.de/go/fontconv/convert"
	"seehuhn.de/go/fontconv/pathres"
)

func newInspectCmd(opt *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <font>...",
		Short: "Show basic information about TrueType and OpenType fonts",
		Args:  cobra.MinimumNArgs(1),
		RunE: opt.profiled(func(cc *cobra.Command, args []string) error {
			for _, raw := range args {
				fname, err := pathres.Abs(raw)
				if err != nil {
					return err
				}
				opt.logger.Debug("reading font", "file", fname)
				s, err := convert.Describe(fname)
				if err != nil {
					return err
				}
				_, err = s.WriteTo(cc.OutOrStdout())
				if err != nil {
					return err
				}
			}
			return nil
		}),
	}
}
