/*
 * main.go, part of rce1d.
 *
 * Copyright 2026 The RCE-1D-Emanuel authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Command rceplot draws the diagnostic figures of an RCE model run.
//
//	rceplot                    # reads ./output/
//	rceplot --dir output1      # reads ./output1/
//	rceplot --save figs        # writes the PNG files into figs/
//
// Without --save, the figures are shown with $RCE_VIEWER if there is a display
// (DISPLAY or WAYLAND_DISPLAY set), and saved into the run directory otherwise.
// Shown figures are written to a new directory under $TMPDIR, which is left in
// place. Set RCE_VIEWER to a viewer that blocks (RCE_VIEWER=eog) to have
// rceplot wait until the figures are closed.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ankurk017/RCE-1D-Emanuel/internal/cli"
	"github.com/ankurk017/RCE-1D-Emanuel/output"
	"github.com/ankurk017/RCE-1D-Emanuel/rceplot"
)

const usage = "Usage: rceplot [--dir RUN_DIR] [--save DIR] [-v]"

type app struct {
	runDir   string
	saveDir  string
	verbose  bool
	settings *cli.Settings
	logger   *zap.Logger
	stdout   io.Writer
	//overrides the settings-based resolver; for tests
	resolver rceplot.ModeResolver
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rceplot",
		Short:         "Plot the outputs of an RCE model run",
		Args:          cli.ExactArgs(0, usage),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a.settings, err = cli.LoadSettings(nil)
			if err != nil {
				return err
			}
			a.logger, err = cli.NewLogger(a.settings.LogLevel, a.verbose)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.plot()
		},
	}
	cmd.Flags().StringVar(&a.runDir, "dir", "output", "run directory containing the *.out files")
	cmd.Flags().StringVar(&a.saveDir, "save", "", "directory to save PNGs into; if omitted, figures are shown when a display is available")
	cmd.Flags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	cli.UsageOnFlagError(cmd, usage)
	return cmd
}

func (a *app) plot() error {
	run, err := output.Load(a.runDir)
	if err != nil {
		return err
	}
	a.logger.Debug("loaded run", zap.String("dir", a.runDir),
		zap.Int("times", len(run.Time)), zap.Int("levels", len(run.Profile)))
	var resolver rceplot.ModeResolver = a.settings.Resolver()
	if a.resolver != nil {
		resolver = a.resolver
	}
	P := &rceplot.Plotter{
		Resolver: resolver,
		Viewer:   rceplot.CommandViewer{Command: a.settings.Viewer},
		Style:    a.settings.Style(),
		Logger:   a.logger,
	}
	res, err := P.Render(run, a.saveDir)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, res.String())
	return nil
}

func run(a *app, args []string, stderr io.Writer) int {
	cmd := newRootCmd(a)
	if args == nil {
		args = []string{} //cobra falls back to os.Args on nil
	}
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	return cli.Report(err, a.logger, stderr, "rceplot")
}

func main() {
	os.Exit(run(&app{stdout: os.Stdout}, os.Args[1:], os.Stderr))
}
