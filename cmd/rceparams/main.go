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

// Command rceparams writes a copy of an RCE model configuration (params_ver2.in)
// into an output directory, together with a table describing its parameters
// (params_ver2_table.txt).
//
//	rceparams PARAMS_FILE OUTPUT_DIR
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ankurk017/RCE-1D-Emanuel/internal/cli"
	"github.com/ankurk017/RCE-1D-Emanuel/params"
	"github.com/ankurk017/RCE-1D-Emanuel/schema"
)

const usage = "Usage: rceparams PARAMS_FILE OUTPUT_DIR"

type app struct {
	verbose bool
	logger  *zap.Logger
	stdout  io.Writer
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rceparams PARAMS_FILE OUTPUT_DIR",
		Short:         "Archive an RCE configuration and describe its parameters",
		Args:          cli.ExactArgs(2, usage),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := cli.LoadSettings(nil)
			if err != nil {
				return err
			}
			a.logger, err = cli.NewLogger(settings.LogLevel, a.verbose)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.describe(args[0], args[1])
		},
	}
	cmd.Flags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	cli.UsageOnFlagError(cmd, usage)
	return cmd
}

func (a *app) describe(paramsFile, outDir string) error {
	a.logger.Debug("extracting parameters", zap.String("file", paramsFile))
	ex, err := params.Extract(paramsFile, schema.Params)
	if err != nil {
		return err
	}
	D := &params.Describer{Logger: a.logger}
	res, err := D.Describe(ex, outDir)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, res.String())
	return nil
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout}
	cmd := newRootCmd(a)
	if args == nil {
		args = []string{} //cobra falls back to os.Args on nil
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	return cli.Report(err, a.logger, stderr, "rceparams")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
