/*
 * errors.go, part of rce1d.
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

package rce

import "fmt"

// Error is the interface for errors that all packages in this module return.
// Decorate adds the name of a calling function (plus, optionally, extra info in the
// form "FunctionName: info") as the error travels up, and returns the decorations so far.
// Passing an empty string just returns the current decorations.
// Decorations never show up in Error(), which only describes the problem.
type Error interface {
	Error() string
	Decorate(string) []string
	//FileName is the file that caused the problem, or "" if none.
	FileName() string
}

// Decorate adds caller to err if err implements Error. Other errors are returned
// unchanged.
func Decorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
	}
	return err
}

type deco []string

func (d *deco) add(s string) []string {
	if s != "" {
		*d = append(*d, s)
	}
	return *d
}

//MissingFileError signals that a required input file is absent.
type MissingFileError struct {
	path string
	deco deco
}

func NewMissingFileError(path, caller string) *MissingFileError {
	e := &MissingFileError{path: path}
	e.deco.add(caller)
	return e
}

func (E *MissingFileError) Error() string {
	return fmt.Sprintf("missing file: %s", E.path)
}

func (E *MissingFileError) Decorate(d string) []string { return E.deco.add(d) }

func (E *MissingFileError) FileName() string { return E.path }

//MalformedFormatError signals a present file that violates its fixed-column
//or fixed-line contract.
type MalformedFormatError struct {
	path    string
	line    int //1-based, 0 if the problem is not tied to a line
	message string
	deco    deco
}

func NewMalformedFormatError(path string, line int, message, caller string) *MalformedFormatError {
	e := &MalformedFormatError{path: path, line: line, message: message}
	e.deco.add(caller)
	return e
}

func (E *MalformedFormatError) Error() string {
	if E.line > 0 {
		return fmt.Sprintf("malformed file %s, line %d: %s", E.path, E.line, E.message)
	}
	return fmt.Sprintf("malformed file %s: %s", E.path, E.message)
}

func (E *MalformedFormatError) Decorate(d string) []string { return E.deco.add(d) }

func (E *MalformedFormatError) FileName() string { return E.path }

// Line returns the offending line, or 0.
func (E *MalformedFormatError) Line() int { return E.line }

// SchemaMismatchError means a static schema table is inconsistent. It is a
// defect in the program, not in the data it reads.
type SchemaMismatchError struct {
	message string
	deco    deco
}

func NewSchemaMismatchError(message, caller string) *SchemaMismatchError {
	e := &SchemaMismatchError{message: message}
	e.deco.add(caller)
	return e
}

func (E *SchemaMismatchError) Error() string {
	return "schema mismatch: " + E.message
}

func (E *SchemaMismatchError) Decorate(d string) []string { return E.deco.add(d) }

func (E *SchemaMismatchError) FileName() string { return "" }

//IOError is returned when an output file or directory can't be created or written,
//or when reading an input fails for reasons other than its absence.
type IOError struct {
	path string
	op   string
	err  error
	deco deco
}

func NewIOError(op, path string, err error, caller string) *IOError {
	e := &IOError{path: path, op: op, err: err}
	e.deco.add(caller)
	return e
}

func (E *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", E.op, E.path, E.err)
}

func (E *IOError) Unwrap() error { return E.err }

func (E *IOError) Decorate(d string) []string { return E.deco.add(d) }

func (E *IOError) FileName() string { return E.path }
