// ProjectWizard - CLAUDE.md Project Setup Wizard
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Verbose enables Debug output.
var Verbose bool

var (
	outMu  sync.Mutex
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects informational lines to out and warnings, errors and
// debug lines to errOut. A nil writer leaves that stream unchanged.
func SetOutput(out, errOut io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

func emit(toErr bool, color, tag, msg string) {
	outMu.Lock()
	defer outMu.Unlock()
	w := stdout
	if toErr {
		w = stderr
	}
	fmt.Fprintf(w, "%s[%s]%s %s\n", color, tag, NC, msg)
}

// Info prints an informational line.
func Info(msg string) { emit(false, Cyan, "INFO", msg) }

// Infof is the formatted form of Info.
func Infof(format string, a ...any) { Info(fmt.Sprintf(format, a...)) }

// Success prints a success line.
func Success(msg string) { emit(false, Green, "OK", msg) }

// Successf is the formatted form of Success.
func Successf(format string, a ...any) { Success(fmt.Sprintf(format, a...)) }

// Warn prints a warning to the error stream.
func Warn(msg string) { emit(true, Yellow, "WARN", msg) }

// Warnf is the formatted form of Warn.
func Warnf(format string, a ...any) { Warn(fmt.Sprintf(format, a...)) }

// Error prints an error and exits with status 1. Library code must use
// ErrorNoExit or return the error instead.
func Error(msg string) {
	ErrorNoExit(msg)
	os.Exit(1)
}

// Errorf is the formatted form of Error.
func Errorf(format string, a ...any) { Error(fmt.Sprintf(format, a...)) }

// ErrorNoExit prints an error without exiting.
func ErrorNoExit(msg string) { emit(true, Red, "ERROR", msg) }

// Debug prints msg when Verbose is set.
func Debug(msg string) {
	if Verbose {
		emit(true, Dim, "DEBUG", msg)
	}
}

// Debugf is the formatted form of Debug.
func Debugf(format string, a ...any) { Debug(fmt.Sprintf(format, a...)) }

// Cecho prints msg in color without a level tag.
func Cecho(msg, color string) {
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintf(stdout, "%s%s%s\n", color, msg, NC)
}
