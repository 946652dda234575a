// Copyright 2026 The gpp-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

import (
	"fmt"
	"log"
)

// FatalError is returned by the engine when processing must abort
// (`#error`, an unresolvable `#include`, a malformed directive, a
// conditional-stack underflow, ...). Its Error() is already formatted as
// `FILENAME:LINE: error: MESSAGE` (spec.md §6 "Exit").
type FatalError struct {
	Location string
	Message  string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: error: %s", e.Location, e.Message)
}

// Fatalf builds a *FatalError located at loc.
func Fatalf(loc, format string, args ...any) error {
	return &FatalError{Location: loc, Message: fmt.Sprintf(format, args...)}
}

// Diagnostics routes warnings through the standard logger, independent of
// any fatal-error path, so `--warninglevel` (wired at the log.Output
// layer by cmd/gpp's installLogFilter, a logutils.LevelFilter) governs exactly what a
// run prints without this package needing to know about logutils itself.
type Diagnostics struct {
	// Level mirrors Config.WarningLevel so this package can suppress
	// below-threshold warnings even if the caller didn't also install a
	// log filter (e.g. in tests that capture log output directly).
	Level int
}

// Warn reports a non-fatal diagnostic at loc, filtered by Level (0
// silences, matching spec.md §6's `--warninglevel` table).
func (d *Diagnostics) Warn(loc, format string, args ...any) {
	if d.Level <= 0 {
		return
	}
	log.Printf("[WARN] %s: warning: %s", loc, fmt.Sprintf(format, args...))
}

// Info reports a verbose, non-warning diagnostic, shown only at the
// highest warning level.
func (d *Diagnostics) Info(loc, format string, args ...any) {
	if d.Level < 2 {
		return
	}
	log.Printf("[INFO] %s: %s", loc, fmt.Sprintf(format, args...))
}
