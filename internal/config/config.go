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

// Package config mirrors the CLI surface of spec.md §6 into a plain
// struct that cmd/gpp builds from flags (and, optionally, a YAML mode
// file) and internal/engine consumes. Neither package depends on the
// `flag` package directly from here; cmd/gpp owns flag parsing so this
// struct stays usable from tests without touching os.Args.
package config

// Config is the fully-resolved set of knobs a run of the engine needs,
// corresponding field-for-field to the CLI surface table in spec.md §6.
type Config struct {
	// Preset selects a built-in mode: "c", "tex", "html", "xhtml",
	// "prolog", or "" for generic. Mutually exclusive with UserMode below.
	Preset string

	// UserMode/MetaMode hold the raw delimiter strings for -usermode and
	// -metamode, nine fields each in syntax.NewMode order; UserMode is nil
	// unless -usermode was given. A seven-field meta list is not accepted,
	// and MetaMode is applied only together with a nine-field UserMode.
	UserMode []string
	MetaMode []string

	// ModeFile, when set, is a path to a YAML mode-definition file loaded
	// in place of Preset/UserMode/MetaMode, which are then ignored (spec.md
	// §3 ambient config layer; see internal/config/modefile.go).
	ModeFile string

	// Defines holds -D definitions in raw `name`, `name=val`, or
	// `name(a,b)=body` form, applied in order before the main input is
	// processed.
	Defines []string

	// IncludeDirs is the -I search path list, in declaration order. No
	// limit is placed on the number of entries.
	IncludeDirs []string

	// PreInclude is the --include file processed before the main input.
	PreInclude string

	// OutputPath is the -o/-O destination; empty means stdout.
	OutputPath string
	// MirrorStdout is true for -O (also mirror output to stdout).
	MirrorStdout bool

	// ExecAllowed gates #exec (-x).
	ExecAllowed bool
	// AutoSwitchC gates auto-switching to the C preset on .h/.c includes
	// (-m).
	AutoSwitchC bool
	// PreserveLF keeps macro-terminating line feeds in the output (-n).
	PreserveLF bool
	// CRLF emits \r\n line endings (-z).
	CRLF bool

	// NoStdInclude / NoCurInclude / CurDirIncludeLast are the three
	// --nostdinc / --nocurinc / --curdirinclast search-path modifiers of
	// spec.md §4.7.
	NoStdInclude      bool
	NoCurInclude      bool
	CurDirIncludeLast bool

	// WarningLevel gates diagnostic verbosity: 0 silences, 2 is default
	// (spec.md §6 "--warninglevel").
	WarningLevel int

	// IncludeMarker is the --includemarker format string, or "" if
	// disabled.
	IncludeMarker string
}

// Default returns a Config with the spec's stated defaults: generic
// preset, warning level 2, no exec, no auto-switch.
func Default() *Config {
	return &Config{WarningLevel: 2}
}
