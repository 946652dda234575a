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

// Command gpp is the CLI front end over internal/engine: it parses flags
// into a config.Config, selects the initial syntax.Spec, and drives one
// Engine over the requested input (spec.md §6 "CLI surface").
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hashicorp/logutils"

	"github.com/gpp-go/gpp/internal/collections"
	"github.com/gpp-go/gpp/internal/config"
	"github.com/gpp-go/gpp/internal/engine"
	"github.com/gpp-go/gpp/internal/include"
	"github.com/gpp-go/gpp/internal/syntax"
)

// stringList collects a repeatable flag (-D, -I) in declaration order.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }
func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if ferr, ok := err.(*engine.FatalError); ok {
			fmt.Fprintln(os.Stderr, ferr.Error())
		} else {
			fmt.Fprintln(os.Stderr, "gpp:", err)
		}
		os.Exit(1)
	}
}

func run(argv []string) error {
	fs := flag.NewFlagSet("gpp", flag.ContinueOnError)

	preset := fs.String("preset", "", `built-in mode: "c", "tex", "html", "xhtml", "prolog" (default: generic)`)
	userMode := fs.String("usermode", "", "9 comma-separated delimiter-pattern fields overriding the user (macro-call) mode")
	metaMode := fs.String("metamode", "", "9 comma-separated delimiter-pattern fields overriding the meta (directive) mode")
	modeFile := fs.String("modefile", "", "path to a YAML file defining named modes (spec.md ambient config layer)")
	modeFileName := fs.String("mode", "", "name of the mode to select from -modefile")

	var defines stringList
	fs.Var(&defines, "D", "define NAME, NAME=VALUE, or NAME(args)=BODY before processing (repeatable)")
	var includeDirs stringList
	fs.Var(&includeDirs, "I", "add a directory (or doublestar glob root) to the #include search path (repeatable)")
	preInclude := fs.String("include", "", "process this file before the main input")

	output := fs.String("o", "", "write output to this file instead of stdout")
	mirrorOutput := fs.String("O", "", "write output to this file, mirrored to stdout")

	execAllowed := fs.Bool("x", false, "allow #exec to run shell commands")
	autoSwitchC := fs.Bool("m", false, "auto-switch to the C preset on included .h/.c files")
	preserveLF := fs.Bool("n", false, "preserve a macro-terminating line feed in the output")
	crlf := fs.Bool("z", false, "emit CRLF line endings")

	noStdInclude := fs.Bool("nostdinc", false, "do not search standard include directories")
	noCurInclude := fs.Bool("nocurinc", false, "do not search the including file's own directory")
	curDirIncludeLast := fs.Bool("curdirinclast", false, "search the including file's directory last, not first")

	warningLevel := fs.Int("warninglevel", 2, "0 silences warnings, 2 is the default, higher is more verbose")
	includeMarker := fs.String("includemarker", "", "--includemarker format string (spec.md §6)")

	if err := fs.Parse(argv); err != nil {
		return err
	}

	cfg := config.Default()
	cfg.Preset = *preset
	cfg.ModeFile = *modeFile
	cfg.Defines = defines
	cfg.IncludeDirs = includeDirs
	cfg.PreInclude = *preInclude
	cfg.OutputPath = *output
	cfg.ExecAllowed = *execAllowed
	cfg.AutoSwitchC = *autoSwitchC
	cfg.PreserveLF = *preserveLF
	cfg.CRLF = *crlf
	cfg.NoStdInclude = *noStdInclude
	cfg.NoCurInclude = *noCurInclude
	cfg.CurDirIncludeLast = *curDirIncludeLast
	cfg.WarningLevel = *warningLevel
	cfg.IncludeMarker = *includeMarker
	if *mirrorOutput != "" {
		cfg.OutputPath = *mirrorOutput
		cfg.MirrorStdout = true
	}
	if *userMode != "" {
		cfg.UserMode = collections.MapSlice(strings.Split(*userMode, ","), strings.TrimSpace)
	}
	if *metaMode != "" {
		cfg.MetaMode = collections.MapSlice(strings.Split(*metaMode, ","), strings.TrimSpace)
	}

	installLogFilter(cfg.WarningLevel)
	for _, dir := range collections.FindDuplicates(cfg.IncludeDirs) {
		log.Printf("[WARN] -I %q given more than once", dir)
	}

	spec, err := resolveSpec(cfg, *modeFileName)
	if err != nil {
		return err
	}
	if cfg.PreserveLF {
		spec.PreserveLF = true
	}

	var marker *include.MarkerFormat
	if cfg.IncludeMarker != "" {
		marker, err = include.CompileMarkerFormat(cfg.IncludeMarker)
		if err != nil {
			return err
		}
	}

	e := engine.New(spec, cfg)
	e.IncludeMarker = marker

	out, closeOut, err := openOutput(cfg)
	if err != nil {
		return err
	}
	defer closeOut()

	var outCtx *engine.OutputContext
	if cfg.MirrorStdout {
		outCtx = engine.NewMirroredOutput(out, os.Stdout, cfg.CRLF)
	} else {
		outCtx = engine.NewFileOutput(out, cfg.CRLF)
	}

	prelude := buildPrelude(cfg)
	if prelude != "" {
		preludeCtx := engine.NewStringContext(prelude, "<command line>", outCtx)
		if err := e.ParseText(preludeCtx); err != nil {
			return err
		}
	}

	args := fs.Args()
	in, closeIn, err := openInput(args)
	if err != nil {
		return err
	}
	defer closeIn()

	name := "<stdin>"
	if len(args) > 0 {
		name = args[0]
	}
	mainCtx := engine.NewFileContext(in, name, outCtx)
	return e.ProcessContext(mainCtx)
}

// buildPrelude renders -D defines and --include into synthetic
// directive text processed ahead of the main input, reusing the same
// #define/#include recognition and expansion path rather than a
// separate bootstrap code path (spec.md §6 "-D", "--include").
func buildPrelude(cfg *config.Config) string {
	var b strings.Builder
	for _, d := range cfg.Defines {
		if name, val, ok := strings.Cut(d, "="); ok {
			fmt.Fprintf(&b, "#define %s %s\n", name, val)
		} else {
			fmt.Fprintf(&b, "#define %s\n", d)
		}
	}
	if cfg.PreInclude != "" {
		fmt.Fprintf(&b, "#include \"%s\"\n", cfg.PreInclude)
	}
	return b.String()
}

func resolveSpec(cfg *config.Config, modeName string) (*syntax.Spec, error) {
	if cfg.ModeFile != "" {
		mf, err := config.LoadModeFile(cfg.ModeFile)
		if err != nil {
			return nil, err
		}
		def, ok := mf.Modes[modeName]
		if !ok {
			return nil, fmt.Errorf("gpp: mode %q not found in %s", modeName, cfg.ModeFile)
		}
		return def.Spec()
	}
	if len(cfg.UserMode) == 9 {
		spec := syntax.Generic()
		m, err := modeFromFields(cfg.UserMode)
		if err != nil {
			return nil, fmt.Errorf("gpp: -usermode: %w", err)
		}
		spec.User = m
		if len(cfg.MetaMode) == 9 {
			meta, err := modeFromFields(cfg.MetaMode)
			if err != nil {
				return nil, fmt.Errorf("gpp: -metamode: %w", err)
			}
			spec.Meta = meta
		}
		return spec, nil
	}
	spec, ok := syntax.ByName(cfg.Preset)
	if !ok {
		return nil, fmt.Errorf("gpp: unknown preset %q", cfg.Preset)
	}
	return spec, nil
}

func modeFromFields(f []string) (syntax.Mode, error) {
	get := func(i int) string {
		if i < len(f) {
			return f[i]
		}
		return ""
	}
	var quote byte
	if q := get(6); len(q) > 0 {
		quote = q[0]
	}
	return syntax.NewMode(get(0), get(1), get(2), get(3), get(4), get(5), quote, get(7), get(8))
}

func openOutput(cfg *config.Config) (*os.File, func(), error) {
	if cfg.OutputPath == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("gpp: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func openInput(args []string) (*os.File, func(), error) {
	if len(args) == 0 {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("gpp: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// installLogFilter routes the standard logger's [WARN]/[INFO]-prefixed
// lines (written by internal/engine.Diagnostics) through a
// logutils.LevelFilter keyed off --warninglevel, so raising the level
// reveals [INFO] lines without internal/engine needing to know how its
// caller chooses to filter them (spec.md §6 "--warninglevel").
func installLogFilter(level int) {
	min := logutils.LogLevel("WARN")
	if level <= 0 {
		min = logutils.LogLevel("NONE")
	} else if level >= 2 {
		min = logutils.LogLevel("INFO")
	}
	filter := &logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"INFO", "WARN", "NONE"},
		MinLevel: min,
		Writer:   os.Stderr,
	}
	log.SetOutput(filter)
	log.SetFlags(0)
}
