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

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gpp-go/gpp/internal/syntax"
)

// ModeFile is the decoded shape of a --modefile YAML document: a named set
// of custom presets, each declaring a user mode, a meta mode, and a list
// of comment/string rules, so a project can check its preprocessor syntax
// into version control instead of repeating a long -U/-M/+c/+s command
// line (spec.md §3's Spec/Mode fields, surfaced as a config file).
type ModeFile struct {
	Modes map[string]ModeDef `yaml:"modes"`
}

// ModeDef is one named entry of a ModeFile.
type ModeDef struct {
	User       [9]string    `yaml:"user"`
	Meta       [9]string    `yaml:"meta"`
	PreserveLF bool         `yaml:"preserve_lf"`
	Comments   []CommentDef `yaml:"comments"`
}

// CommentDef is one +c/+s rule entry: Kind is "comment" or "string".
type CommentDef struct {
	Kind  string `yaml:"kind"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	Quote string `yaml:"quote"`
	Warn  string `yaml:"warn"`
}

// LoadModeFile reads and decodes a --modefile document from path.
func LoadModeFile(path string) (*ModeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading mode file: %w", err)
	}
	var mf ModeFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("config: parsing mode file %s: %w", path, err)
	}
	return &mf, nil
}

// Spec builds a *syntax.Spec from a ModeDef. The 9-field User/Meta arrays
// follow NewMode's parameter order: mStart, mEnd, argS, argSep, argE,
// argRef, quote (as a single byte, 0 if empty), stackchars, unstackchars.
func (d ModeDef) Spec() (*syntax.Spec, error) {
	user, err := modeFromArray(d.User)
	if err != nil {
		return nil, fmt.Errorf("config: user mode: %w", err)
	}
	meta, err := modeFromArray(d.Meta)
	if err != nil {
		return nil, fmt.Errorf("config: meta mode: %w", err)
	}
	spec := &syntax.Spec{
		User:       user,
		Meta:       meta,
		PreserveLF: d.PreserveLF,
		Classes:    syntax.Generic().Classes,
	}
	for _, c := range d.Comments {
		rule, err := c.commentRule()
		if err != nil {
			return nil, err
		}
		spec.AddComment(rule)
	}
	return spec, nil
}

func modeFromArray(a [9]string) (syntax.Mode, error) {
	var quote byte
	if len(a[6]) > 0 {
		quote = a[6][0]
	}
	return syntax.NewMode(a[0], a[1], a[2], a[3], a[4], a[5], quote, a[7], a[8])
}

func (c CommentDef) commentRule() (syntax.CommentRule, error) {
	start, err := syntax.ParsePattern(c.Start)
	if err != nil {
		return syntax.CommentRule{}, fmt.Errorf("config: comment start %q: %w", c.Start, err)
	}
	end, err := syntax.ParsePattern(c.End)
	if err != nil {
		return syntax.CommentRule{}, fmt.Errorf("config: comment end %q: %w", c.End, err)
	}
	rule := syntax.CommentRule{Start: start, End: end}
	if len(c.Quote) > 0 {
		rule.Quote = c.Quote[0]
	}
	if len(c.Warn) > 0 {
		rule.Warn = c.Warn[0]
	}
	flag := syntax.FlagComment
	if c.Kind == "string" {
		flag = syntax.FlagString
	}
	rule.Flags = [3]syntax.RuleFlag{flag, flag, flag}
	return rule, nil
}
