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

package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gpp-go/gpp/internal/config"
)

func TestBuildPreludeDefines(t *testing.T) {
	cfg := config.Default()
	cfg.Defines = []string{"FOO", "BAR=1"}
	got := buildPrelude(cfg)
	require.Equal(t, "#define FOO\n#define BAR 1\n", got)
}

func TestBuildPreludeIncludesPreInclude(t *testing.T) {
	cfg := config.Default()
	cfg.PreInclude = "common.h"
	got := buildPrelude(cfg)
	require.Equal(t, "#include \"common.h\"\n", got)
}

func TestBuildPreludeEmptyWhenNothingSet(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, "", buildPrelude(cfg))
}

func TestResolveSpecDefaultsToGeneric(t *testing.T) {
	cfg := config.Default()
	spec, err := resolveSpec(cfg, "")
	require.NoError(t, err)
	require.NotNil(t, spec)
}

func TestResolveSpecUnknownPresetErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Preset = "not-a-real-preset"
	_, err := resolveSpec(cfg, "")
	require.Error(t, err)
}

func TestResolveSpecCPreset(t *testing.T) {
	cfg := config.Default()
	cfg.Preset = "c"
	spec, err := resolveSpec(cfg, "")
	require.NoError(t, err)
	require.NotEmpty(t, spec.Comments)
}

func TestResolveSpecUserModeOverride(t *testing.T) {
	cfg := config.Default()
	cfg.UserMode = []string{"<<", ">>", "(", ",", ")", "#", "", "(", ")"}
	spec, err := resolveSpec(cfg, "")
	require.NoError(t, err)
	require.NotNil(t, spec)
}

func TestModeFromFieldsDefaultsMissingTrailingWords(t *testing.T) {
	m, err := modeFromFields([]string{"#", "\n"})
	require.NoError(t, err)
	require.False(t, m.MacroStart.Empty())
}
