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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gpp-go/gpp/internal/syntax"
)

func TestDefaultConfigHasWarningLevelTwo(t *testing.T) {
	cfg := Default()
	require.Equal(t, 2, cfg.WarningLevel)
	require.False(t, cfg.ExecAllowed)
	require.Empty(t, cfg.Preset)
}

func TestLoadModeFileMissingPathErrors(t *testing.T) {
	_, err := LoadModeFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadModeFileParsesNamedModes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modes.yaml")
	doc := `
modes:
  myblock:
    user: ["<<", ">>", "(", ",", ")", "", "", "(", ")"]
    meta: ["#", "\n", "", "", "\n", "", "", "(", ")"]
    preserve_lf: true
    comments:
      - kind: comment
        start: "/*"
        end: "*/"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	mf, err := LoadModeFile(path)
	require.NoError(t, err)
	require.Contains(t, mf.Modes, "myblock")

	def := mf.Modes["myblock"]
	require.True(t, def.PreserveLF)
	require.Len(t, def.Comments, 1)

	spec, err := def.Spec()
	require.NoError(t, err)
	require.True(t, spec.PreserveLF)
	require.NotEmpty(t, spec.Comments)
}

func TestLoadModeFileRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("modes: [this is not a map"), 0o644))
	_, err := LoadModeFile(path)
	require.Error(t, err)
}

func TestCommentDefStringKindSetsFlagString(t *testing.T) {
	def := ModeDef{
		Comments: []CommentDef{{Kind: "string", Start: `"`, End: `"`, Quote: `\`}},
	}
	spec, err := def.Spec()
	require.NoError(t, err)
	require.NotEmpty(t, spec.Comments)
	require.Equal(t, syntax.FlagString, spec.Comments[0].Flags[0])
}
