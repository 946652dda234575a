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

package directive

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

// handleExec implements #exec("COMMAND"): runs COMMAND through the
// shell and splices its captured stdout into the output in place of the
// directive. #exec is disabled unless Config.ExecAllowed (the `-x` CLI
// flag) is set (spec.md §4.5 "#exec", §6).
//
// The child is placed in its own process group so that a shell pipeline
// it spawns (e.g. "foo | bar") is reaped as a unit: once the shell
// itself exits, any descendant the shell didn't wait on is killed via
// the process group rather than left to be inherited by init.
func handleExec(h Host, rawCmd string) (string, error) {
	if !h.Config().ExecAllowed {
		return "", h.Fatalf("#exec is disabled; pass -x to allow it")
	}
	expanded, err := h.Expand(rawCmd)
	if err != nil {
		return "", err
	}
	cmdline := strings.Trim(strings.TrimSpace(expanded), `"`)
	if cmdline == "" {
		return "", nil
	}

	cmd := exec.Command("/bin/sh", "-c", cmdline)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return "", h.Fatalf("#exec %q: %v", cmdline, err)
	}
	pgid, pgidErr := unix.Getpgid(cmd.Process.Pid)
	runErr := cmd.Wait()
	if pgidErr == nil {
		unix.Kill(-pgid, unix.SIGKILL)
	}
	if runErr != nil {
		return "", h.Fatalf("#exec %q: %v", cmdline, runErr)
	}
	return out.String(), nil
}
