//go:build !unix

package taskwarrior

import (
	"os"
	"os/exec"
)

func killProcessGroup(*exec.Cmd) {}

func terminatingSignal(*os.ProcessState) (string, bool) {
	return "", false
}
