package util

import (
	"path/filepath"

	"github.com/pterm/pterm"
)

const (
	ExitConfigError = 1
	ExitFailure     = 1
)

func Fatal(err error) {
	if err != nil {
		pterm.Fatal.Println(err)
	}
}

// IfWindowsElse picks between two spellings of the same thing.
func IfWindowsElse(windows bool, win, other string) string {
	if windows {
		return win
	}
	return other
}

// JavaCommand returns the java executable under javaHome, or the bare command
// to be looked up on PATH when javaHome is empty.
func JavaCommand(javaHome string, windows bool) string {
	exe := IfWindowsElse(windows, "java.exe", "java")
	if javaHome == "" {
		return exe
	}
	return filepath.Join(javaHome, "bin", exe)
}
