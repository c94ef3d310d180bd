package utils

import (
	"fmt"
	"os"
)

// Color output helpers
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

// PrintSuccess prints a success message
func PrintSuccess(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, ColorGreen+"✓ "+msg+ColorReset+"\n", args...)
}

// PrintError prints an error message to stderr
func PrintError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, ColorRed+"✗ "+msg+ColorReset+"\n", args...)
}

// PrintInfo prints an info message
func PrintInfo(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, ColorCyan+"ℹ "+msg+ColorReset+"\n", args...)
}

// PrintWarning prints a warning message to stderr
func PrintWarning(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, ColorYellow+"⚠ "+msg+ColorReset+"\n", args...)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
