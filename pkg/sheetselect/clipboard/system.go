package clipboard

import (
	sysclip "github.com/atotto/clipboard"
)

// WriteSystem puts text on the system clipboard.
func WriteSystem(text string) error {
	return sysclip.WriteAll(text)
}

// ReadSystem returns the text on the system clipboard.
func ReadSystem() (string, error) {
	return sysclip.ReadAll()
}

// SystemAvailable reports whether a system clipboard can be used.
func SystemAvailable() bool {
	return !sysclip.Unsupported
}
