// Package main provides focusctl, an operator CLI over the FocusFlow engine.
package main

import (
	"os"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
