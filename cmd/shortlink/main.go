// Package main provides the shortlink CLI: a local-first short-link
// manager with TTL and click-quota lifecycle rules.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
