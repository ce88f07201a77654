// Package main is the entry point for the sonar CLI.
package main

import (
	"github.com/huangsam/sonar/cmd"
	"github.com/huangsam/sonar/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run sonar", err)
	}
}
