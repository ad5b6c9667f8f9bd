// Package main provides the changelogsql command-line entry point.
package main

import (
	"os"

	"github.com/leapstack-labs/changelogsql/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
