// Package main is the entry point for the cricstats CLI tool, which imports
// a ball-by-ball cricket dataset and answers per-season, per-team and
// per-player statistics queries.
package main

import "github.com/legside/cricstats/cmd"

func main() {
	cmd.Execute()
}
