// Package main is the entry point for the vapor CLI.
package main

import "vapor.dev/pkg/vapor/cmd"

func main() {
	cmd.Execute()
}
