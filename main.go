// Package main is the entry point for the incov CLI.
package main

import "incov.dev/pkg/incov/cmd"

func main() {
	cmd.Execute()
}
