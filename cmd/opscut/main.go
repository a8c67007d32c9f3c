// Package main provides the entry point for the OpsCut CLI.
package main

func main() {
	Execute()
}
