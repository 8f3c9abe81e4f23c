// Package main provides the bannerfetch command-line tool: it collects
// system facts, renders them through a template and prints the result next
// to a distribution logo.
package main

func main() {
	Execute()
}
