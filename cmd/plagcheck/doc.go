// Package main hosts the plagcheck CLI entrypoint and command graph.
//
// The root command takes an original file, a candidate file and an output
// path, runs the comparison pipeline and writes the similarity score with two
// decimals. Configuration resolution and logger setup live in the command
// context so the comparison itself stays in internal packages.
package main
