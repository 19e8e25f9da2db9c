// Package testsupport holds fixtures shared by package tests: default
// configs with per-test overrides and input files in arbitrary encodings.
package testsupport
