// SPDX-License-Identifier: MIT
// Package: vizlath/cmd/vizlath
//
// main.go — entry point of the vizlath demonstration CLI.

package main

func main() {
	Execute()
}
