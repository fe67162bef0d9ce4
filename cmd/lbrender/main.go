// Package main provides the entry point for the lbrender CLI.
//
// lbrender renders imageboard post markup to sanitized HTML fragments.
//
// Usage:
//
//	lbrender < post.txt
//	lbrender post1.txt post2.txt
//
// See --help for all available options.
package main

// main is the entry point for lbrender.
func main() {
	Execute()
}
