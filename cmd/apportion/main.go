// Package main is the entry point for the apportion CLI.
//
// The binary wraps the library pipeline — census directory → Huntington-Hill
// engine → district report — behind two commands: `seats` runs a full
// apportionment over the embedded 2020 table, and `state` resolves a state
// by FIPS code, abbreviation, or name.
package main

func main() {
	Execute()
}
