// Command sopsolve solves a Sequential Ordering Problem instance with a
// depth-first branch-and-bound walk over the forward search space.
//
// Usage:
//
//	sopsolve <instance> [seconds] [--strategy total|partial] [--config run.yaml]
//
// Examples:
//
//	sopsolve data/ESC07.sop 10
//	sopsolve data/ESC07.sop 30 --strategy total --log-level debug
//	sopsolve --config run.yaml
//
// The best tour found is printed on stdout; progress is logged on stderr.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
