// Command cxsynth synthesizes a short sequence of CX gates transforming a
// source operator into a target operator.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
