// Command fire computes FIRE (Financial Independence, Retire Early) plans.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
