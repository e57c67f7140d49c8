// Command lvroute plans routes on a road-network extract.
//
//	lvroute route 10 10 90 85 --map city.yaml
//	lvroute serve --config lvroute.yaml
//	lvroute snapshot city.yaml city.gob
//	lvroute stats --map city.gob
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
