/*
File    : sst/main.go

main is a thin wrapper around the cobra command tree in cmd/,
matching the teacher's own main/main.go entry shape
(_examples/akashmaji946-go-mix/main/main.go) but delegating argument
parsing to cobra instead of hand-rolled os.Args inspection.
*/
package main

import (
	"fmt"
	"os"

	"github.com/sst-lang/sst/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
