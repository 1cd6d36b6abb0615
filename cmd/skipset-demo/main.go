package main

import (
	"fmt"
	"os"

	"github.com/metailurini/skipset/cmd/skipset-demo/app"
)

func main() {
	if err := app.New("skipset-demo").Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
