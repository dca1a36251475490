package main

import (
	"fmt"
	"os"
)

func main() {
	app := &AppContext{}
	err := newRootCmd(app).Execute()
	app.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
