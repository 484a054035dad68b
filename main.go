package main

import (
	"os"

	"github.com/windseal/windseal-cms/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
