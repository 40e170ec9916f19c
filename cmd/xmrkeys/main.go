package main

import (
	"os"

	"xmrkeys/cmd/xmrkeys/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
