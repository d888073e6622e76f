package main

import "github.com/johncarney/manifest-sync/cmd/manifest-updater/cmd"

func main() {
	cmd.Execute()
}
