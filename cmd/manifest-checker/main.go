package main

import "github.com/johncarney/manifest-sync/cmd/manifest-checker/cmd"

func main() {
	cmd.Execute()
}
