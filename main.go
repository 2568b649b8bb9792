package main

import "github.com/medtextlab/corpuseda/cmd"

func main() {
	cmd.Execute()
}
