package main

import "github.com/hAkselS/mutexes/cmd/mutexes/cmd"

func main() {
	cmd.Execute()
}
