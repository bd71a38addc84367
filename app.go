package main

import "github.com/hmurata/commitcal-go/cmd"

func main() {
	cmd.Run()
}
