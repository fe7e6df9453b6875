package main

import "github.com/onemoresn/FightersQuest/cmd/fq/root"

func main() {
	root.Execute()
}
