package main

import (
	"github.com/JoseTorresAguirre/back-game/cmd"
)

func main() {
	cmd.Execute()
}
