package main

import (
	"github.com/AminahAkhtar/tinydb-withdp/cmd"
)

func main() {
	cmd.Execute()
}
