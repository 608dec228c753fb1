package main

import (
	"github.com/ApexioDaCoder/progresser/cmd"
)

func main() {
	cmd.Execute()
}
