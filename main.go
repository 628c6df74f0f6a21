package main

import (
	"github.com/2BitsCoin/RisingWorld-RWGui/cmd"
)

// Version is set at build time
var Version = "dev"

func main() {
	cmd.SetVersion(Version)
	cmd.Execute()
}
