package main

import (
	"github.com/dnsvet/dnsvet/cmd"
)

func main() {
	cmd.Execute()
}
