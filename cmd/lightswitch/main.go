package main

import (
	"github.com/lightswitch-dev/lightswitch/cmd/lightswitch/internal"
)

func main() {
	internal.Execute()
}
