package main

import (
	"log"

	"go.opview.org/opview/pkg/opviewcmd"
)

func main() {
	if err := opviewcmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
