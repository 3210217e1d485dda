//go:build tinygo

package main

import (
	"pagegrid/app"
	"pagegrid/hal"
)

func main() {
	app.Run(hal.New())
}
