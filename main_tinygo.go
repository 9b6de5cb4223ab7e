//go:build tinygo

package main

import (
	"huebar/app"
	"huebar/hal"
)

func main() {
	app.Run(hal.New())
}
