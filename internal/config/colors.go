package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	Ink   = mustHex(InkHex)
	Paper = mustHex(PaperHex)
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("config: bad color %q: %v", s, err))
	}
	return c
}
