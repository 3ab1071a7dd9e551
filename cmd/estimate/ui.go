package main

import (
	"fmt"
	"io"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// console writes status lines, optionally colored
type console struct {
	w     io.Writer
	color bool
}

func (c console) line(color, prefix, format string, a ...interface{}) {
	msg := prefix + fmt.Sprintf(format, a...)
	if c.color {
		msg = color + msg + colorReset
	}
	fmt.Fprintln(c.w, msg)
}

func (c console) Info(format string, a ...interface{}) {
	c.line(colorBlue, "ℹ ", format, a...)
}

func (c console) Success(format string, a ...interface{}) {
	c.line(colorGreen, "✓ ", format, a...)
}

func (c console) Warning(format string, a ...interface{}) {
	c.line(colorYellow, "⚠ ", format, a...)
}

func (c console) Error(format string, a ...interface{}) {
	c.line(colorRed, "✗ ", format, a...)
}

func (c console) Header(title string) {
	c.line(colorYellow, "", "\n=== %s ===", title)
}
