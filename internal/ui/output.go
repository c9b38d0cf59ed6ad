package ui

import (
	"fmt"
	"io"
)

const (
	symCheck = "✔"
	symCross = "✖"
)

// OK prints a success line.
func OK(w io.Writer, msg string) { fmt.Fprintln(w, current.Success.Render(symCheck+" "+msg)) }

// Fail prints an error line.
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, current.Error.Render(symCross+" "+msg)) }

// Hint prints a dimmed follow-up line.
func Hint(w io.Writer, msg string) { fmt.Fprintln(w, current.Muted.Render(msg)) }
