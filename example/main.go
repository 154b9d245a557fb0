// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     main.go
// Date:     30.Jul.2026
//
// =============================================================================

// A minimal interactive terminal front end for package qalam: arrow keys
// move the cursor, printable runes insert at it, backspace deletes behind
// it, and the status line reports the layout engine's measurement of the
// current line alongside the buffer's own line/column/direction state.
package main

import (
	"fmt"
	"os"

	"atomicgo.dev/cursor"
	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"

	qalam "github.com/OmarAglan/Qalam-sub000"
	"github.com/OmarAglan/Qalam-sub000/encoding"
	"github.com/OmarAglan/Qalam-sub000/layout"
)

func main() {
	buf, err := qalam.FromUTF8([]byte("Hello, World!\nمرحبا بالعالم\nType to edit, Esc to quit."))
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create buffer:", err)
		os.Exit(1)
	}

	factory := layout.NewFactory()
	if err := factory.Init(nil); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init layout factory:", err)
		os.Exit(1)
	}
	defer factory.Shutdown()

	format, err := factory.NewTextFormat(layout.DefaultFamily, 14, layout.WeightRegular, layout.StyleNormal)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create text format:", err)
		os.Exit(1)
	}

	cursor.Hide()
	defer cursor.Show()

	render(buf, factory, format)

	err = keyboard.Listen(func(key keys.Key) (stop bool, err error) {
		switch key.Code {
		case keys.Escape, keys.CtrlC:
			return true, nil
		case keys.Up:
			_ = buf.MoveCursor(-1, 0)
		case keys.Down:
			_ = buf.MoveCursor(1, 0)
		case keys.Left:
			_ = buf.MoveCursor(0, -1)
		case keys.Right:
			_ = buf.MoveCursor(0, 1)
		case keys.Enter:
			_ = buf.Insert([]byte("\n"))
		case keys.Backspace:
			_ = buf.Delete(-1)
		case keys.Delete:
			_ = buf.Delete(1)
		case keys.Space:
			_ = buf.Insert([]byte(" "))
		case keys.RuneKey:
			_ = buf.Insert([]byte(string(key.Runes)))
		}

		render(buf, factory, format)

		return false, nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "keyboard listener failed:", err)
		os.Exit(1)
	}
}

// render redraws the buffer's content followed by a status line describing
// the cursor's position, the current line's BiDi direction, and the layout
// engine's measured width of that line.
func render(buf *qalam.Buffer, factory *layout.Factory, format *layout.TextFormat) {
	cursor.ClearLine()
	cursor.StartOfLine()

	fmt.Print(buf.GetContent())

	cur := buf.GetCursor()

	info, err := buf.GetLineInfo(cur.Line)
	if err != nil {
		return
	}

	lineText, err := buf.GetLine(cur.Line)
	if err != nil {
		return
	}

	lineUnits, err := encoding.ToUTF16([]byte(lineText))
	if err != nil {
		return
	}

	l, err := factory.NewTextLayout(lineUnits, format, 2000, 100)
	if err != nil {
		return
	}

	m := l.Measure()

	fmt.Printf("\n-- line %d col %d (%s), width %.1fpx --\n",
		cur.Line+1, cur.Column+1, info.Direction, m.Width)
}
