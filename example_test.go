// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     example_test.go
// Date:     30.Jul.2026
//
// =============================================================================

package qalam_test

import (
	"fmt"

	qalam "github.com/OmarAglan/Qalam-sub000"
)

func ExampleEmpty() {
	// Create a new, empty buffer.
	buf := qalam.Empty()

	// Print the content of the buffer as a single string.
	fmt.Println(buf.GetContent())
	// Output:
}

func ExampleFromUTF8() {
	// Create a new buffer containing "Hello, World!".
	buf, err := qalam.FromUTF8([]byte("Hello, World!"))
	if err != nil {
		panic(err)
	}

	// Print the content of the buffer as a single string.
	fmt.Println(buf.GetContent())
	// Output: Hello, World!
}

func ExampleBuffer_Insert() {
	// Create a new buffer containing "Hello, World!".
	buf, err := qalam.FromUTF8([]byte("Hello, World!"))
	if err != nil {
		panic(err)
	}

	// Move to the end and insert more text at the cursor.
	buf.ToEnd()

	if err := buf.Insert([]byte(" My name is John.")); err != nil {
		panic(err)
	}

	fmt.Println(buf.GetContent())
	// Output: Hello, World! My name is John.
}

func ExampleBuffer_Delete() {
	// Create a new buffer containing "Hello, World!".
	buf, err := qalam.FromUTF8([]byte("Hello, World!"))
	if err != nil {
		panic(err)
	}

	// Delete the trailing "!" with backspace-style deletion.
	buf.ToEnd()

	if err := buf.Delete(-1); err != nil {
		panic(err)
	}

	fmt.Println(buf.GetContent())
	// Output: Hello, World
}

func ExampleBuffer_GetLineInfo() {
	// Create a buffer with one Arabic line among Latin ones.
	buf, err := qalam.FromUTF8([]byte("Hello\nمرحبا\nWorld"))
	if err != nil {
		panic(err)
	}

	info, err := buf.GetLineInfo(1)
	if err != nil {
		panic(err)
	}

	fmt.Println(info.Direction == qalam.DirectionRTL)
	// Output: true
}

func ExampleBuffer_GetStats() {
	// Create a buffer and inspect its summary statistics.
	buf, err := qalam.FromUTF8([]byte("the quick brown fox\njumps over"))
	if err != nil {
		panic(err)
	}

	stats := buf.GetStats()

	fmt.Println(stats.TotalLines, stats.WordCount)
	// Output: 2 6
}
