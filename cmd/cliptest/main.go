//go:build ignore

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/zhubert/tsplay/internal/clipboard"
)

func main() {
	text := "tsplay clipboard check"
	if len(os.Args) > 1 {
		text = strings.Join(os.Args[1:], " ")
	}

	fmt.Printf("Testing clipboard write of %d bytes...\n", len(text))
	if err := clipboard.NewSystem().WriteText(text); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Copied. Paste somewhere to check.")
}
