//go:build ignore

package main

import (
	"fmt"

	"github.com/zhubert/murmur/internal/clipboard"
)

func main() {
	fmt.Println("Testing clipboard read...")
	text, err := clipboard.ReadText()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if text == "" {
		fmt.Println("Clipboard is empty")
		return
	}
	fmt.Printf("Text found: %d bytes\n%s\n", len(text), text)
}
