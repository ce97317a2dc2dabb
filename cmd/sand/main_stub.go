//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "sand was built without the ebiten tag, so there is no window to open.")
	fmt.Fprintln(os.Stderr, "Build with `go build -tags ebiten ./cmd/sand`, or use ./cmd/sandtui for a terminal frontend.")
	os.Exit(2)
}
