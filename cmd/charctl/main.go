package main

import (
	"fmt"
	"os"

	"github.com/preston-bernstein/character-customizer/internal/config"
	"github.com/preston-bernstein/character-customizer/internal/explorer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "charctl:", err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg, explorer.New()).Execute(); err != nil {
		os.Exit(1)
	}
}
