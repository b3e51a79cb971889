package main

import (
	"errors"
	"os"

	"github.com/slmenu/slmenu/internal/commands"
	"github.com/slmenu/slmenu/internal/service"
	"github.com/slmenu/slmenu/internal/terminal"
)

func main() {
	if err := commands.Execute(); err != nil {
		if !errors.Is(err, service.ErrCancelled) {
			terminal.Error(err)
		}
		os.Exit(1)
	}
}
