package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/fatih/color"

	"github.com/goliatone/go-formfields/internal/cli"
)

func main() {
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		log.Fatal(color.RedString("[-] %v", err))
	}
}
