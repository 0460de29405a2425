package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCommand(NewPodClient).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "imgdot:", err)
		cancel()
		os.Exit(1)
	}
}
