package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"homezy/config"
	"homezy/utils"
)

func main() {
	cfg := config.LoadConfig()
	logger, err := utils.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := &CLI{Config: cfg, Logger: logger, Stdout: os.Stdout, Stderr: os.Stderr}
	if err := cli.Run(ctx, os.Args[0], os.Args[1:]); err != nil {
		if usage, ok := err.(UsageError); ok {
			fmt.Fprintln(os.Stderr, usage.Error())
			for _, line := range usage.UsageLines() {
				fmt.Fprintln(os.Stderr, line)
			}
			os.Exit(2)
		}
		os.Exit(1)
	}
}
