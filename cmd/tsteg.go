package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"tsteg/internal/cli"
)

func main() {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM) // subscribe to system signals
	go func() {
		<-c
		if err := cli.StopProfiler(); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing profiles: %v\n", err)
		}
		os.Exit(0)
	}()

	err := cli.RootCommand().Execute()
	if stopErr := cli.StopProfiler(); stopErr != nil {
		fmt.Fprintf(os.Stderr, "Error writing profiles: %v\n", stopErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
