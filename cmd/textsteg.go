package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"textsteg/internal/cli"
)

func main() {
	rootCmd, stopProfiler := cli.RootCommand()

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM) // subscribe to system signals
	go func() {
		<-c
		stopProfiler()
		os.Exit(0)
	}()

	err := rootCmd.Execute()
	stopProfiler()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
