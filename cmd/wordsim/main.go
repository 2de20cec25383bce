// Command wordsim scores word similarity over a WordNet noun taxonomy,
// evaluates similarity measures against human judgements and serves the
// HTTP API.
//
// Commands:
//
//	similarity <word-a> <word-b>  score one word pair
//	evaluate --pairs <csv>        correlate measures with a pair dataset
//	serve                         run the HTTP API
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
