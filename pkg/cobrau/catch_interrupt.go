/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package cobrau

import (
	"context"
	"os"
	"os/signal"
	"sync"

	"github.com/spf13/cobra"

	"github.com/voedger/xdrgen/pkg/logger"
)

// ExecCommandAndCatchInterrupt executes cmd with a context which is cancelled
// on os.Interrupt, then waits for the command to return.
// Log lines go to the error output of cmd meanwhile
func ExecCommandAndCatchInterrupt(cmd *cobra.Command) error {
	defer logger.SetOutput(cmd.ErrOrStderr())()
	return goAndCatchInterrupt(cmd.ExecuteContext)
}

func goAndCatchInterrupt(f func(ctx context.Context) error) (err error) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)
	defer signal.Stop(signals)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		err = f(ctx)
		cancel()
	}()

	select {
	case sig := <-signals:
		logger.Info("signal received:", sig)
		cancel()
	case <-ctx.Done():
	}
	logger.Verbose("waiting for command to finish...")
	wg.Wait()
	return err
}
