package pipeline

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rcauth-eu/privkeysplit/yalogger"
)

// InstallZeroizeHandler arranges for the given zeroize funcs to run before
// the process exits on SIGINT or SIGTERM, so secret buffers held by an
// in-flight split or reassemble don't linger in memory past a Ctrl-C.
// Callers must invoke the returned stop func once the sensitive section of
// their run has completed normally, to release the signal handler.
func InstallZeroizeHandler(log yalogger.Logger, zeroize ...func()) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})

	go func() {
		select {
		case sig := <-sigCh:
			log.Warnf("pipeline: received %s, zeroizing secret buffers before exit", sig)

			for _, z := range zeroize {
				z()
			}

			os.Exit(1)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
