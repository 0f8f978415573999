package main

import "os"
import "os/signal"
import "runtime/pprof"
import "sync"
import "syscall"

import "github.com/pkg/errors"

// profile collects cpu profile data into name until stop is called or the
// process is interrupted. stop may be called more than once.
func profile(name string) (stop func(), err error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, errors.Wrap(err, "create profile")
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "start profile")
	}

	sigChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	var once sync.Once
	stop = func() {
		once.Do(func() {
			signal.Stop(sigChan)
			close(done)
			pprof.StopCPUProfile()
			f.Close()
		})
	}

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			stop()
			os.Exit(130)
		case <-done:
		}
	}()
	return stop, nil
}
