// Package parallel runs independent jobs, such as separate training runs,
// on a bounded number of goroutines.
package parallel

import "runtime"
import "sync"

import "github.com/klauspost/cpuid/v2"

// Threads reports the number of logical cores, at least 1.
func Threads() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// CPU describes the processor, for log banners.
func CPU() string {
	name := cpuid.CPU.BrandName
	if name == "" {
		name = cpuid.CPU.VendorString
	}
	if name == "" {
		name = runtime.GOARCH
	}
	return name
}

// ForEach executes a for loop with a limited number of concurrent goroutines.
// Each goroutine processes one integer, from 0 to length. Every iteration
// runs even when some fail; the error of the lowest failing index is
// returned.
func ForEach(length, limit int, body func(i int) error) error {
	if limit <= 0 {
		limit = 1
	}
	if length <= 0 {
		return nil
	}

	errs := make([]error, length)
	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	wg.Add(length)

	for i := 0; i < length; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			errs[i] = body(i)
		}(i)
	}

	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
