// SPDX-License-Identifier: EPL-2.0

package sdr

import "sync"

// Executor runs fn once for each job number in [0, nbJobs) and returns only
// after every invocation has completed. The Meter hands it the accumulation
// kernel with disjoint channel ranges per job, so implementations may run the
// jobs in any order or concurrently.
type Executor interface {
	Execute(fn func(jobnr, nbJobs int), nbJobs int)
}

// GoExecutor runs each job on its own goroutine and waits for all of them.
// It is the default executor of a Meter.
type GoExecutor struct{}

func (GoExecutor) Execute(fn func(jobnr, nbJobs int), nbJobs int) {
	if nbJobs <= 1 {
		fn(0, 1)
		return
	}

	var wg sync.WaitGroup
	wg.Add(nbJobs)

	for jobnr := 0; jobnr < nbJobs; jobnr++ {
		jobnr := jobnr
		go func() {
			defer wg.Done()
			fn(jobnr, nbJobs)
		}()
	}

	wg.Wait()
}

// SerialExecutor runs the jobs one after another on the calling goroutine.
// Useful in tests and on hosts that bring their own threading.
type SerialExecutor struct{}

func (SerialExecutor) Execute(fn func(jobnr, nbJobs int), nbJobs int) {
	if nbJobs < 1 {
		nbJobs = 1
	}
	for jobnr := 0; jobnr < nbJobs; jobnr++ {
		fn(jobnr, nbJobs)
	}
}
