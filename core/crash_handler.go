package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// HandleCrash restores the terminal through restore and prints the stack trace
// Call from a deferred recover in every goroutine that owns the screen
func HandleCrash(r any, restore func()) {
	if r == nil {
		return
	}

	if restore != nil {
		restore()
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery through HandleCrash
func Go(fn func(), restore func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r, restore)
			}
		}()
		fn()
	}()
}
