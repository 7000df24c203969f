//go:build windows

package main

import "os"

// SIGTERM and SIGHUP are not delivered on Windows.
var shutdownSignals = []os.Signal{os.Interrupt}
