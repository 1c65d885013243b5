//go:build unix

package process

import (
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

// signalName returns the conventional upper-case name, e.g. SIGTERM
func signalName(sig syscall.Signal) string {
	if name := unix.SignalName(sig); name != "" {
		return name
	}
	return strings.ToUpper(sig.String())
}
