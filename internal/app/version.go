package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version. Overridden at build time with
// -ldflags "-X github.com/agbru/u128calc/internal/app.Version=v1.2.3".
var Version = "dev"

// HasVersionFlag reports whether the arguments request version output.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-version", "--version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "u128calc %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
