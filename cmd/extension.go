package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// extensionPrefix is the executable name prefix of ft extensions.
const extensionPrefix = "ft-"

// RunExtension runs the ft-<name> executable found in PATH with args, and
// reports whether it was found and its exit code.
//
// The extension inherits the standard streams and gets the effective global
// flags in FT_STORE, FT_VERBOSE and FT_TODAY, so that it works on the same
// store and day as ft itself.
func RunExtension(name string, args []string) (found bool, code int) {
	path, err := exec.LookPath(extensionPrefix + name)
	if err != nil {
		log.Printf("no extension %q: %v", extensionPrefix+name, err)
		return false, 0
	}

	cmd := exec.Command(path, args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	cmd.Env = append(os.Environ(),
		EnvStore+"="+*storeLocation,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
		EnvToday+"="+*todayFlag,
	)

	err = cmd.Run()
	var exit *exec.ExitError
	switch {
	case err == nil:
		return true, 0
	case errors.As(err, &exit):
		return true, exit.ExitCode()
	default:
		fmt.Fprintf(os.Stderr, "Error running %s: %v\n", path, err)
		return true, 1
	}
}
