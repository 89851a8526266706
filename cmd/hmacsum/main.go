// Command hmacsum streams a file through one or more selected MD5/SHA-1/
// SHA-224/SHA-256/SHA-512 digests. It is a thin client of the
// hmachash/registry streaming façade; all argument parsing, signal
// handling and buffered reads live here, never in the core library.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := RootCmd.Execute(); err != nil {
		logrus.Errorf("%v", err)
		os.Exit(1)
	}
}
