package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/libyal/hmachash/registry"
)

const (
	copyrightNotice = "hmacsum: streaming MD5/SHA-1/SHA-224/SHA-256/SHA-512 digest utility"
	defaultDigests  = "md5"
)

var (
	digestFlag  string
	bufferFlag  string
	verboseFlag bool
	versionFlag bool
)

// RootCmd is the hmacsum command tree, following the package-level
// *cobra.Command + init()-wired-flags pattern from distribution's
// registry/root.go. Args is intentionally permissive (cobra.MaximumNArgs)
// so that -h/-V can exit 0 without a source_file; the exactly-one-argument
// requirement is enforced in runHmacsum once those flags have had a
// chance to short-circuit.
var RootCmd = &cobra.Command{
	Use:          "hmacsum [-d types] [-p buffer_size] [-hvV] source_file",
	Short:        "Compute one or more digests of a file",
	Long:         copyrightNotice,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runHmacsum,
}

func init() {
	cfg := loadConfig()
	defaultBuffer := fmt.Sprintf("%d", cfg.GetInt("buffer_size"))

	RootCmd.Flags().StringVarP(&digestFlag, "digests", "d", defaultDigests,
		"comma-separated digest names: md5, sha1, sha224, sha256, sha512")
	RootCmd.Flags().StringVarP(&bufferFlag, "buffer-size", "p", defaultBuffer,
		"read-buffer size in bytes (accepts k/m suffixes, env HMACSUM_BUFFER_SIZE)")
	RootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose progress notifications")
	RootCmd.Flags().BoolVarP(&versionFlag, "print-version", "V", false, "print copyright notice and exit")
	RootCmd.SetVersionTemplate(copyrightNotice + "\n")
}

func runHmacsum(cmd *cobra.Command, args []string) error {
	if verboseFlag {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if versionFlag {
		fmt.Fprintln(cmd.OutOrStdout(), copyrightNotice)
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("hmacsum: exactly one source_file is required")
	}

	names, err := registry.ParseSelection(digestFlag)
	if err != nil {
		return fmt.Errorf("hmacsum: %w", err)
	}

	bufSize := resolveBufferSize(bufferFlag)

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("hmacsum: %w", err)
	}
	defer f.Close()

	session, err := registry.NewSession(names)
	if err != nil {
		return fmt.Errorf("hmacsum: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if aborted := streamFile(ctx, session, f, bufSize); aborted {
		fmt.Fprintln(os.Stderr, "hmacsum: ABORTED")
		os.Exit(1)
	}

	results, err := session.Finalize()
	if err != nil {
		return fmt.Errorf("hmacsum: %w", err)
	}
	for _, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) = %x\n", args[0], r.Name, r.Digest)
	}
	return nil
}

// streamFile drives the buffered read loop the CLI collaborator owns:
// buffered file reads, with ctx polled between reads. On cancellation or a
// read error it sets the registry façade's advisory abort flag and returns
// true; it returns false once the file has been fully consumed.
func streamFile(ctx context.Context, session *registry.Session, f *os.File, bufSize int) bool {
	buf := make([]byte, bufSize)
	chunks := 0
	for {
		select {
		case <-ctx.Done():
			session.Abort()
			return true
		default:
		}

		n, err := f.Read(buf)
		if n > 0 {
			session.Write(buf[:n])
			chunks++
			if verboseFlag && chunks%64 == 0 {
				logrus.Debugf("hmacsum: processed %d buffers", chunks)
			}
		}
		if err == io.EOF {
			return false
		}
		if err != nil {
			logrus.Errorf("hmacsum: read error: %v", err)
			session.Abort()
			return true
		}
	}
}
