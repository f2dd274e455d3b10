package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os/exec"

	"github.com/rcauth-eu/privkeysplit/yabackoff"
	"github.com/rcauth-eu/privkeysplit/yaerrors"
	"github.com/rcauth-eu/privkeysplit/yalogger"
)

// opensslRetries bounds how many times in total runOpenssl spawns the child
// process, backing off between a failed attempt and the next one.
const opensslRetries = 3

// runOpenssl pipes stdin through `<path> <args...>` and returns stdout,
// retrying on failure with an exponential backoff. A passphrase prompt, if
// openssl needs one, goes to and comes from the controlling terminal
// (/dev/tty) rather than this process's stdin or stdout, so piping the key
// bytes through stdin/stdout here doesn't interfere with it.
func runOpenssl(
	ctx context.Context,
	path string,
	args []string,
	stdin []byte,
	log yalogger.Logger,
) ([]byte, yaerrors.Error) {
	backoff := yabackoff.NewExponential(0, 0, 0, 0)

	var lastErr error

	for attempt := 1; attempt <= opensslRetries; attempt++ {
		cmd := exec.CommandContext(ctx, path, args...)
		cmd.Stdin = bytes.NewReader(stdin)

		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			lastErr = fmt.Errorf("%w: %s", err, stderr.String())
			log.WithField("attempt", attempt).Warnf("pipeline: openssl invocation failed: %v", lastErr)

			if attempt < opensslRetries {
				backoff.Wait()
			}

			continue
		}

		return stdout.Bytes(), nil
	}

	return nil, yaerrors.FromError(http.StatusBadGateway, lastErr, "pipeline: openssl invocation failed after retries")
}

// DecryptPrivateKey runs `openssl rsa`, which emits the unencrypted PEM
// private key on stdout given an encrypted one on stdin, prompting for a
// passphrase on its controlling terminal if the key is password-protected.
func DecryptPrivateKey(ctx context.Context, opensslPath string, encryptedPEM []byte, log yalogger.Logger) ([]byte, yaerrors.Error) {
	return runOpenssl(ctx, opensslPath, []string{"rsa"}, encryptedPEM, log)
}

// EncryptPrivateKey runs `openssl rsa -des3`, re-encrypting a PEM private
// key with triple-DES. The passphrase is never passed as an argument or
// piped through this process: openssl prompts for it directly on the
// controlling terminal, so it never appears in a process listing.
func EncryptPrivateKey(ctx context.Context, opensslPath string, plainPEM []byte, log yalogger.Logger) ([]byte, yaerrors.Error) {
	return runOpenssl(ctx, opensslPath, []string{"rsa", "-des3"}, plainPEM, log)
}
