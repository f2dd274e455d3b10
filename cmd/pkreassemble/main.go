// Command pkreassemble reverses pksplit: it reads the mod/exp/p1
// intermediate text from stdin, XOR-reassembles the prime from two pads,
// rebuilds the full RSA private key, and writes it as PEM to stdout.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rcauth-eu/privkeysplit/cmd/internal/cliutil"
	"github.com/rcauth-eu/privkeysplit/pipeline"
	"github.com/rcauth-eu/privkeysplit/yaconfig"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "pkreassemble"
	app.Usage = "reassemble an RSA private key from its mod/exp/p1 intermediate text"
	app.ArgsUsage = "<pad1-file> <offset1> [<pad2-file> <offset2>]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "intermediate-in",
			Usage: "read the mod/exp/p1 intermediate text from this file instead of stdin (required when pad2 is read from stdin, since both can't share one stream)",
		},
		cli.BoolFlag{
			Name:  "openssl-encrypt",
			Usage: "re-encrypt the regenerated key with triple-DES via `openssl rsa -des3`, prompting for the passphrase on the controlling terminal",
		},
		cli.StringFlag{
			Name:  "openssl-path",
			Usage: "path to the openssl binary (overrides PKSPLIT_OPENSSL_PATH)",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "trace|debug|info|warn|error (overrides PKSPLIT_LOG_LEVEL)",
		},
	}
	app.Action = runReassemble

	if err := app.Run(os.Args); err != nil {
		color.Red("pkreassemble: %v", err)
		os.Exit(1)
	}
}

func runReassemble(c *cli.Context) error {
	bootLog := cliutil.NewRunLogger(cliutil.ParseLogLevel("info"))

	cfg := yaconfig.Load(bootLog).ApplyFlagOverrides(c.String("openssl-path"), c.String("log-level"))
	log := cliutil.NewRunLogger(cliutil.ParseLogLevel(cfg.LogLevel))

	pads, err := cliutil.ResolvePads(c.Args(), os.Stdin)
	if err != nil {
		return fmt.Errorf("pkreassemble: %w", err)
	}
	defer pads.Zeroize()

	intermediate, err := readIntermediateInput(c)
	if err != nil {
		return fmt.Errorf("pkreassemble: %w", err)
	}

	pem, pErr := pipeline.Reassemble(string(intermediate), pads.Pad1, pads.Offset1, pads.Pad2, pads.Offset2)
	if pErr != nil {
		color.Red("pkreassemble: %v", pErr)

		return cli.NewExitError("", 1)
	}

	if c.Bool("openssl-encrypt") {
		encrypted, eErr := pipeline.EncryptPrivateKey(context.Background(), cfg.OpensslPath, pem, log)
		if eErr != nil {
			color.Red("pkreassemble: %v", eErr)

			return cli.NewExitError("", 1)
		}

		pem = encrypted
	}

	fmt.Fprint(os.Stdout, string(pem))

	return nil
}

// readIntermediateInput returns the mod/exp/p1 intermediate text: from
// --intermediate-in when set, otherwise from stdin. When pad2 was also read
// from stdin (the 2-argument form), --intermediate-in is mandatory.
func readIntermediateInput(c *cli.Context) ([]byte, error) {
	path := c.String("intermediate-in")

	if path != "" {
		return os.ReadFile(path)
	}

	if len(c.Args()) == 2 {
		return nil, fmt.Errorf("--intermediate-in is required when pad2 is read from stdin")
	}

	return io.ReadAll(os.Stdin)
}
