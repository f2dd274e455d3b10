// Command pksplit extracts the modulus, public exponent, and first prime
// from an unencrypted RSA private key and XOR-splits the prime against two
// pads, printing the mod/exp/p1 intermediate text to stdout.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rcauth-eu/privkeysplit/cmd/internal/cliutil"
	"github.com/rcauth-eu/privkeysplit/pipeline"
	"github.com/rcauth-eu/privkeysplit/yaconfig"
	"github.com/rcauth-eu/privkeysplit/yalogger"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "pksplit"
	app.Usage = "extract mod/exp/prime from an RSA private key and XOR-split the prime"
	app.ArgsUsage = "<pad1-file> <offset1> [<pad2-file> <offset2>]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "openssl-in",
			Usage: "decrypt a passphrase-protected PEM key at this path via `openssl rsa` before reading it, instead of reading an unencrypted key from stdin",
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
	app.Action = runSplit

	if err := app.Run(os.Args); err != nil {
		color.Red("pksplit: %v", err)
		os.Exit(1)
	}
}

func runSplit(c *cli.Context) error {
	bootLog := cliutil.NewRunLogger(cliutil.ParseLogLevel("info"))

	cfg := yaconfig.Load(bootLog).ApplyFlagOverrides(c.String("openssl-path"), c.String("log-level"))
	log := cliutil.NewRunLogger(cliutil.ParseLogLevel(cfg.LogLevel))

	pads, err := cliutil.ResolvePads(c.Args(), os.Stdin)
	if err != nil {
		return fmt.Errorf("pksplit: %w", err)
	}
	defer pads.Zeroize()

	keyBytes, err := readKeyInput(c, cfg, log)
	if err != nil {
		return fmt.Errorf("pksplit: %w", err)
	}

	text, pErr := pipeline.ExtractSplit(keyBytes, pads.Pad1, pads.Offset1, pads.Pad2, pads.Offset2, log)
	if pErr != nil {
		color.Red("pksplit: %v", pErr)

		return cli.NewExitError("", 1)
	}

	fmt.Fprint(os.Stdout, text)

	return nil
}

// readKeyInput returns the unencrypted private key bytes: via openssl when
// --openssl-in is set, otherwise read directly from stdin. When pad2 was
// also read from stdin (the 2-argument form), --openssl-in is mandatory,
// since both can't consume the same stream.
func readKeyInput(c *cli.Context, cfg yaconfig.Config, log yalogger.Logger) ([]byte, error) {
	opensslIn := c.String("openssl-in")

	if opensslIn == "" {
		if len(c.Args()) == 2 {
			return nil, fmt.Errorf("--openssl-in is required when pad2 is read from stdin")
		}

		return cliutil.ReadWithLimit(os.Stdin, cfg.MaxPubKeyFileSize)
	}

	f, err := os.Open(opensslIn)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", opensslIn, err)
	}
	defer f.Close()

	encrypted, err := cliutil.ReadWithLimit(f, cfg.MaxPubKeyFileSize)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", opensslIn, err)
	}

	plain, pErr := pipeline.DecryptPrivateKey(context.Background(), cfg.OpensslPath, encrypted, log)
	if pErr != nil {
		return nil, pErr
	}

	return plain, nil
}
