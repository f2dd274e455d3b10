// Command pkregen reads an unencrypted RSA private key in PEM or DER form,
// discards every field but its modulus, exponent, and first prime, and
// writes the key rebuilt from scratch to stdout (or --out). It exists to
// verify that the (mod, exp, p1) triple alone reproduces a key equivalent
// to the original.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rcauth-eu/privkeysplit/cmd/internal/cliutil"
	"github.com/rcauth-eu/privkeysplit/pipeline"
	"github.com/rcauth-eu/privkeysplit/yaconfig"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "pkregen"
	app.Usage = "regenerate an RSA private key from its modulus, exponent, and first prime"
	app.ArgsUsage = "[input-key-file]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "out",
			Usage: "write the regenerated PEM key here instead of stdout",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "trace|debug|info|warn|error (overrides PKSPLIT_LOG_LEVEL)",
		},
	}
	app.Action = runRegen

	if err := app.Run(os.Args); err != nil {
		color.Red("pkregen: %v", err)
		os.Exit(1)
	}
}

func runRegen(c *cli.Context) error {
	bootLog := cliutil.NewRunLogger(cliutil.ParseLogLevel("info"))

	cfg := yaconfig.Load(bootLog).ApplyFlagOverrides("", c.String("log-level"))
	log := cliutil.NewRunLogger(cliutil.ParseLogLevel(cfg.LogLevel))

	keyBytes, err := readInputKey(c, cfg)
	if err != nil {
		return fmt.Errorf("pkregen: %w", err)
	}

	out, pErr := pipeline.RegenerateFromPrime(keyBytes, log)
	if pErr != nil {
		color.Red("pkregen: %v", pErr)

		return cli.NewExitError("", 1)
	}

	if outPath := c.String("out"); outPath != "" {
		return os.WriteFile(outPath, out, 0o600)
	}

	fmt.Fprint(os.Stdout, string(out))

	return nil
}

func readInputKey(c *cli.Context, cfg yaconfig.Config) ([]byte, error) {
	if path := c.Args().First(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return cliutil.ReadWithLimit(f, cfg.MaxPubKeyFileSize)
	}

	return cliutil.ReadWithLimit(os.Stdin, cfg.MaxPubKeyFileSize)
}
