// Command slhdsa-demo is a thin demonstration CLI over the slhdsa package,
// in the same spirit as go-xmssmt's xmssmt/main.go demo: it is not a
// test-vector runner or build tool, just a convenient way to poke the
// public API from a shell.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/sixthcell/slhdsa"
	"github.com/urfave/cli"
)

func cmdAlgs(c *cli.Context) error {
	for _, name := range slhdsa.ListNames() {
		fmt.Println(name)
	}
	return nil
}

func cmdDemo(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		name = "SLH-DSA-SHAKE-128s"
	}

	ctx, err := slhdsa.NewContextFromName(name)
	if err != nil {
		return err
	}

	sk, pk, err := ctx.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	msg := []byte(c.String("message"))
	if len(msg) == 0 {
		msg = []byte("slhdsa-demo")
	}

	sig, err := sk.Sign(rand.Reader, msg, nil, c.Bool("deterministic"))
	if err != nil {
		return err
	}

	sigBytes, merr := sig.MarshalBinary()
	if merr != nil {
		return merr
	}

	ok := pk.Verify(sig, msg, nil)

	pkBytes, _ := pk.MarshalBinary()
	fmt.Printf("params:    %s\n", name)
	fmt.Printf("message:   %q\n", msg)
	fmt.Printf("pk:        %s\n", hex.EncodeToString(pkBytes))
	fmt.Printf("signature: %d bytes\n", len(sigBytes))
	fmt.Printf("verify:    %v\n", ok)

	if !ok {
		return cli.NewExitError("verification failed", 1)
	}
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "slhdsa-demo"
	app.Usage = "exercise the slhdsa package from a shell"

	app.Commands = []cli.Command{
		{
			Name:   "algs",
			Usage:  "list the registered SLH-DSA parameter sets",
			Action: cmdAlgs,
		},
		{
			Name:      "demo",
			Usage:     "generate a key, sign a message and verify it",
			ArgsUsage: "[param-set-name]",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "message", Usage: "message to sign"},
				cli.BoolFlag{Name: "deterministic", Usage: "sign deterministically (addrnd = PK.seed)"},
			},
			Action: cmdDemo,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
