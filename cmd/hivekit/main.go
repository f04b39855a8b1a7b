// Command hivekit signs and broadcasts Hive transactions from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero"

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	dryRun := &cli.BoolFlag{
		Name:  "dry-run",
		Usage: "sign and print the transaction without broadcasting",
	}

	return &cli.App{
		Name:      "hivekit",
		Usage:     "sign and broadcast Hive transactions",
		Version:   version,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "datadir",
				Aliases: []string{"d"},
				Usage:   "data `DIR` holding config, keystore and journal",
				EnvVars: []string{"HIVEKIT_DATADIR"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config `FILE` (default DIR/config)",
			},
			&cli.StringFlag{
				Name:    "network",
				Aliases: []string{"n"},
				Usage:   "`NETWORK` to sign for [mainnet|testnet]",
			},
			&cli.StringFlag{
				Name:  "rpc-url",
				Usage: "API node `URL`",
			},
			&cli.StringFlag{
				Name:  "rpc-domain",
				Usage: "discover API nodes from DNSSEC-signed SRV records of `DOMAIN`",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log `LEVEL` [debug|info|warn|error]",
			},
			&cli.StringFlag{
				Name:    "account",
				Aliases: []string{"a"},
				Usage:   "keystore account `NAME` to act as",
				EnvVars: []string{"HIVEKIT_ACCOUNT"},
			},
			&cli.StringFlag{
				Name:    "passphrase",
				Aliases: []string{"p"},
				Usage:   "keystore `PASSPHRASE`",
				EnvVars: []string{"HIVEKIT_PASSPHRASE"},
			},
		},
		Before: setup,
		After:  teardown,
		Commands: []*cli.Command{
			{
				Name:      "derive-key",
				Usage:     "derive a role key from an account name and master password",
				ArgsUsage: "ACCOUNT PASSWORD",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "role", Value: "posting", Usage: "key `ROLE` [owner|active|posting|memo]"},
				},
				Action: runDeriveKey,
			},
			{
				Name:      "public-key",
				Usage:     "print the public key of a WIF private key",
				ArgsUsage: "WIF",
				Action:    runPublicKey,
			},
			{
				Name:  "mnemonic",
				Usage: "generate a BIP39 recovery phrase",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "bits", Value: 128, Usage: "entropy `BITS`"},
				},
				Action: runMnemonic,
			},
			{
				Name:   "head",
				Usage:  "show the dynamic global properties of the chain head",
				Action: runHead,
			},
			{
				Name:  "keystore",
				Usage: "manage sealed account keys",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "seal an account's keys under the passphrase",
						ArgsUsage: "ACCOUNT",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "password", Usage: "master `PASSWORD` to derive every role key from"},
							&cli.StringFlag{Name: "owner", Usage: "owner `WIF`"},
							&cli.StringFlag{Name: "active", Usage: "active `WIF`"},
							&cli.StringFlag{Name: "posting", Usage: "posting `WIF`"},
							&cli.StringFlag{Name: "memo", Usage: "memo `WIF`"},
						},
						Action: runKeystoreAdd,
					},
					{
						Name:   "list",
						Usage:  "list sealed accounts",
						Action: runKeystoreList,
					},
					{
						Name:      "show",
						Usage:     "show the public keys of a sealed account",
						ArgsUsage: "ACCOUNT",
						Action:    runKeystoreShow,
					},
					{
						Name:      "remove",
						Usage:     "delete a sealed account",
						ArgsUsage: "ACCOUNT",
						Action:    runKeystoreRemove,
					},
				},
			},
			{
				Name:  "custom-json",
				Usage: "sign and broadcast a custom_json operation",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true, Usage: "protocol `ID`"},
					&cli.StringFlag{Name: "role", Value: "posting", Usage: "authority `ROLE` [posting|active]"},
					&cli.StringSliceFlag{Name: "param", Usage: "payload entry `KEY=VALUE`; JSON values are kept typed"},
					&cli.BoolFlag{Name: "no-watermark", Usage: "omit the app watermark"},
					dryRun,
				},
				Action: runCustomJSON,
			},
			{
				Name:        "game",
				Usage:       "play game actions",
				Subcommands: gameCommands(dryRun),
			},
			{
				Name:  "journal",
				Usage: "list recently submitted transactions",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "count", Value: 20, Usage: "maximum records to output `COUNT`"},
				},
				Action: runJournal,
			},
		},
	}
}

func gameCommands(dryRun cli.Flag) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "battle",
			Usage: "attack another player",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "target", Required: true, Usage: "player `ACCOUNT` to attack"},
				dryRun,
			},
			Action: runBattle,
		},
		{
			Name:  "claim",
			Usage: "claim accrued scrap",
			Flags: []cli.Flag{
				&cli.Float64Flag{Name: "amount", Required: true, Usage: "scrap `AMOUNT`"},
				dryRun,
			},
			Action: runClaim,
		},
		{
			Name:  "equip",
			Usage: "equip an item",
			Flags: []cli.Flag{
				&cli.UintFlag{Name: "item", Required: true, Usage: "item `NUMBER`"},
				dryRun,
			},
			Action: runEquip,
		},
		{
			Name:  "unequip",
			Usage: "unequip an item",
			Flags: []cli.Flag{
				&cli.UintFlag{Name: "item", Required: true, Usage: "item `NUMBER`"},
				dryRun,
			},
			Action: runUnequip,
		},
		{
			Name:  "open-crate",
			Usage: "open a crate",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "type", Required: true, Usage: "crate `RARITY` [common|uncommon|rare|epic|legendary]"},
				dryRun,
			},
			Action: runOpenCrate,
		},
		{
			Name:  "buy-crate",
			Usage: "buy a crate with scrap",
			Flags: []cli.Flag{
				&cli.UintFlag{Name: "scrap", Required: true, Usage: "scrap `AMOUNT` to spend"},
				dryRun,
			},
			Action: runBuyCrate,
		},
		{
			Name:  "stake",
			Usage: "stake scrap",
			Flags: []cli.Flag{
				&cli.UintFlag{Name: "scrap", Required: true, Usage: "scrap `AMOUNT` to stake"},
				dryRun,
			},
			Action: runStake,
		},
		{
			Name:  "upgrade",
			Usage: "spend scrap on a stat upgrade",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "type", Required: true, Usage: "`STAT` [damage|defense|engineering|dodge|crit|luck]"},
				&cli.UintFlag{Name: "scrap", Required: true, Usage: "scrap `AMOUNT` to spend"},
				dryRun,
			},
			Action: runUpgrade,
		},
		{
			Name:  "boss-fight",
			Usage: "spend flux to fight a planet's boss",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "planet", Required: true, Usage: "`PLANET` name"},
				&cli.Float64Flag{Name: "flux", Required: true, Usage: "flux `AMOUNT` to spend"},
				dryRun,
			},
			Action: runBossFight,
		},
	}
}
