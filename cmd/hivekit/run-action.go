package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/terracoremate/hivekit/action"
	"github.com/terracoremate/hivekit/wallet"
)

func runCustomJSON(c *cli.Context) error {
	role, err := wallet.ParseKeyRole(c.String("role"))
	if err != nil {
		return err
	}
	params, err := parseParams(c.StringSlice("param"))
	if err != nil {
		return err
	}
	return perform(c, func(account string) (*action.Action, error) {
		a, err := action.BuildGenericAction(account, c.String("id"), role, params)
		if err != nil {
			return nil, err
		}
		a.NoWatermark = c.Bool("no-watermark")
		return a, nil
	})
}

// parseParams turns KEY=VALUE pairs into payload entries. A value that
// parses as JSON keeps its type; anything else is a string.
func parseParams(pairs []string) (*action.Params, error) {
	params := action.NewParams()
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: param %q is not KEY=VALUE", action.ErrInvalidAction, pair)
		}
		var value interface{} = raw
		if json.Valid([]byte(raw)) {
			value = json.RawMessage(raw)
		}
		if !params.Add(key, value) {
			return nil, fmt.Errorf("%w: duplicate param %q", action.ErrInvalidAction, key)
		}
	}
	return params, nil
}

func runBattle(c *cli.Context) error {
	return perform(c, func(account string) (*action.Action, error) {
		return action.NewGame().Battle(account, c.String("target"))
	})
}

func runClaim(c *cli.Context) error {
	return perform(c, func(account string) (*action.Action, error) {
		return action.NewGame().Claim(account, c.Float64("amount"))
	})
}

func runEquip(c *cli.Context) error {
	return perform(c, func(account string) (*action.Action, error) {
		return action.NewGame().Equip(account, uint32(c.Uint("item")))
	})
}

func runUnequip(c *cli.Context) error {
	return perform(c, func(account string) (*action.Action, error) {
		return action.NewGame().Unequip(account, uint32(c.Uint("item")))
	})
}

func runOpenCrate(c *cli.Context) error {
	return perform(c, func(account string) (*action.Action, error) {
		return action.NewGame().OpenCrate(account, action.CrateType(c.String("type")))
	})
}

func runBuyCrate(c *cli.Context) error {
	return perform(c, func(account string) (*action.Action, error) {
		return action.NewGame().BuyCrate(account, uint32(c.Uint("scrap")))
	})
}

func runStake(c *cli.Context) error {
	return perform(c, func(account string) (*action.Action, error) {
		return action.NewGame().Stake(account, uint32(c.Uint("scrap")))
	})
}

func runUpgrade(c *cli.Context) error {
	return perform(c, func(account string) (*action.Action, error) {
		return action.NewGame().Upgrade(account, action.UpgradeType(c.String("type")), uint32(c.Uint("scrap")))
	})
}

func runBossFight(c *cli.Context) error {
	return perform(c, func(account string) (*action.Action, error) {
		return action.NewGame().BossFight(account, c.String("planet"), c.Float64("flux"))
	})
}

// perform unseals the selected account, builds its action and either
// prints the signed transaction (--dry-run) or submits it.
func perform(c *cli.Context, build func(account string) (*action.Action, error)) error {
	m := env(c)
	account, err := m.account(c)
	if err != nil {
		return err
	}
	a, err := build(account.Username)
	if err != nil {
		return err
	}

	client, err := m.rpcClient()
	if err != nil {
		return err
	}
	builder, err := m.builder(client)
	if err != nil {
		return err
	}

	if c.Bool("dry-run") {
		signed, err := action.Prepare(c.Context, builder, account, a)
		if err != nil {
			return err
		}
		return printJSON(m.w, signed)
	}

	store, err := m.openJournal()
	if err != nil {
		return err
	}
	s := &action.Submitter{Signer: builder, Broadcaster: client, Journal: store}
	receipt, err := s.Submit(c.Context, account, a)
	if err != nil {
		return err
	}
	return printJSON(m.w, struct {
		TxID     string `json:"txid"`
		BlockNum uint32 `json:"block_num"`
	}{receipt.TxID, receipt.BlockNum})
}
