package main

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/terracoremate/hivekit/keys"
	"github.com/terracoremate/hivekit/wallet"
)

type keyResult struct {
	Account   string `json:"account,omitempty"`
	Role      string `json:"role,omitempty"`
	WIF       string `json:"wif,omitempty"`
	PublicKey string `json:"public_key"`
}

func runDeriveKey(c *cli.Context) error {
	if c.NArg() != 2 {
		return errors.New("derive-key needs ACCOUNT and PASSWORD")
	}
	role, err := wallet.ParseKeyRole(c.String("role"))
	if err != nil {
		return err
	}
	account, err := wallet.AccountFromPassword(c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}
	wif, err := account.WIF(role)
	if err != nil {
		return err
	}
	pub, err := account.PublicKey(role)
	if err != nil {
		return err
	}
	return printJSON(env(c).w, keyResult{
		Account:   account.Username,
		Role:      role.String(),
		WIF:       wif,
		PublicKey: pub,
	})
}

func runPublicKey(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("public-key needs a WIF")
	}
	raw, err := keys.DecodePrivateKey(c.Args().First())
	if err != nil {
		return err
	}
	defer clear(raw)

	pub, err := keys.PublicKeyFromPrivate(raw, keys.AddressPrefix)
	if err != nil {
		return err
	}
	return printJSON(env(c).w, keyResult{PublicKey: pub})
}

func runMnemonic(c *cli.Context) error {
	phrase, err := wallet.GenerateMnemonic(c.Int("bits"))
	if err != nil {
		return err
	}
	return printJSON(env(c).w, struct {
		Phrase string `json:"recovery_phrase"`
	}{phrase})
}
