package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/terracoremate/hivekit/wallet"
)

type accountResult struct {
	Account string            `json:"account"`
	Keys    map[string]string `json:"public_keys"`
}

func runKeystoreAdd(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("keystore add needs ACCOUNT")
	}
	name := c.Args().First()
	pass, err := passphrase(c)
	if err != nil {
		return err
	}

	var account *wallet.Account
	if password := c.String("password"); password != "" {
		account, err = wallet.AccountFromPassword(name, password)
	} else {
		account, err = wallet.NewAccount(name)
	}
	if err != nil {
		return err
	}

	// Explicit keys replace derived ones.
	for _, role := range wallet.Roles {
		if wif := c.String(role.String()); wif != "" {
			if err := account.SetKey(role, wif); err != nil {
				return fmt.Errorf("%s key: %w", role, err)
			}
		}
	}
	if len(account.Roles()) == 0 {
		return errors.New("no keys given (use --password or a role flag)")
	}

	m := env(c)
	ks, err := m.keystore()
	if err != nil {
		return err
	}
	if err := ks.Save(account, pass); err != nil {
		return err
	}
	return printAccount(m, account)
}

func runKeystoreList(c *cli.Context) error {
	m := env(c)
	ks, err := m.keystore()
	if err != nil {
		return err
	}
	names, err := ks.List()
	if err != nil {
		return err
	}
	if names == nil {
		names = []string{}
	}
	return printJSON(m.w, names)
}

func runKeystoreShow(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("keystore show needs ACCOUNT")
	}
	pass, err := passphrase(c)
	if err != nil {
		return err
	}
	m := env(c)
	ks, err := m.keystore()
	if err != nil {
		return err
	}
	account, err := ks.Load(c.Args().First(), pass)
	if err != nil {
		return err
	}
	return printAccount(m, account)
}

func runKeystoreRemove(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("keystore remove needs ACCOUNT")
	}
	ks, err := env(c).keystore()
	if err != nil {
		return err
	}
	return ks.Delete(c.Args().First())
}

func printAccount(m *metadata, account *wallet.Account) error {
	result := accountResult{Account: account.Username, Keys: map[string]string{}}
	for _, role := range account.Roles() {
		pub, err := account.PublicKey(role)
		if err != nil {
			return err
		}
		result.Keys[role.String()] = pub
	}
	return printJSON(m.w, result)
}
