package main

import "github.com/urfave/cli/v2"

func runHead(c *cli.Context) error {
	client, err := env(c).rpcClient()
	if err != nil {
		return err
	}
	props, err := client.GetDynamicGlobalProperties(c.Context)
	if err != nil {
		return err
	}
	return printJSON(env(c).w, props)
}

func runJournal(c *cli.Context) error {
	m := env(c)
	store, err := m.openJournal()
	if err != nil {
		return err
	}
	entries, err := store.Recent(c.Int("count"))
	if err != nil {
		return err
	}

	type row struct {
		ID       string   `json:"txid"`
		Account  string   `json:"account"`
		Ops      []string `json:"ops"`
		Created  string   `json:"created"`
		Status   string   `json:"status"`
		BlockNum uint32   `json:"block_num,omitempty"`
		Error    string   `json:"error,omitempty"`
	}
	rows := make([]row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, row{
			ID:       e.ID,
			Account:  e.Account,
			Ops:      e.Ops,
			Created:  e.Created.Format("2006-01-02T15:04:05Z"),
			Status:   e.Status.String(),
			BlockNum: e.BlockNum,
			Error:    e.Error,
		})
	}
	return printJSON(m.w, rows)
}
