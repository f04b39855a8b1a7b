package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/terracoremate/hivekit/config"
	"github.com/terracoremate/hivekit/journal"
	"github.com/terracoremate/hivekit/network"
	"github.com/terracoremate/hivekit/tx"
	"github.com/terracoremate/hivekit/wallet"
)

const logModule = "cmd"

// metadata is the per-run state built by setup.
type metadata struct {
	cfg     config.Config
	w       io.Writer
	logFile *os.File
	journal *journal.Store
}

func env(c *cli.Context) *metadata {
	return c.App.Metadata["env"].(*metadata)
}

// setup loads the config file, overlays global flags and configures logging.
func setup(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"), c.String("datadir"))
	if err != nil {
		return err
	}
	overlayFlags(&cfg, c)

	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	m := &metadata{cfg: cfg, w: c.App.Writer}
	if m.logFile, err = setupLogging(cfg, c.App.ErrWriter); err != nil {
		return err
	}

	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata["env"] = m
	return nil
}

// teardown releases resources opened during the run.
func teardown(c *cli.Context) error {
	m, ok := c.App.Metadata["env"].(*metadata)
	if !ok {
		return nil
	}
	var errs []error
	if m.journal != nil {
		errs = append(errs, m.journal.Close())
	}
	if m.logFile != nil {
		errs = append(errs, m.logFile.Close())
	}
	return errors.Join(errs...)
}

// loadConfig reads the config file if there is one. A missing file means
// defaults; a datadir given on the command line wins over the file.
func loadConfig(path, dataDir string) (config.Config, error) {
	if path == "" {
		dir := dataDir
		if dir == "" {
			dir = config.DefaultDataDir()
		}
		path = config.ConfigPath(dir)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return cfg, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

func overlayFlags(cfg *config.Config, c *cli.Context) {
	if v := c.String("network"); v != "" {
		cfg.Network = v
	}
	if v := c.String("rpc-url"); v != "" {
		cfg.RPCURL = v
	}
	if v := c.String("rpc-domain"); v != "" {
		cfg.RPCDomain = v
	}
	if v := c.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
}

// setupLogging applies the level and points output at the log file when
// one is configured. The returned file, if any, is owned by the caller.
func setupLogging(cfg config.Config, stderr io.Writer) (*os.File, error) {
	level, err := log.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidLogLevel, err)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if cfg.LogFile == "" {
		log.SetOutput(stderr)
		return nil, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

// rpcClient connects to the configured node. With only a domain set the
// node is taken from its SRV records, validated through DNSSEC.
func (m *metadata) rpcClient() (*network.RPCClient, error) {
	flags := &network.RPCConfig{URL: m.cfg.RPCURL}
	if flags.URL == "" && m.cfg.RPCDomain != "" {
		endpoints, err := network.ResolveEndpointsWithResolver(m.cfg.RPCDomain, network.NewDNSSECResolver(""))
		if err != nil {
			return nil, err
		}
		flags.URL = endpoints[0]
		log.WithFields(log.Fields{
			"module":   logModule,
			"domain":   m.cfg.RPCDomain,
			"endpoint": flags.URL,
		}).Debug("discovered API node")
	}

	rpcCfg, err := network.ResolveConfig(flags, map[string]string{
		"HIVE_RPC_URL": os.Getenv("HIVE_RPC_URL"),
	}, m.cfg.Network)
	if err != nil {
		return nil, err
	}
	return network.NewRPCClient(*rpcCfg), nil
}

func (m *metadata) builder(provider tx.HeadStateProvider) (*tx.Builder, error) {
	opts, err := m.cfg.TxOptions()
	if err != nil {
		return nil, err
	}
	return tx.NewBuilder(provider, opts), nil
}

func (m *metadata) keystore() (*wallet.Keystore, error) {
	return wallet.NewKeystore(m.cfg.KeystoreDir())
}

// openJournal opens the journal once per run; teardown closes it.
func (m *metadata) openJournal() (*journal.Store, error) {
	if m.journal != nil {
		return m.journal, nil
	}
	store, err := journal.Open(m.cfg.JournalPath())
	if err != nil {
		return nil, err
	}
	m.journal = store
	return store, nil
}

// account unseals the account named by --account.
func (m *metadata) account(c *cli.Context) (*wallet.Account, error) {
	name := c.String("account")
	if name == "" {
		return nil, errors.New("no account selected (use --account or HIVEKIT_ACCOUNT)")
	}
	pass, err := passphrase(c)
	if err != nil {
		return nil, err
	}
	ks, err := m.keystore()
	if err != nil {
		return nil, err
	}
	return ks.Load(name, pass)
}

func passphrase(c *cli.Context) (string, error) {
	pass := c.String("passphrase")
	if pass == "" {
		return "", errors.New("no keystore passphrase (use --passphrase or HIVEKIT_PASSPHRASE)")
	}
	return pass, nil
}
