package tx

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
	"github.com/terracoremate/hivekit/protocol"
)

const logModule = "tx"

// HeadStateProvider returns the current chain head.
type HeadStateProvider interface {
	HeadState(ctx context.Context) (*HeadState, error)
}

// Options tune a Builder. Zero fields take the package defaults.
type Options struct {
	ChainID     ChainID
	MaxAttempts int
	RetryDelay  time.Duration
	Expiration  time.Duration

	// Timer paces retries; nil uses a real timer.
	Timer backoff.Timer
}

// DefaultOptions returns mainnet options with the standard retry budget.
func DefaultOptions() Options {
	return Options{
		ChainID:     MainnetChainID,
		MaxAttempts: DefaultMaxAttempts,
		RetryDelay:  DefaultRetryDelay,
		Expiration:  DefaultExpiration,
	}
}

// Builder turns operations and keys into signed transactions.
// A Builder holds no per-transaction state and is safe for concurrent use.
type Builder struct {
	provider HeadStateProvider
	opts     Options
}

// NewBuilder returns a Builder fetching head state from provider.
func NewBuilder(provider HeadStateProvider, opts Options) *Builder {
	def := DefaultOptions()
	if opts.ChainID == (ChainID{}) {
		opts.ChainID = def.ChainID
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = def.MaxAttempts
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = def.RetryDelay
	}
	if opts.Expiration <= 0 {
		opts.Expiration = def.Expiration
	}
	return &Builder{provider: provider, opts: opts}
}

// Options returns the effective options.
func (b *Builder) Options() Options { return b.opts }

// BuildAndSign fetches head state, assembles a body around ops and signs
// it with keys in order.
//
// Transient head-state faults are retried with a fixed delay up to
// MaxAttempts in total; cancellation of ctx is observed between attempts.
// Any other failure aborts. On failure the result is nil and the error
// says why; a partially signed transaction is never returned.
func (b *Builder) BuildAndSign(ctx context.Context, ops []protocol.Operation, keys [][]byte) (*SignedTransaction, error) {
	if len(ops) == 0 {
		return nil, ErrNoOperations
	}
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}

	names := protocol.Operations(ops).Names()
	attempts := 0

	assemble := func() (*Body, error) {
		attempts++
		if err := ctx.Err(); err != nil {
			return nil, backoff.Permanent(err)
		}

		head, err := b.provider.HeadState(ctx)
		if err != nil {
			if IsTransient(err) {
				return nil, fmt.Errorf("%w: %w", ErrTransientUpstream, err)
			}
			return nil, backoff.Permanent(fmt.Errorf("%w: %w", ErrHeadState, err))
		}

		body, err := NewBody(head, ops, b.opts.Expiration)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		return body, nil
	}

	notify := func(err error, wait time.Duration) {
		log.WithFields(log.Fields{
			"module":  logModule,
			"ops":     names,
			"attempt": attempts,
			"retry":   wait,
			"err":     err,
		}).Warn("head state fetch failed, retrying")
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(b.opts.RetryDelay), uint64(b.opts.MaxAttempts-1)),
		ctx,
	)

	body, err := backoff.RetryNotifyWithTimerAndData(assemble, policy, notify, b.opts.Timer)
	if err != nil {
		log.WithFields(log.Fields{
			"module":   logModule,
			"ops":      names,
			"attempts": attempts,
			"err":      err,
		}).Warn("failed to build transaction")
		return nil, err
	}

	signed, err := Sign(body, b.opts.ChainID, keys)
	if err != nil {
		log.WithFields(log.Fields{
			"module": logModule,
			"ops":    names,
			"err":    err,
		}).Error("failed to sign transaction")
		return nil, err
	}

	log.WithFields(log.Fields{
		"module":   logModule,
		"ops":      names,
		"txid":     signed.ID,
		"attempts": attempts,
	}).Debug("transaction signed")
	return signed, nil
}
