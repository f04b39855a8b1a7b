package tx

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// headForGolden anchors to the golden body: block 0x85f6 in the low bits,
// prefix bytes 85 ab f4 dc at offset 4, expiration five minutes on.
func headForGolden() *HeadState {
	return &HeadState{
		HeadBlockNumber: 0x010085f6,
		HeadBlockID:     "010085f685abf4dc0000000000000000000000ff",
		Time:            time.Date(2016, 4, 6, 8, 24, 27, 0, time.UTC),
	}
}

type flakyProvider struct {
	mu       sync.Mutex
	failures int
	err      error
	head     *HeadState
	calls    int
}

func (p *flakyProvider) HeadState(context.Context) (*HeadState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.calls <= p.failures {
		return nil, p.err
	}
	return p.head, nil
}

// fakeTimer fires immediately and records the requested waits.
type fakeTimer struct {
	waits   []time.Duration
	c       chan time.Time
	onStart func()
}

func (f *fakeTimer) Start(d time.Duration) {
	f.waits = append(f.waits, d)
	f.c = make(chan time.Time, 1)
	if f.onStart != nil {
		f.onStart()
		return
	}
	f.c <- time.Time{}
}

func (f *fakeTimer) Stop()               {}
func (f *fakeTimer) C() <-chan time.Time { return f.c }

func (f *fakeTimer) total() (d time.Duration) {
	for _, w := range f.waits {
		d += w
	}
	return d
}

func newTestBuilder(p HeadStateProvider, timer *fakeTimer) *Builder {
	opts := DefaultOptions()
	opts.Timer = timer
	return NewBuilder(p, opts)
}

var errInternal = errors.New(`rpc error -32603: Internal Error`)

func TestNewBody(t *testing.T) {
	head := &HeadState{
		HeadBlockNumber: 0x12345678,
		HeadBlockID:     "0123456789abcdef0011223344556677",
		Time:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	body, err := NewBody(head, goldenOps(), DefaultExpiration)
	require.NoError(t, err)

	assert.EqualValues(t, 0x5678, body.RefBlockNum)
	assert.EqualValues(t, 0xefcdab89, body.RefBlockPrefix)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 5, 0, 0, time.UTC), body.Expiration.Time)
	assert.Len(t, body.Operations, 1)
	assert.NotNil(t, body.Signatures)
	assert.Empty(t, body.Signatures)
}

func TestNewBody_InvalidHead(t *testing.T) {
	_, err := NewBody(nil, goldenOps(), DefaultExpiration)
	assert.ErrorIs(t, err, ErrNilParam)

	_, err = NewBody(&HeadState{HeadBlockID: "xyz"}, goldenOps(), DefaultExpiration)
	assert.ErrorIs(t, err, ErrInvalidHeadBlockID)

	_, err = NewBody(&HeadState{HeadBlockID: "00112233"}, goldenOps(), DefaultExpiration)
	assert.ErrorIs(t, err, ErrInvalidHeadBlockID)
}

func TestBuildAndSign_Golden(t *testing.T) {
	p := &flakyProvider{head: headForGolden()}
	b := newTestBuilder(p, &fakeTimer{})

	signed, err := b.BuildAndSign(context.Background(), goldenOps(), [][]byte{goldenKey(t)})
	require.NoError(t, err)
	assert.Equal(t, goldenTxID, signed.ID)
	assert.Equal(t, []string{goldenSigHex}, signed.Tx.Signatures)
	assert.Equal(t, 1, p.calls)
}

func TestBuildAndSign_RetriesTransientThenSucceeds(t *testing.T) {
	p := &flakyProvider{failures: 4, err: errInternal, head: headForGolden()}
	timer := &fakeTimer{}
	b := newTestBuilder(p, timer)

	signed, err := b.BuildAndSign(context.Background(), goldenOps(), [][]byte{goldenKey(t)})
	require.NoError(t, err)
	assert.Equal(t, goldenTxID, signed.ID)
	assert.Equal(t, 5, p.calls)
	assert.Len(t, timer.waits, 4)
	assert.Equal(t, 40*time.Second, timer.total())
	for _, w := range timer.waits {
		assert.Equal(t, DefaultRetryDelay, w)
	}
}

func TestBuildAndSign_GivesUpAfterBudget(t *testing.T) {
	p := &flakyProvider{failures: 6, err: errInternal, head: headForGolden()}
	timer := &fakeTimer{}
	b := newTestBuilder(p, timer)

	var signed *SignedTransaction
	var err error
	require.NotPanics(t, func() {
		signed, err = b.BuildAndSign(context.Background(), goldenOps(), [][]byte{goldenKey(t)})
	})
	assert.Nil(t, signed)
	assert.ErrorIs(t, err, ErrTransientUpstream)
	assert.Equal(t, DefaultMaxAttempts, p.calls)
	assert.Equal(t, 40*time.Second, timer.total())
}

func TestBuildAndSign_NonTransientNotRetried(t *testing.T) {
	p := &flakyProvider{failures: 1, err: errors.New("connection refused"), head: headForGolden()}
	timer := &fakeTimer{}
	b := newTestBuilder(p, timer)

	signed, err := b.BuildAndSign(context.Background(), goldenOps(), [][]byte{goldenKey(t)})
	assert.Nil(t, signed)
	assert.ErrorIs(t, err, ErrHeadState)
	assert.False(t, errors.Is(err, ErrTransientUpstream))
	assert.Equal(t, 1, p.calls)
	assert.Empty(t, timer.waits)
}

func TestBuildAndSign_BadHeadBlockIDNotRetried(t *testing.T) {
	p := &flakyProvider{head: &HeadState{HeadBlockID: "beef"}}
	b := newTestBuilder(p, &fakeTimer{})

	_, err := b.BuildAndSign(context.Background(), goldenOps(), [][]byte{goldenKey(t)})
	assert.ErrorIs(t, err, ErrInvalidHeadBlockID)
	assert.Equal(t, 1, p.calls)
}

func TestBuildAndSign_SigningFailureNotRetried(t *testing.T) {
	p := &flakyProvider{head: headForGolden()}
	timer := &fakeTimer{}
	b := newTestBuilder(p, timer)

	signed, err := b.BuildAndSign(context.Background(), goldenOps(), [][]byte{{0x01}})
	assert.Nil(t, signed)
	assert.ErrorIs(t, err, ErrSigningFailed)
	assert.Equal(t, 1, p.calls)
	assert.Empty(t, timer.waits)
}

func TestBuildAndSign_CanceledBeforeStart(t *testing.T) {
	p := &flakyProvider{head: headForGolden()}
	b := newTestBuilder(p, &fakeTimer{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.BuildAndSign(ctx, goldenOps(), [][]byte{goldenKey(t)})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, p.calls)
}

func TestBuildAndSign_CanceledBetweenAttempts(t *testing.T) {
	p := &flakyProvider{failures: 10, err: errInternal, head: headForGolden()}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	timer := &fakeTimer{onStart: cancel}
	b := newTestBuilder(p, timer)

	_, err := b.BuildAndSign(ctx, goldenOps(), [][]byte{goldenKey(t)})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, p.calls)
}

func TestBuildAndSign_InvalidInput(t *testing.T) {
	b := newTestBuilder(&flakyProvider{head: headForGolden()}, &fakeTimer{})

	_, err := b.BuildAndSign(context.Background(), nil, [][]byte{goldenKey(t)})
	assert.ErrorIs(t, err, ErrNoOperations)

	_, err = b.BuildAndSign(context.Background(), goldenOps(), nil)
	assert.ErrorIs(t, err, ErrNoKeys)
}

func TestBuildAndSign_LogsFailureWithoutKeys(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	p := &flakyProvider{failures: 6, err: errInternal, head: headForGolden()}
	b := newTestBuilder(p, &fakeTimer{})
	_, err := b.BuildAndSign(context.Background(), goldenOps(), [][]byte{goldenKey(t)})
	require.Error(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "failed to build transaction", entry.Message)
	assert.Equal(t, logModule, entry.Data["module"])
	assert.Equal(t, []string{"custom_json"}, entry.Data["ops"])
	assert.Equal(t, 5, entry.Data["attempts"])

	for _, e := range hook.AllEntries() {
		s, _ := e.String()
		assert.NotContains(t, s, goldenWIF)
		assert.NotContains(t, s, "d2653ff7cbb2d8ff129ac27ef5781ce68b2558c41a74af1f2ddca635cbeef07d")
	}
}

func TestNewBuilder_Defaults(t *testing.T) {
	b := NewBuilder(&flakyProvider{}, Options{})
	opts := b.Options()
	assert.Equal(t, MainnetChainID, opts.ChainID)
	assert.Equal(t, DefaultMaxAttempts, opts.MaxAttempts)
	assert.Equal(t, DefaultRetryDelay, opts.RetryDelay)
	assert.Equal(t, DefaultExpiration, opts.Expiration)
	assert.Nil(t, opts.Timer)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(errInternal))
	assert.True(t, IsTransient(ErrTransientUpstream))
	assert.False(t, IsTransient(errors.New("bad request")))
	assert.False(t, IsTransient(nil))
}

func TestChainID(t *testing.T) {
	id, err := ParseChainID(MainnetChainID.String())
	require.NoError(t, err)
	assert.Equal(t, MainnetChainID, id)

	_, err = ParseChainID("beef")
	assert.ErrorIs(t, err, ErrInvalidChainID)
	_, err = ParseChainID("zz")
	assert.ErrorIs(t, err, ErrInvalidChainID)

	id, err = ChainIDForNetwork("testnet")
	require.NoError(t, err)
	assert.Equal(t, TestnetChainID, id)
	_, err = ChainIDForNetwork("regtest")
	assert.ErrorIs(t, err, ErrInvalidChainID)
}
