package soroban

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/heartmarshall/cotravel-backend/internal/adapter/soroban/xdr"
	"github.com/heartmarshall/cotravel-backend/internal/config"
	"github.com/heartmarshall/cotravel-backend/internal/domain"
)

const (
	simulationFee      = 100
	simulationValidFor = 30 * time.Second
)

var errNotYetConfirmed = errors.New("soroban: transaction not yet confirmed")

// Gateway talks to a Soroban RPC server on behalf of one escrow contract.
type Gateway struct {
	rpc        *rpcClient
	contractID string
	passphrase string
	retry      RetryPolicy
	log        *slog.Logger
	now        func() time.Time
}

// NewGateway creates a Gateway for cfg.ContractID.
func NewGateway(cfg config.ChainConfig, logger *slog.Logger) *Gateway {
	log := logger.With("adapter", "soroban")
	return &Gateway{
		rpc: &rpcClient{
			url:        cfg.RPCURL,
			httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
			log:        log,
		},
		contractID: cfg.ContractID,
		passphrase: cfg.NetworkPassphrase,
		retry: RetryPolicy{
			MaxAttempts: cfg.PollAttempts,
			Interval:    cfg.PollInterval,
			Timeout:     cfg.ConfirmationTimeout,
		}.withDefaults(),
		log: log,
		now: time.Now,
	}
}

// ContractID returns the strkey of the contract this gateway targets.
func (g *Gateway) ContractID() string { return g.contractID }

// SimulateCall runs a read-only invocation of fn and returns the decoded result.
func (g *Gateway) SimulateCall(ctx context.Context, fn string, args ...xdr.ScVal) (any, error) {
	envelope, err := xdr.BuildInvokeEnvelope(xdr.InvokeParams{
		Fee:      simulationFee,
		Contract: g.contractID,
		Function: fn,
		Args:     args,
		ValidFor: simulationValidFor,
		Now:      g.now(),
	})
	if err != nil {
		return nil, &SimulationError{Err: fmt.Errorf("build %s envelope: %w", fn, err)}
	}

	var res simulateTransactionResult
	if err := g.rpc.call(ctx, "simulateTransaction", simulateTransactionParams{Transaction: envelope}, &res); err != nil {
		return nil, &SimulationError{Transient: true, Err: err}
	}
	if res.Error != "" {
		return nil, &SimulationError{Err: fmt.Errorf("%s: %s", fn, res.Error)}
	}
	if len(res.Results) == 0 || res.Results[0].XDR == "" {
		return nil, &SimulationError{Err: fmt.Errorf("%s: empty simulation result", fn)}
	}

	v, err := xdr.DecodeScValBase64(res.Results[0].XDR)
	if err != nil {
		return nil, &SimulationError{Err: fmt.Errorf("%s: decode result: %w", fn, err)}
	}
	return v, nil
}

// GetState simulates get_state for one escrow instance.
func (g *Gateway) GetState(ctx context.Context, contractInvoiceID uint64) (*domain.OnchainState, error) {
	v, err := g.SimulateCall(ctx, "get_state", xdr.U64(contractInvoiceID))
	if err != nil {
		return nil, err
	}
	state, err := ParseState(v)
	if err != nil {
		return nil, &SimulationError{Err: err}
	}
	return state, nil
}

// SubmitSignedTransaction sends a client-signed transaction envelope and
// blocks until it is confirmed, rejected, or the retry policy runs out.
// All failures are *domain.ChainError.
func (g *Gateway) SubmitSignedTransaction(ctx context.Context, signedXDR string) (*domain.Confirmation, error) {
	signedXDR = strings.TrimSpace(signedXDR)
	if signedXDR == "" {
		return nil, &domain.ChainError{Kind: domain.ErrChainSubmission, Err: errors.New("empty transaction")}
	}

	var sent sendTransactionResult
	if err := g.rpc.call(ctx, "sendTransaction", sendTransactionParams{Transaction: signedXDR}, &sent); err != nil {
		return nil, &domain.ChainError{Kind: domain.ErrChainSubmission, Err: err}
	}

	switch sent.Status {
	case sendStatusPending, sendStatusDuplicate:
	case sendStatusError:
		return nil, &domain.ChainError{
			Kind:   domain.ErrChainExecution,
			TxHash: sent.Hash,
			Err:    fmt.Errorf("transaction rejected: %s", sent.ErrorResultXDR),
		}
	case sendStatusTryAgainLater:
		return nil, &domain.ChainError{Kind: domain.ErrChainSubmission, TxHash: sent.Hash, Err: errors.New("network busy, try again later")}
	default:
		return nil, &domain.ChainError{Kind: domain.ErrChainSubmission, TxHash: sent.Hash, Err: fmt.Errorf("unexpected send status %q", sent.Status)}
	}
	if sent.Hash == "" {
		return nil, &domain.ChainError{Kind: domain.ErrChainSubmission, Err: errors.New("send returned no hash")}
	}

	g.log.InfoContext(ctx, "transaction submitted",
		slog.String("tx_hash", sent.Hash),
		slog.String("status", sent.Status),
	)

	return g.waitForConfirmation(ctx, sent.Hash)
}

func (g *Gateway) waitForConfirmation(ctx context.Context, hash string) (*domain.Confirmation, error) {
	ctx, cancel := context.WithTimeout(ctx, g.retry.Timeout)
	defer cancel()

	var (
		conf    *domain.Confirmation
		attempt int
	)
	poll := func() error {
		attempt++
		var res getTransactionResult
		if err := g.rpc.call(ctx, "getTransaction", getTransactionParams{Hash: hash}, &res); err != nil {
			g.log.WarnContext(ctx, "poll transaction",
				slog.String("tx_hash", hash),
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()),
			)
			return err
		}

		switch res.Status {
		case txStatusSuccess:
			conf = g.confirmation(ctx, hash, &res)
			return nil
		case txStatusFailed:
			return backoff.Permanent(&domain.ChainError{
				Kind:   domain.ErrChainExecution,
				TxHash: hash,
				Err:    fmt.Errorf("transaction failed in ledger %d", res.Ledger),
			})
		case txStatusNotFound:
			return errNotYetConfirmed
		default:
			return fmt.Errorf("soroban: unexpected transaction status %q", res.Status)
		}
	}

	err := backoff.Retry(poll, g.retry.backOff(ctx))
	if err == nil {
		g.log.InfoContext(ctx, "transaction confirmed",
			slog.String("tx_hash", hash),
			slog.Int64("ledger", conf.Ledger),
			slog.Int("attempts", attempt),
		)
		return conf, nil
	}

	var chainErr *domain.ChainError
	if errors.As(err, &chainErr) {
		return nil, chainErr
	}
	return nil, &domain.ChainError{
		Kind:   domain.ErrChainTimeout,
		TxHash: hash,
		Err:    fmt.Errorf("after %d attempts: %w", attempt, err),
	}
}

// confirmation reads the invocation's return value from the transaction
// meta. Diagnostic fn_return events are the fallback for RPC servers that
// omit the meta but emit diagnostics.
func (g *Gateway) confirmation(ctx context.Context, hash string, res *getTransactionResult) *domain.Confirmation {
	conf := &domain.Confirmation{TxHash: hash, Ledger: res.Ledger}

	if res.ResultMetaXDR != "" {
		v, err := xdr.MetaReturnValue(res.ResultMetaXDR)
		if err == nil {
			conf.ReturnValue, conf.HasReturnValue = v, true
			return conf
		}
		if !errors.Is(err, xdr.ErrNoSorobanMeta) {
			g.log.WarnContext(ctx, "decode transaction meta",
				slog.String("tx_hash", hash),
				slog.String("error", err.Error()),
			)
		}
	}

	v, err := xdr.ReturnValue(res.diagnosticEvents(), g.contractID)
	switch {
	case err == nil:
		conf.ReturnValue, conf.HasReturnValue = v, true
	case errors.Is(err, xdr.ErrNoReturnValue):
		g.log.DebugContext(ctx, "no return value in transaction", slog.String("tx_hash", hash))
	default:
		g.log.WarnContext(ctx, "decode diagnostic events",
			slog.String("tx_hash", hash),
			slog.String("error", err.Error()),
		)
	}
	return conf
}

// CheckNetwork verifies the RPC server serves the configured network.
func (g *Gateway) CheckNetwork(ctx context.Context) error {
	var res getNetworkResult
	if err := g.rpc.call(ctx, "getNetwork", nil, &res); err != nil {
		return err
	}
	if res.Passphrase != g.passphrase {
		return fmt.Errorf("soroban: network passphrase mismatch: rpc serves %q, configured %q", res.Passphrase, g.passphrase)
	}
	return nil
}

// Health reports whether the RPC server considers itself healthy.
func (g *Gateway) Health(ctx context.Context) error {
	var res getHealthResult
	if err := g.rpc.call(ctx, "getHealth", nil, &res); err != nil {
		return err
	}
	if res.Status != "healthy" {
		return fmt.Errorf("soroban: rpc status %q", res.Status)
	}
	return nil
}
