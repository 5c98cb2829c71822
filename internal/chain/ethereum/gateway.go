package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"

	"github.com/unstakeportal/portal-api-service/internal/chain"
	"github.com/unstakeportal/portal-api-service/internal/config"
	"github.com/unstakeportal/portal-api-service/internal/types"
)

// Gateway is the go-ethereum backed chain gateway. Reads go through bound
// contract calls, writes are signed with the portal operator key.
type Gateway struct {
	cfg        *config.ChainConfig
	chainID    *big.Int
	signer     *ecdsa.PrivateKey
	signerAddr common.Address

	mu      sync.Mutex
	client  *ethclient.Client
	staking *bind.BoundContract
	token   *bind.BoundContract
}

// stakingWithdrawal mirrors the getWithdrawals tuple layout.
type stakingWithdrawal struct {
	Amount     *big.Int
	Timestamp  *big.Int
	UnlockTime *big.Int
	Claimed    bool
}

func New(cfg *config.ChainConfig) (*Gateway, error) {
	signer, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.SignerKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid signer key: %w", err)
	}

	return &Gateway{
		cfg:        cfg,
		chainID:    big.NewInt(cfg.ChainID),
		signer:     signer,
		signerAddr: crypto.PubkeyToAddress(signer.PublicKey),
	}, nil
}

// Connect dials the configured RPC endpoint and verifies its chain id. On a
// chain id mismatch it retries once against the fallback endpoint before
// surfacing WRONG_NETWORK. Safe to call repeatedly; an established connection
// is reused.
func (g *Gateway) Connect(ctx context.Context) (*big.Int, *types.Error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return new(big.Int).Set(g.chainID), nil
	}

	client, err := g.dialAndVerify(ctx, g.cfg.RPCURL)
	if err != nil {
		if err.ErrorCode == types.WrongNetwork && g.cfg.FallbackRPCURL != "" {
			log.Ctx(ctx).Warn().Str("rpc", g.cfg.RPCURL).
				Msg("rpc endpoint is on the wrong network, retrying with fallback")
			client, err = g.dialAndVerify(ctx, g.cfg.FallbackRPCURL)
		}
		if err != nil {
			return nil, err
		}
	}

	stakingParsed, parseErr := abi.JSON(strings.NewReader(stakingContractABI))
	if parseErr != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to parse staking ABI: %w", parseErr))
	}
	tokenParsed, parseErr := abi.JSON(strings.NewReader(erc20ABI))
	if parseErr != nil {
		return nil, types.NewInternalServiceError(fmt.Errorf("failed to parse token ABI: %w", parseErr))
	}

	g.client = client
	g.staking = bind.NewBoundContract(
		common.HexToAddress(g.cfg.StakingContract), stakingParsed, client, client, client,
	)
	g.token = bind.NewBoundContract(
		common.HexToAddress(g.cfg.TokenContract), tokenParsed, client, client, client,
	)
	return new(big.Int).Set(g.chainID), nil
}

func (g *Gateway) dialAndVerify(ctx context.Context, rpcURL string) (*ethclient.Client, *types.Error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, types.NewError(
			http.StatusBadGateway, types.NoProvider,
			fmt.Errorf("failed to dial rpc endpoint: %w", err),
		)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, mapGatewayError(err)
	}
	if chainID.Cmp(g.chainID) != 0 {
		client.Close()
		return nil, types.NewError(
			http.StatusBadGateway, types.WrongNetwork,
			fmt.Errorf("chain id mismatch: expected %d, got %d", g.chainID, chainID),
		)
	}
	return client, nil
}

func (g *Gateway) TokenInfo(ctx context.Context) (*chain.TokenInfo, *types.Error) {
	token, err := g.tokenContract()
	if err != nil {
		return nil, err
	}
	opts := &bind.CallOpts{Context: ctx}

	var symbolOut []interface{}
	if callErr := token.Call(opts, &symbolOut, "symbol"); callErr != nil {
		return nil, mapGatewayError(callErr)
	}
	var decimalsOut []interface{}
	if callErr := token.Call(opts, &decimalsOut, "decimals"); callErr != nil {
		return nil, mapGatewayError(callErr)
	}

	return &chain.TokenInfo{
		Symbol:   *abi.ConvertType(symbolOut[0], new(string)).(*string),
		Decimals: *abi.ConvertType(decimalsOut[0], new(uint8)).(*uint8),
	}, nil
}

func (g *Gateway) GetStakedBalance(ctx context.Context, account string) (*big.Int, *types.Error) {
	return g.callUint256(ctx, "getStakedBalance", account)
}

func (g *Gateway) GetPendingRewards(ctx context.Context, account string) (*big.Int, *types.Error) {
	return g.callUint256(ctx, "getPendingRewards", account)
}

func (g *Gateway) GetWithdrawals(ctx context.Context, account string) ([]chain.Withdrawal, *types.Error) {
	staking, err := g.stakingContract()
	if err != nil {
		return nil, err
	}

	var out []interface{}
	callErr := staking.Call(
		&bind.CallOpts{Context: ctx}, &out, "getWithdrawals", common.HexToAddress(account),
	)
	if callErr != nil {
		return nil, mapGatewayError(callErr)
	}

	raw := *abi.ConvertType(out[0], new([]stakingWithdrawal)).(*[]stakingWithdrawal)
	withdrawals := make([]chain.Withdrawal, 0, len(raw))
	for i, w := range raw {
		withdrawals = append(withdrawals, chain.Withdrawal{
			ID:          uint64(i),
			Amount:      w.Amount,
			RequestedAt: time.Unix(w.Timestamp.Int64(), 0).UTC(),
			UnlockAt:    time.Unix(w.UnlockTime.Int64(), 0).UTC(),
			Claimed:     w.Claimed,
		})
	}
	return withdrawals, nil
}

func (g *Gateway) SubmitUnstake(ctx context.Context, account string, amount *big.Int) (string, *types.Error) {
	return g.transact(ctx, "unstake", amount)
}

func (g *Gateway) SubmitClaim(ctx context.Context, account string, withdrawalID uint64) (string, *types.Error) {
	return g.transact(ctx, "withdraw", new(big.Int).SetUint64(withdrawalID))
}

// WaitForConfirmation polls for the transaction receipt until the transaction
// is mined or the context is cancelled. Mined with status 0 returns
// (false, nil).
func (g *Gateway) WaitForConfirmation(ctx context.Context, txRef string) (bool, *types.Error) {
	client, err := g.ethClient()
	if err != nil {
		return false, err
	}

	txHash := common.HexToHash(txRef)
	ticker := time.NewTicker(g.cfg.ConfirmationPollInterval)
	defer ticker.Stop()

	for {
		receipt, receiptErr := client.TransactionReceipt(ctx, txHash)
		if receiptErr == nil {
			return receipt.Status == 1, nil
		}
		if !errors.Is(receiptErr, goethereum.NotFound) {
			return false, mapGatewayError(receiptErr)
		}

		select {
		case <-ctx.Done():
			return false, types.NewError(
				http.StatusGatewayTimeout, types.GatewayTimeout,
				fmt.Errorf("gave up waiting for confirmation of %s: %w", txRef, ctx.Err()),
			)
		case <-ticker.C:
		}
	}
}

func (g *Gateway) callUint256(ctx context.Context, method, account string) (*big.Int, *types.Error) {
	staking, err := g.stakingContract()
	if err != nil {
		return nil, err
	}

	var out []interface{}
	callErr := staking.Call(
		&bind.CallOpts{Context: ctx}, &out, method, common.HexToAddress(account),
	)
	if callErr != nil {
		return nil, mapGatewayError(callErr)
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (g *Gateway) transact(ctx context.Context, method string, arg *big.Int) (string, *types.Error) {
	staking, err := g.stakingContract()
	if err != nil {
		return "", err
	}

	opts, optsErr := bind.NewKeyedTransactorWithChainID(g.signer, g.chainID)
	if optsErr != nil {
		return "", types.NewInternalServiceError(optsErr)
	}
	opts.Context = ctx

	tx, txErr := staking.Transact(opts, method, arg)
	if txErr != nil {
		return "", mapGatewayError(txErr)
	}
	return tx.Hash().Hex(), nil
}

func (g *Gateway) stakingContract() (*bind.BoundContract, *types.Error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.staking == nil {
		return nil, notConnectedError()
	}
	return g.staking, nil
}

func (g *Gateway) tokenContract() (*bind.BoundContract, *types.Error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.token == nil {
		return nil, notConnectedError()
	}
	return g.token, nil
}

func (g *Gateway) ethClient() (*ethclient.Client, *types.Error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client == nil {
		return nil, notConnectedError()
	}
	return g.client, nil
}

func notConnectedError() *types.Error {
	return types.NewErrorWithMsg(
		http.StatusBadGateway, types.NoProvider, "chain gateway is not connected",
	)
}

// mapGatewayError translates provider and node errors onto the portal error
// taxonomy. Unrecognized errors stay internal.
func mapGatewayError(err error) *types.Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return types.NewError(http.StatusGatewayTimeout, types.GatewayTimeout, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "user denied") || strings.Contains(msg, "user rejected"):
		return types.NewError(http.StatusForbidden, types.UserRejected, err)
	case strings.Contains(msg, "insufficient funds"):
		return types.NewError(http.StatusForbidden, types.InsufficientFunds, err)
	case strings.Contains(msg, "execution reverted"):
		return types.NewError(http.StatusForbidden, types.Reverted, err)
	case strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host"):
		return types.NewError(http.StatusBadGateway, types.NoProvider, err)
	default:
		return types.NewInternalServiceError(err)
	}
}
