package services

import (
	"context"
	"fmt"
	"math/big"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/unstakeportal/portal-api-service/internal/fees"
	"github.com/unstakeportal/portal-api-service/internal/types"
	"github.com/unstakeportal/portal-api-service/internal/utils"
)

// GetFeeQuote computes the fee breakdown for a prospective unstake amount.
// Quotes are ephemeral: nothing is reserved or persisted. When the price feed
// is enabled a best-effort USD valuation is attached; a feed failure degrades
// the quote, never fails it.
func (s *Services) GetFeeQuote(ctx context.Context, account, amountStr string) (*FeeQuotePublic, *types.Error) {
	amount, err := parsePositiveAmount(amountStr)
	if err != nil {
		return nil, err
	}

	quote, err := fees.Quote(amount, s.cfg.Chain.FeeRateBps())
	if err != nil {
		return nil, err
	}

	public := feeQuotePublic(quote)
	public.PrincipalUsd = s.principalUsd(ctx, account, quote.Principal)
	return &public, nil
}

// principalUsd converts a base-unit principal to a display USD string using
// the session's token decimals, or 18 when no session exists.
func (s *Services) principalUsd(ctx context.Context, account string, principal *big.Int) string {
	if s.Clients == nil || s.Clients.PriceFeed == nil {
		return ""
	}

	price, err := s.Clients.PriceFeed.GetTokenPriceUsd(ctx)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("price feed unavailable, omitting usd valuation")
		return ""
	}

	decimals := uint8(18)
	if account != "" {
		if sess, sessErr := s.Sessions.Get(account); sessErr == nil {
			sess.Lock()
			if sess.Token != nil {
				decimals = sess.Token.Decimals
			}
			sess.Unlock()
		}
	}

	scale := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	tokens := new(big.Float).Quo(new(big.Float).SetInt(principal), scale)
	usd := new(big.Float).Mul(tokens, big.NewFloat(price))
	return usd.Text('f', 2)
}

func parseAmount(amountStr string) (*big.Int, *types.Error) {
	amount, err := utils.ParseAmount(amountStr)
	if err != nil {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidAmount, fmt.Sprintf("invalid amount: %v", err),
		)
	}
	return amount, nil
}
