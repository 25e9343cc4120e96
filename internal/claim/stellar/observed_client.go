package stellar

import (
	"time"

	"github.com/stellar/go-stellar-sdk/clients/horizonclient"
	hProtocol "github.com/stellar/go-stellar-sdk/protocols/horizon"
	"go.uber.org/ratelimit"
)

// ObservedClient paces and times every Horizon request.
type ObservedClient struct {
	client  HorizonClient
	metrics Metrics
	limiter ratelimit.Limiter
}

// NewObservedClient wraps client. requestsPerSecond <= 0 disables pacing.
func NewObservedClient(client HorizonClient, metrics Metrics, requestsPerSecond int) *ObservedClient {
	limiter := ratelimit.NewUnlimited()
	if requestsPerSecond > 0 {
		limiter = ratelimit.New(requestsPerSecond)
	}
	return &ObservedClient{
		client:  client,
		metrics: metrics,
		limiter: limiter,
	}
}

func (c *ObservedClient) begin() time.Time {
	c.limiter.Take()
	return time.Now()
}

func (c *ObservedClient) Ledgers(request horizonclient.LedgerRequest) (page hProtocol.LedgersPage, err error) {
	started := c.begin()
	defer func() {
		c.metrics.Observe("ledgers", err, started)
	}()
	return c.client.Ledgers(request)
}

func (c *ObservedClient) FeeStats() (stats hProtocol.FeeStats, err error) {
	started := c.begin()
	defer func() {
		c.metrics.Observe("fee_stats", err, started)
	}()
	return c.client.FeeStats()
}

func (c *ObservedClient) AccountDetail(request horizonclient.AccountRequest) (account hProtocol.Account, err error) {
	started := c.begin()
	defer func() {
		c.metrics.Observe("account_detail", err, started)
	}()
	return c.client.AccountDetail(request)
}

func (c *ObservedClient) ClaimableBalances(request horizonclient.ClaimableBalanceRequest) (page hProtocol.ClaimableBalances, err error) {
	started := c.begin()
	defer func() {
		c.metrics.Observe("claimable_balances", err, started)
	}()
	return c.client.ClaimableBalances(request)
}

func (c *ObservedClient) ClaimableBalance(id string) (balance hProtocol.ClaimableBalance, err error) {
	started := c.begin()
	defer func() {
		c.metrics.Observe("claimable_balance", err, started)
	}()
	return c.client.ClaimableBalance(id)
}

// SubmitTransactionXDR is not paced: submissions must leave as soon as they are ready.
func (c *ObservedClient) SubmitTransactionXDR(transactionXdr string) (tx hProtocol.Transaction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("submit_transaction", err, started)
	}()
	return c.client.SubmitTransactionXDR(transactionXdr)
}

func (c *ObservedClient) TransactionDetail(txHash string) (tx hProtocol.Transaction, err error) {
	started := c.begin()
	defer func() {
		c.metrics.Observe("transaction_detail", err, started)
	}()
	return c.client.TransactionDetail(txHash)
}
