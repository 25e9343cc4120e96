package stellar

import (
	"time"

	"github.com/stellar/go-stellar-sdk/clients/horizonclient"
	hProtocol "github.com/stellar/go-stellar-sdk/protocols/horizon"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// HorizonClient is the subset of horizonclient.Client the engine uses.
	HorizonClient interface {
		Ledgers(request horizonclient.LedgerRequest) (hProtocol.LedgersPage, error)
		FeeStats() (hProtocol.FeeStats, error)
		AccountDetail(request horizonclient.AccountRequest) (hProtocol.Account, error)
		ClaimableBalances(request horizonclient.ClaimableBalanceRequest) (hProtocol.ClaimableBalances, error)
		ClaimableBalance(id string) (hProtocol.ClaimableBalance, error)
		SubmitTransactionXDR(transactionXdr string) (hProtocol.Transaction, error)
		TransactionDetail(txHash string) (hProtocol.Transaction, error)
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
