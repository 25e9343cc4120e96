package watcher

import (
	"context"
	"time"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	LedgerReader interface {
		QueryLockedResources(ctx context.Context, claimant string) ([]model.LockedResource, error)
		LookupLockedResource(ctx context.Context, id string) (*model.LockedResource, error)
	}
	Metrics interface {
		ObservePoll(err error, resources int, started time.Time)
		ObserveSkipped(reason string)
	}
)
