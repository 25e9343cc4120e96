package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Conn is the part of a ClickHouse connection the repository writes through.
	Conn interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Close() error
	}
	Batch interface {
		Append(v ...any) error
		Send() error
	}
	Metrics interface {
		Observe(operation string, network model.Network, err error, started time.Time)
	}
)
