package transport

import "github.com/goodnatureofminers/unlockclaimer/internal/claim/model"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// OutcomeJournal serves recently recorded outcomes.
	OutcomeJournal interface {
		List(limit int) []model.Outcome
		Get(resourceID string) (model.Outcome, bool)
	}
)
