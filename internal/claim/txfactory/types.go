package txfactory

import "github.com/goodnatureofminers/unlockclaimer/internal/claim/model"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Codec serializes transactions in the ledger's wire format.
	Codec interface {
		InnerHash(inner model.InnerTransaction) ([]byte, error)
		EnvelopeHash(inner model.InnerTransaction, envelope model.FeeEnvelope) ([]byte, error)
		Encode(inner model.InnerTransaction, envelope model.FeeEnvelope) ([]byte, error)
	}
)
