package stellar

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
	hProtocol "github.com/stellar/go-stellar-sdk/protocols/horizon"
)

// Writer submits envelopes to one Horizon endpoint.
type Writer struct {
	client   HorizonClient
	endpoint string
}

// NewWriter returns a Writer labelled with endpoint.
func NewWriter(client HorizonClient, endpoint string) *Writer {
	return &Writer{client: client, endpoint: endpoint}
}

// Endpoint returns the Horizon URL this writer submits to.
func (w *Writer) Endpoint() string {
	return w.endpoint
}

// Submit sends a base64 encoded envelope and returns the applied transaction hash.
// Failures are returned as *model.SubmissionError.
func (w *Writer) Submit(ctx context.Context, payload []byte) (string, error) {
	if len(payload) == 0 {
		return "", model.NewSubmissionError(model.CategoryInvalid, "", errors.New("empty payload"))
	}
	tx, err := await(ctx, func() (hProtocol.Transaction, error) {
		return w.client.SubmitTransactionXDR(string(payload))
	})
	if err != nil {
		return "", categorize(err)
	}
	return tx.Hash, nil
}
