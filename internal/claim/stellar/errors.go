package stellar

import (
	"net/http"

	"github.com/goodnatureofminers/unlockclaimer/internal/claim/model"
	"github.com/stellar/go-stellar-sdk/clients/horizonclient"
)

const codeFeeBumpInnerFailed = "tx_fee_bump_inner_failed"

var transactionCodes = map[string]model.ErrorCategory{
	"tx_insufficient_fee":       model.CategoryFeeTooLow,
	"tx_bad_seq":                model.CategoryStaleSequence,
	"tx_too_early":              model.CategoryTooEarly,
	"tx_too_late":               model.CategoryExpired,
	"tx_malformed":              model.CategoryInvalid,
	"tx_bad_auth":               model.CategoryInvalid,
	"tx_bad_auth_extra":         model.CategoryInvalid,
	"tx_missing_operation":      model.CategoryInvalid,
	"tx_insufficient_balance":   model.CategoryInvalid,
	"tx_no_account":             model.CategoryInvalid,
	"tx_not_supported":          model.CategoryInvalid,
	"tx_bad_sponsorship":        model.CategoryInvalid,
	"tx_bad_min_seq_age_or_gap": model.CategoryTooEarly,
	"tx_internal_error":         model.CategoryTransport,
}

var operationCodes = map[string]model.ErrorCategory{
	"op_does_not_exist":     model.CategoryAlreadyClaimed,
	"op_cannot_claim":       model.CategoryTooEarly,
	"op_no_trust":           model.CategoryInvalid,
	"op_not_authorized":     model.CategoryInvalid,
	"op_line_full":          model.CategoryInvalid,
	"op_underfunded":        model.CategoryInvalid,
	"op_no_destination":     model.CategoryInvalid,
	"op_src_not_authorized": model.CategoryInvalid,
	"op_malformed":          model.CategoryInvalid,
}

// categorize converts a Horizon failure into a *model.SubmissionError.
func categorize(err error) error {
	if err == nil {
		return nil
	}
	hErr := horizonclient.GetError(err)
	if hErr == nil {
		if category := model.Categorize(err); category == model.CategoryTimeout || category == model.CategoryCanceled {
			return model.NewSubmissionError(category, "", err)
		}
		return model.NewSubmissionError(model.CategoryTransport, "", err)
	}

	switch status := hErr.Problem.Status; {
	case status == http.StatusGatewayTimeout:
		return model.NewSubmissionError(model.CategoryTimeout, "", err)
	case status == http.StatusConflict:
		return model.NewSubmissionError(model.CategoryDuplicate, "duplicate", err)
	case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		return model.NewSubmissionError(model.CategoryTransport, "", err)
	}

	codes, codesErr := hErr.ResultCodes()
	if codesErr != nil || codes == nil {
		return model.NewSubmissionError(model.CategoryUnknown, "", err)
	}

	txCode, opCodes := codes.TransactionCode, codes.OperationCodes
	if txCode == codeFeeBumpInnerFailed && codes.InnerTransactionCode != "" {
		txCode = codes.InnerTransactionCode
	}
	if category, ok := transactionCodes[txCode]; ok {
		return model.NewSubmissionError(category, txCode, err)
	}
	for _, op := range opCodes {
		if category, ok := operationCodes[op]; ok {
			return model.NewSubmissionError(category, op, err)
		}
	}
	return model.NewSubmissionError(model.CategoryUnknown, txCode, err)
}

// isNotFound reports whether Horizon answered 404.
func isNotFound(err error) bool {
	hErr := horizonclient.GetError(err)
	return hErr != nil && hErr.Problem.Status == http.StatusNotFound
}
