package billing

import (
	"github.com/MrJamesThe3rd/homebill/internal/transaction"
)

// Bucket is the reconciliation bucket a transaction falls into for one
// (bank, billing month) pair.
type Bucket string

const (
	// BucketCurrent marks an unreconciled transaction belonging to the
	// current bill, including carried-forward stragglers from earlier cycles.
	BucketCurrent Bucket = "current"
	// BucketFuture marks an unreconciled transaction dated after the cycle
	// close, deferred to a later bill.
	BucketFuture Bucket = "future"
	// BucketReconciled marks a transaction already matched against an issued
	// statement.
	BucketReconciled Bucket = "reconciled"
	// BucketExcluded marks transactions outside cycle logic entirely: other
	// banks, and cash.
	BucketExcluded Bucket = "excluded"
)

// Classify assigns a transaction to exactly one bucket for the given bank and
// cycle. hasCycle is false when the card has no statement day configured; in
// that case there is no windowing and every unreconciled card transaction is
// part of the current bill.
//
// The current bucket deliberately has no lower date bound: an unreconciled
// transaction from two cycles ago keeps rolling forward into the current bill
// until it is reconciled, the way a missed charge reappears on every
// subsequent statement.
func Classify(tx *transaction.Transaction, bank string, cycle Cycle, hasCycle bool) Bucket {
	if tx.CardBank != bank || tx.PaymentMethod != transaction.PaymentCreditCard {
		return BucketExcluded
	}

	if tx.IsReconciled {
		return BucketReconciled
	}

	if !hasCycle {
		return BucketCurrent
	}

	if !DateOnly(tx.Date).After(cycle.End) {
		return BucketCurrent
	}

	return BucketFuture
}
