package vm

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aicredit/go-aicredit/metrics"
	"github.com/aicredit/go-aicredit/vm/core"
)

const namespace = "vm"

var (
	transactionsTotal = metrics.NewCounter(
		"transactions",
		namespace,
		"number of processed transactions",
		[]string{"status"},
	)
	transactionsSuccess = transactionsTotal.WithLabelValues("success")
	transactionsSkipped = transactionsTotal.WithLabelValues("skipped")

	failuresTotal = metrics.NewCounter(
		"failures",
		namespace,
		"number of failed transactions by reason",
		[]string{"reason"},
	)

	instructionsTotal = metrics.NewCounter(
		"instructions",
		namespace,
		"number of successfully executed instructions",
		[]string{"program"},
	)

	computeUnits = metrics.NewHistogramWithBuckets(
		"compute_units",
		namespace,
		"compute units consumed by a transaction",
		[]string{},
		prometheus.ExponentialBuckets(1000, 2, 10),
	).WithLabelValues()

	applyDuration = metrics.NewHistogramWithBuckets(
		"apply_duration",
		namespace,
		"duration in seconds to apply transactions for a slot",
		[]string{},
		prometheus.ExponentialBuckets(0.001, 2, 15),
	).WithLabelValues()

	changedAccounts = metrics.NewGauge(
		"changed_accounts",
		namespace,
		"number of accounts changed in the last applied slot",
		[]string{},
	).WithLabelValues()
)

var reasons = []struct {
	err    error
	reason string
}{
	{core.ErrMalformed, "malformed"},
	{core.ErrUnknownProgram, "unknown_program"},
	{core.ErrComputeBudgetExceeded, "compute_budget"},
	{core.ErrReadonlyDataModified, "readonly_modified"},
	{core.ErrExternalAccountDataModified, "external_modified"},
	{core.ErrAccountDataSizeChanged, "size_changed"},
	{core.ErrInvalidInstructionData, "invalid_instruction"},
	{core.ErrInvalidAccountData, "invalid_account"},
	{core.ErrNotEnoughAccountKeys, "not_enough_accounts"},
	{core.ErrUninitialized, "uninitialized"},
	{core.ErrArithmeticOverflow, "overflow"},
	{core.ErrInstructionMissing, "instruction_missing"},
	{core.ErrInstructionFallbackNotFound, "instruction_fallback"},
}

func failureReason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return "other"
}
