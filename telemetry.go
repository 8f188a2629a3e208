package qcircuit

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("github.com/go-qcircuit/go-qcircuit")

// ---- gateoperation.go ----

const (
	// gateLabel is the attribute key used to associate each record with the
	// gate being bound. This enables both collective examination of metrics,
	// such as bindings and bindingFailures, across all gates and individual
	// analysis per gate kind.
	gateLabel = "gate"
	// reasonLabel is the attribute key carrying the validation failure kind:
	// "arity", "dimension", or "other" for gate-specific constraints.
	reasonLabel = "reason"
)

var (
	// bindings measures the number of gate-qubit bindings constructed
	// successfully.
	//
	// Each record is associated with the gateLabel.
	bindings metric.Int64Counter
	// bindingFailures measures the number of bindings rejected by validation.
	//
	// Each record is associated with the gateLabel and the reasonLabel.
	bindingFailures metric.Int64Counter
)

func init() {
	var err error
	bindings, err = meter.Int64Counter(
		"operation.bindings",
		metric.WithDescription("The number of gate-qubit bindings constructed successfully."),
	)
	if err != nil {
		panic("qcircuit: failed to init 'operation.bindings' instrument")
	}

	bindingFailures, err = meter.Int64Counter(
		"operation.binding.failures",
		metric.WithDescription("The number of gate-qubit bindings rejected by validation."),
	)
	if err != nil {
		panic("qcircuit: failed to init 'operation.binding.failures' instrument")
	}
}

// measureBinding records the outcome of a single gate-qubit binding using the
// measurements bindings and bindingFailures. If the binding validated, we
// count it; if it was rejected, we increment the failure counter.
//
// Failure records additionally carry the failure kind so arity and dimension
// mismatches can be analysed separately.
//
// According to [metric] documentation, [metric.WithAttributeSet] should be
// used instead of [metric.WithAttributes] for performance optimisation.
func measureBinding(g Gate, err error) {
	// Binding is a pure, synchronous computation with no caller-supplied
	// context; measurements are recorded against the background context.
	ctx := context.Background()

	if err == nil {
		attrs := attribute.NewSet(attribute.String(gateLabel, gateName(g)))
		bindings.Add(ctx, 1, metric.WithAttributeSet(attrs))
		return
	}

	reason := "other"
	var (
		arity *ArityError
		slot  *SlotDimensionError
		dim   *DimensionError
	)
	switch {
	case errors.As(err, &arity):
		reason = "arity"
	case errors.As(err, &slot), errors.As(err, &dim):
		reason = "dimension"
	}
	attrs := attribute.NewSet(
		attribute.String(gateLabel, gateName(g)),
		attribute.String(reasonLabel, reason),
	)
	bindingFailures.Add(ctx, 1, metric.WithAttributeSet(attrs))
}
