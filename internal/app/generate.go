package app

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/mpint/internal/cli"
	"github.com/agbru/mpint/internal/logging"
	"github.com/agbru/mpint/internal/mpint"
)

var tracer = otel.Tracer("github.com/agbru/mpint/internal/app")

// generateBatch fills Count slots with random integers of Bits bits,
// running up to Workers generations concurrently. Each slot operates on
// its own Int, so no kernel-level synchronization is needed. The result
// slice is indexed by slot and always has Count entries.
func (a *Application) generateBatch(ctx context.Context) []cli.GenerationResult {
	ctx, span := tracer.Start(ctx, "mpcalc.batch")
	span.SetAttributes(
		attribute.Int("batch.bits", a.Config.Bits),
		attribute.Int("batch.count", a.Config.Count),
		attribute.Int("batch.workers", a.Config.Workers),
	)
	defer span.End()

	results := make([]cli.GenerationResult, a.Config.Count)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.Config.Workers)
	for i := range results {
		g.Go(func() error {
			results[i] = a.generateOne(ctx, i)
			return nil
		})
	}
	// Workers never return errors; failures are reported per slot.
	_ = g.Wait()

	for _, res := range results {
		if res.Err != nil {
			span.SetStatus(codes.Error, "one or more generations failed")
			break
		}
	}
	return results
}

// generateOne produces the value for a single slot.
func (a *Application) generateOne(ctx context.Context, slot int) cli.GenerationResult {
	_, span := tracer.Start(ctx, "mpcalc.generate")
	span.SetAttributes(attribute.Int("slot", slot))
	defer span.End()

	res := cli.GenerationResult{Index: slot}
	if err := ctx.Err(); err != nil {
		res.Err = err
		span.RecordError(err)
		return res
	}

	z := mpint.New()
	start := time.Now()
	err := z.Rand(a.Source, a.Config.Bits)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = err
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		a.Logger.Error("generation failed", logging.Int("slot", slot), logging.Err(err))
		return res
	}

	res.Value = z
	a.Logger.Debug("generated value",
		logging.Int("slot", slot),
		logging.Int("bits", z.BitLen()),
		logging.Int("limbs", z.Used()))
	return res
}
