package observability

import (
	"context"
	"testing"
	"time"
)

// countingGenerationHooks records how many events fired.
type countingGenerationHooks struct {
	NoopGenerationHooks
	validates int
	generates int
	qualities int
}

func (h *countingGenerationHooks) OnValidateStart(ctx context.Context, levelCount int) {
	h.validates++
}

func (h *countingGenerationHooks) OnGenerateComplete(ctx context.Context, anchors, beams int, d time.Duration, err error) {
	h.generates++
}

func (h *countingGenerationHooks) OnQualityComplete(ctx context.Context, issues int, score float64, d time.Duration) {
	h.qualities++
}

func TestSetGenerationHooks(t *testing.T) {
	defer Reset()

	h := &countingGenerationHooks{}
	SetGenerationHooks(h)

	ctx := context.Background()
	Generation().OnValidateStart(ctx, 6)
	Generation().OnGenerateComplete(ctx, 96, 24, time.Millisecond, nil)
	Generation().OnQualityComplete(ctx, 0, 1.0, time.Millisecond)

	if h.validates != 1 || h.generates != 1 || h.qualities != 1 {
		t.Errorf("hook counts = %d/%d/%d, want 1/1/1", h.validates, h.generates, h.qualities)
	}
}

func TestSetNilHooksKeepsDefaults(t *testing.T) {
	defer Reset()

	SetGenerationHooks(nil)
	SetCacheHooks(nil)
	SetServerHooks(nil)

	// Calls on the no-op defaults must not panic.
	ctx := context.Background()
	Generation().OnRenderStart(ctx, []string{"svg"})
	Cache().OnCacheHit(ctx, "layout")
	Server().OnRequest(ctx, "POST", "/api/v1/layouts")
}

func TestReset(t *testing.T) {
	h := &countingGenerationHooks{}
	SetGenerationHooks(h)
	Reset()

	Generation().OnValidateStart(context.Background(), 1)
	if h.validates != 0 {
		t.Error("Reset should restore no-op hooks")
	}
}
