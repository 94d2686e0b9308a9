package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Convert hooks
	c := NoopConvertHooks{}
	c.OnConvertStart(ctx, "graph.xml")
	c.OnConvertComplete(ctx, "graph.xml", 12, 30, time.Second, nil)
	c.OnConvertComplete(ctx, "graph.xml", 0, 0, time.Second, errors.New("boom"))
	c.OnDiagnostic(ctx, "unknown-element")

	// Render hooks
	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "svg")
	r.OnRenderComplete(ctx, "svg", 1024, false, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Convert().(NoopConvertHooks); !ok {
		t.Error("Convert() should return NoopConvertHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}

	// Set custom hooks
	customConvert := &testConvertHooks{}
	SetConvertHooks(customConvert)
	if Convert() != customConvert {
		t.Error("SetConvertHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Convert().(NoopConvertHooks); !ok {
		t.Error("Reset() should restore NoopConvertHooks")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testConvertHooks{}
	SetConvertHooks(custom)

	// Setting nil should be ignored
	SetConvertHooks(nil)

	if Convert() != custom {
		t.Error("SetConvertHooks(nil) should be ignored")
	}

	Reset()
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testConvertHooks{}
	SetConvertHooks(h)

	ctx := context.Background()
	Convert().OnDiagnostic(ctx, "missing-id")
	Convert().OnDiagnostic(ctx, "missing-id")

	if h.diagnostics["missing-id"] != 2 {
		t.Errorf("diagnostics[missing-id] = %d, want 2", h.diagnostics["missing-id"])
	}
}

// Test implementations
type testConvertHooks struct {
	NoopConvertHooks
	diagnostics map[string]int
}

func (h *testConvertHooks) OnDiagnostic(_ context.Context, kind string) {
	if h.diagnostics == nil {
		h.diagnostics = make(map[string]int)
	}
	h.diagnostics[kind]++
}

type testRenderHooks struct{ NoopRenderHooks }
