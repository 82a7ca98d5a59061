package action

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nerrad567/friendship-lights/internal/device"
	"github.com/nerrad567/friendship-lights/internal/govee"
)

type controlCall struct {
	DeviceID   string
	Capability govee.Capability
}

// MockController records calls and fails the call numbers listed in failOn (1-based).
type MockController struct {
	mu     sync.Mutex
	calls  []controlCall
	failOn map[int]error
}

func (m *MockController) ControlDevice(_ context.Context, _ string, deviceID string, capability govee.Capability) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, controlCall{DeviceID: deviceID, Capability: capability})
	if err, ok := m.failOn[len(m.calls)]; ok {
		return err
	}
	return nil
}

func (m *MockController) Calls() []controlCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]controlCall(nil), m.calls...)
}

// recordingDelayer returns immediately and records each wait along with how
// many vendor calls had been made when it started.
type recordingDelayer struct {
	ctrl        *MockController
	waits       []time.Duration
	callsBefore []int
}

func (r *recordingDelayer) Wait(d time.Duration) {
	r.waits = append(r.waits, d)
	r.callsBefore = append(r.callsBefore, len(r.ctrl.Calls()))
}

func newTestHandlers(ctrl *MockController) (*Handlers, *recordingDelayer) {
	op := device.NewOperator(ctrl, device.DefaultRegistry(), device.DefaultColors())
	h := NewHandlers(op)
	d := &recordingDelayer{ctrl: ctrl}
	h.SetDelayer(d)
	return h, d
}

func deviceID(t *testing.T, name string) string {
	t.Helper()
	e, err := device.DefaultRegistry().Lookup(name)
	if err != nil {
		t.Fatalf("Lookup(%q): %v", name, err)
	}
	return e.DeviceID
}

func TestPlugOn(t *testing.T) {
	ctrl := &MockController{}
	h, _ := newTestHandlers(ctrl)

	res := h.PlugOn(context.Background(), device.GirlfriendOutlet)
	if !res.OK || res.Error != "" {
		t.Fatalf("PlugOn() = %+v, want ok", res)
	}

	calls := ctrl.Calls()
	if len(calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(calls))
	}
	if calls[0].DeviceID != deviceID(t, device.GirlfriendOutlet) || calls[0].Capability != govee.PowerSwitch(true) {
		t.Errorf("call = %+v", calls[0])
	}
}

func TestPlugOn_UnknownTarget(t *testing.T) {
	ctrl := &MockController{}
	h, _ := newTestHandlers(ctrl)

	res := h.PlugOn(context.Background(), "toaster")
	if res.OK || res.Error != "Unknown target: toaster" {
		t.Errorf("PlugOn(toaster) = %+v", res)
	}
	if n := len(ctrl.Calls()); n != 0 {
		t.Errorf("calls = %d, want 0", n)
	}
}

func TestPlugOn_VendorFailure(t *testing.T) {
	ctrl := &MockController{failOn: map[int]error{1: &govee.APIError{Code: 400, Message: "devices not exist"}}}
	h, _ := newTestHandlers(ctrl)

	res := h.PlugOn(context.Background(), device.NathanOutlet)
	if res.OK || res.Error != "devices not exist" {
		t.Errorf("PlugOn() = %+v, want vendor message", res)
	}
}

func TestDaughterSignal_Success(t *testing.T) {
	ctrl := &MockController{}
	h, d := newTestHandlers(ctrl)

	res := h.DaughterSignal(context.Background(), device.ColorRed)
	if !res.OK {
		t.Fatalf("DaughterSignal() = %+v, want ok", res)
	}

	calls := ctrl.Calls()
	if len(calls) != 3 {
		t.Fatalf("calls = %d, want 3 (outlet on, bulb on, bulb colour)", len(calls))
	}
	if calls[0].DeviceID != deviceID(t, device.DaughterOutlet) || calls[0].Capability != govee.PowerSwitch(true) {
		t.Errorf("call[0] = %+v, want outlet on", calls[0])
	}
	bulb := deviceID(t, device.DaughterBulb)
	if calls[1].DeviceID != bulb || calls[1].Capability != govee.PowerSwitch(true) {
		t.Errorf("call[1] = %+v, want bulb on", calls[1])
	}
	if calls[2].DeviceID != bulb || calls[2].Capability != govee.ColorRGB(16711680) {
		t.Errorf("call[2] = %+v, want bulb red", calls[2])
	}

	if len(d.waits) != 1 || d.waits[0] != 10*time.Second {
		t.Errorf("waits = %v, want [10s]", d.waits)
	}
	if d.callsBefore[0] != 1 {
		t.Errorf("wait started after %d calls, want 1", d.callsBefore[0])
	}
}

func TestDaughterSignal_OutletFailureSkipsBulb(t *testing.T) {
	ctrl := &MockController{failOn: map[int]error{1: &govee.APIError{Code: 500, Message: "offline"}}}
	h, d := newTestHandlers(ctrl)

	res := h.DaughterSignal(context.Background(), device.ColorBlue)
	if res.OK || res.Error != "Failed to turn on outlet: offline" {
		t.Errorf("DaughterSignal() = %+v", res)
	}
	if n := len(ctrl.Calls()); n != 1 {
		t.Errorf("calls = %d, want 1", n)
	}
	if len(d.waits) != 0 {
		t.Errorf("waited %v after outlet failure", d.waits)
	}
}

func TestDaughterSignal_BulbFailure(t *testing.T) {
	tests := []struct {
		name      string
		failCall  int
		wantCalls int
	}{
		{"bulb power-on fails", 2, 2},
		{"bulb colour fails", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := &MockController{failOn: map[int]error{tt.failCall: &govee.APIError{Code: 400, Message: "busy"}}}
			h, _ := newTestHandlers(ctrl)

			res := h.DaughterSignal(context.Background(), device.ColorBlue)
			if res.OK || res.Error != "Failed to set bulb: busy" {
				t.Errorf("DaughterSignal() = %+v", res)
			}
			if n := len(ctrl.Calls()); n != tt.wantCalls {
				t.Errorf("calls = %d, want %d", n, tt.wantCalls)
			}
		})
	}
}

func TestDaughterSignal_InvalidColor(t *testing.T) {
	ctrl := &MockController{}
	h, _ := newTestHandlers(ctrl)

	res := h.DaughterSignal(context.Background(), "green")
	if res.OK || res.Error != "Invalid color: green. Must be 'red' or 'blue'." {
		t.Errorf("DaughterSignal(green) = %+v", res)
	}
	if n := len(ctrl.Calls()); n != 0 {
		t.Errorf("calls = %d, want 0", n)
	}
}

func TestAllOff(t *testing.T) {
	ctrl := &MockController{}
	h, _ := newTestHandlers(ctrl)

	for i := 0; i < 2; i++ {
		res := h.AllOff(context.Background())
		if res != Success() {
			t.Fatalf("AllOff() run %d = %+v, want ok", i+1, res)
		}
	}

	calls := ctrl.Calls()
	if len(calls) != 10 {
		t.Fatalf("calls = %d, want 10", len(calls))
	}
	for i, name := range device.DefaultRegistry().Names() {
		if calls[i].DeviceID != deviceID(t, name) || calls[i].Capability != govee.PowerSwitch(false) {
			t.Errorf("call[%d] = %+v, want %s off", i, calls[i], name)
		}
	}
}

func TestAllOff_PartialFailure(t *testing.T) {
	fail := errors.New("unreachable")
	ctrl := &MockController{failOn: map[int]error{1: fail, 3: fail, 5: fail}}
	h, _ := newTestHandlers(ctrl)

	res := h.AllOff(context.Background())
	if res.OK {
		t.Fatal("AllOff() ok with failures")
	}
	if n := len(ctrl.Calls()); n != 5 {
		t.Errorf("calls = %d, want 5", n)
	}

	want := "nathan_outlet: unreachable; grandparents_outlet: unreachable; daughter_bulb: unreachable"
	if res.Error != want {
		t.Errorf("Error = %q, want %q", res.Error, want)
	}
	if strings.Contains(res.Error, device.GirlfriendOutlet) {
		t.Error("succeeding device named in error")
	}
}

func TestTimerDelayer(t *testing.T) {
	start := time.Now()
	TimerDelayer{}.Wait(20 * time.Millisecond)
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("Wait returned after %v, want >= 20ms", elapsed)
	}
}
