package component

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// fake records lifecycle calls into a shared journal.
type fake struct {
	name     string
	startErr error
	stopErr  error
	health   Health
	journal  *[]string
}

func (f *fake) Name() string { return f.name }

func (f *fake) Start(context.Context) error {
	f.note("start:" + f.name)
	return f.startErr
}

func (f *fake) Stop(context.Context) error {
	f.note("stop:" + f.name)
	return f.stopErr
}

func (f *fake) Health(context.Context) Health { return f.health }

func (f *fake) note(event string) {
	if f.journal != nil {
		*f.journal = append(*f.journal, event)
	}
}

func registry(t *testing.T, comps ...*fake) *Registry {
	t.Helper()
	r := NewRegistry()
	for _, c := range comps {
		if err := r.Register(c); err != nil {
			t.Fatalf("Register(%s): %v", c.name, err)
		}
	}
	return r
}

func TestRegisterAndGet(t *testing.T) {
	r := registry(t, &fake{name: "site"})
	if got := r.Get("site"); got == nil || got.Name() != "site" {
		t.Errorf("expected site back, got %v", got)
	}
	if r.Get("missing") != nil {
		t.Error("expected nil for unregistered component")
	}
}

func TestRegisterRejects(t *testing.T) {
	r := registry(t, &fake{name: "site"})
	tests := map[string]Component{
		"duplicate": &fake{name: "site"},
		"no name":   &fake{},
		"nil":       nil,
	}
	for name, c := range tests {
		t.Run(name, func(t *testing.T) {
			if err := r.Register(c); err == nil {
				t.Error("expected error")
			}
		})
	}
	if n := len(r.All()); n != 1 {
		t.Errorf("expected a single registered component, got %d", n)
	}
}

func TestLifecycleOrder(t *testing.T) {
	var journal []string
	r := registry(t,
		&fake{name: "telemetry", journal: &journal},
		&fake{name: "blockchain", journal: &journal},
		&fake{name: "http-server", journal: &journal},
	)

	if err := r.StartAll(context.Background()); err != nil {
		t.Fatalf("StartAll: %v", err)
	}
	if err := r.StartAll(context.Background()); err != nil {
		t.Fatalf("second StartAll: %v", err)
	}
	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll: %v", err)
	}

	want := "start:telemetry,start:blockchain,start:http-server,stop:http-server,stop:blockchain,stop:telemetry"
	if got := strings.Join(journal, ","); got != want {
		t.Errorf("journal = %s\nwant      %s", got, want)
	}
}

// draining reads registry health from another goroutine while it stops,
// the way an HTTP server drains an in-flight health request.
type draining struct {
	fake
	reg *Registry
}

func (d *draining) Stop(ctx context.Context) error {
	done := make(chan []Health, 1)
	go func() { done <- d.reg.HealthAll(ctx) }()
	select {
	case hs := <-done:
		if len(hs) != 2 {
			return errors.New("incomplete health report")
		}
		return nil
	case <-time.After(2 * time.Second):
		return errors.New("health blocked during stop")
	}
}

func TestHealthAllDuringStopAll(t *testing.T) {
	r := registry(t, &fake{name: "blockchain"})
	server := &draining{fake: fake{name: "http-server"}, reg: r}
	if err := r.Register(server); err != nil {
		t.Fatal(err)
	}
	if err := r.StartAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll: %v", err)
	}
}

func TestStopAllSkipsUnstarted(t *testing.T) {
	var journal []string
	r := registry(t, &fake{name: "site", journal: &journal})
	if err := r.StopAll(context.Background()); err != nil {
		t.Fatalf("StopAll: %v", err)
	}
	if len(journal) != 0 {
		t.Errorf("expected no calls, got %v", journal)
	}
}

func TestStartAllStopsAtFirstFailure(t *testing.T) {
	var journal []string
	r := registry(t,
		&fake{name: "telemetry", journal: &journal},
		&fake{name: "blockchain", journal: &journal, startErr: errors.New("bad rpc")},
		&fake{name: "http-server", journal: &journal},
	)

	err := r.StartAll(context.Background())
	if err == nil || !strings.Contains(err.Error(), "start blockchain: bad rpc") {
		t.Fatalf("expected wrapped start error, got %v", err)
	}
	_ = r.StopAll(context.Background())

	want := "start:telemetry,start:blockchain,stop:telemetry"
	if got := strings.Join(journal, ","); got != want {
		t.Errorf("journal = %s, want %s", got, want)
	}
}

func TestStopAllJoinsErrors(t *testing.T) {
	r := registry(t,
		&fake{name: "a", stopErr: errors.New("stuck")},
		&fake{name: "b", stopErr: errors.New("timeout")},
	)
	_ = r.StartAll(context.Background())

	err := r.StopAll(context.Background())
	if err == nil {
		t.Fatal("expected stop error")
	}
	for _, want := range []string{"stop a: stuck", "stop b: timeout"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}
	if err := r.StopAll(context.Background()); err != nil {
		t.Errorf("expected nothing left to stop, got %v", err)
	}
}

func TestHealthAll(t *testing.T) {
	r := registry(t,
		&fake{name: "site", health: Health{Name: "site", Status: StatusHealthy}},
		&fake{name: "blockchain", health: Health{Name: "blockchain", Status: StatusDegraded, Message: "no contract configured"}},
		&fake{name: "anonymous", health: Health{Status: StatusUnhealthy}},
	)

	results := r.HealthAll(context.Background())
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[1].Status != StatusDegraded || results[1].Message == "" {
		t.Errorf("unexpected blockchain result %+v", results[1])
	}
	if results[2].Name != "anonymous" {
		t.Errorf("expected nameless result to take the component name, got %q", results[2].Name)
	}
}

func TestOverall(t *testing.T) {
	tests := []struct {
		name    string
		results []Health
		want    HealthStatus
	}{
		{"empty", nil, StatusHealthy},
		{"all healthy", []Health{{Status: StatusHealthy}, {Status: StatusHealthy}}, StatusHealthy},
		{"degraded", []Health{{Status: StatusHealthy}, {Status: StatusDegraded}}, StatusDegraded},
		{"unhealthy wins", []Health{{Status: StatusDegraded}, {Status: StatusUnhealthy}}, StatusUnhealthy},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overall(tc.results); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
