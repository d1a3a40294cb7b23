package config

import (
	"errors"
	"testing"
)

type appConfig struct {
	Name string
}

func TestInitializeRunsLoadOnceForType(t *testing.T) {
	calls := 0
	load := func() (appConfig, error) {
		calls++
		return appConfig{Name: "first"}, nil
	}

	if err := Initialize[appConfig](load); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Initialize[appConfig](load); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("load called %d times, want 1", calls)
	}

	got, err := Get[appConfig]()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "first" {
		t.Fatalf("got %#v", got)
	}
}

type otherConfig struct {
	Count int
}

func TestGetBeforeInitializeErrors(t *testing.T) {
	_, err := Get[otherConfig]()
	if err == nil {
		t.Fatalf("expected an error when Initialize was never called")
	}
}

func TestSetConfigBypassesInitialize(t *testing.T) {
	SetConfig(otherConfig{Count: 7})
	got, err := Get[otherConfig]()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Count != 7 {
		t.Fatalf("got %#v", got)
	}
}

func TestReloadConfigReplacesStoredValue(t *testing.T) {
	SetConfig(otherConfig{Count: 1})
	if err := ReloadConfig(func() (otherConfig, error) { return otherConfig{Count: 2}, nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := MustGet[otherConfig]()
	if got.Count != 2 {
		t.Fatalf("got %#v", got)
	}
}

func TestReloadConfigPropagatesError(t *testing.T) {
	SetConfig(otherConfig{Count: 5})
	boom := errors.New("boom")
	err := ReloadConfig(func() (otherConfig, error) { return otherConfig{}, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want boom", err)
	}
	if _, err := Get[otherConfig](); !errors.Is(err, boom) {
		t.Fatalf("Get should surface the reload error, got %v", err)
	}
}
