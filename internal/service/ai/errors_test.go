package ai

import (
	"errors"
	"testing"
)

func TestClassifyProviderErrorQuota(t *testing.T) {
	cases := []string{
		"You exceeded your current quota, please check your plan and billing details",
		"insufficient_quota: account limit reached",
		"request failed with status 429",
	}

	for _, msg := range cases {
		err := classifyProviderError(errors.New(msg))
		if !errors.Is(err, ErrQuotaExceeded) {
			t.Fatalf("%q: expected ErrQuotaExceeded, got %v", msg, err)
		}
	}
}

func TestClassifyProviderErrorGeneric(t *testing.T) {
	err := classifyProviderError(errors.New("context deadline exceeded"))
	if !errors.Is(err, ErrProviderFailure) {
		t.Fatalf("expected ErrProviderFailure, got %v", err)
	}
	if errors.Is(err, ErrQuotaExceeded) {
		t.Fatal("generic failure must not classify as quota")
	}
}
