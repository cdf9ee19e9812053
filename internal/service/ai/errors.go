package ai

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrQuotaExceeded marks provider-side usage-limit or billing exhaustion,
	// surfaced distinctly so the UI can explain it.
	ErrQuotaExceeded = errors.New("provider quota exceeded")
	// ErrProviderFailure covers any other provider-side failure: timeout,
	// malformed response, network.
	ErrProviderFailure = errors.New("provider request failed")
)

// quotaMarkers are the substrings providers use to report exhausted usage
// limits in error bodies.
var quotaMarkers = []string{
	"quota",
	"insufficient_quota",
	"billing",
	"usage limit",
	"429",
}

// classifyProviderError folds a raw provider error into the gateway's
// failure taxonomy, preserving the original message.
func classifyProviderError(err error) error {
	lower := strings.ToLower(err.Error())
	for _, marker := range quotaMarkers {
		if strings.Contains(lower, marker) {
			return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrProviderFailure, err)
}
