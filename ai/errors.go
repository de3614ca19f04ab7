// Copyright 2025 The Task Chat Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for model call failures. Callers match with errors.Is to
// decide between retrying, falling back to deterministic parsing, and
// surfacing the failure.
var (
	// ErrAuthFailed indicates the service rejected the credentials.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrRateLimited indicates the service refused the call due to rate limits.
	ErrRateLimited = errors.New("rate limited")

	// ErrContextLength indicates the prompt exceeded the model's context window.
	ErrContextLength = errors.New("context length exceeded")

	// ErrMalformedResponse indicates the model kept producing output that
	// could not be parsed, even after repair attempts.
	ErrMalformedResponse = errors.New("malformed model response")

	// ErrUnreachable indicates the service could not be reached at all.
	ErrUnreachable = errors.New("service unreachable")
)

// ClassifyError wraps a raw transport error with the matching sentinel so
// callers can branch on errors.Is without inspecting provider-specific
// strings themselves. Unrecognized errors come back unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "invalid api key") || strings.Contains(msg, "authentication"):
		return fmt.Errorf("%w: %s", ErrAuthFailed, err)
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "too many requests"):
		return fmt.Errorf("%w: %s", ErrRateLimited, err)
	case strings.Contains(msg, "context length") || strings.Contains(msg, "context_length") ||
		strings.Contains(msg, "maximum context"):
		return fmt.Errorf("%w: %s", ErrContextLength, err)
	case strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded") ||
		strings.Contains(msg, "connection reset"):
		return fmt.Errorf("%w: %s", ErrUnreachable, err)
	}
	return err
}
