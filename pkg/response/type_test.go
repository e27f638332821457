package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"edubot/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	// Local() makes the exact value runner-dependent; check the shape only.
	str := string(b)
	if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
		t.Errorf("expected string JSON format, got %s", str)
	}
	if len(str) != len(`"2024-05-01 15:30:00"`) {
		t.Errorf("unexpected DateTime layout: %s", str)
	}
}
