package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorMapper(t *testing.T) {
	errNotFound := errors.New("thing not found")
	mapper := NewErrorMapper().
		WithMapping(errNotFound, http.StatusNotFound, "not found").
		WithDefault(http.StatusBadGateway, "upstream broke")

	if info := mapper.Map(nil); info.Status != http.StatusOK {
		t.Fatalf("nil error: expected 200, got %d", info.Status)
	}
	if info := mapper.Map(fmt.Errorf("lookup: %w", errNotFound)); info.Status != http.StatusNotFound {
		t.Fatalf("wrapped error: expected 404, got %d", info.Status)
	}
	if info := mapper.Map(errors.New("mystery")); info.Status != http.StatusBadGateway || info.Message != "upstream broke" {
		t.Fatalf("unexpected default mapping: %+v", info)
	}
	if info := mapper.Map(context.DeadlineExceeded); info.Status != http.StatusGatewayTimeout {
		t.Fatalf("deadline: expected 504, got %d", info.Status)
	}
	if info := mapper.Map(context.Canceled); info.Status != http.StatusServiceUnavailable {
		t.Fatalf("cancel: expected 503, got %d", info.Status)
	}
}
