package backend

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/mmgen/minutes-console/internal/core/domain"
	"github.com/mmgen/minutes-console/internal/infrastructure/resilience"
)

// classifyBackendError decides which failures count against the circuit.
// Client-side rejections (4xx) are the user's problem, not the backend's.
func classifyBackendError(err error) resilience.ErrorClassification {
	if err == nil {
		return resilience.ErrorClassification{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.ErrorClassification{RecordFailure: false}
	}

	var statusErr *domain.StatusError
	if errors.As(err, &statusErr) {
		return resilience.ErrorClassification{
			RecordFailure: isBackendFault(statusErr.StatusCode),
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return resilience.ErrorClassification{RecordFailure: true}
	}

	return resilience.ErrorClassification{RecordFailure: true}
}

func wrapTemporaryIfNeeded(operation string, err error) error {
	if err == nil {
		return nil
	}
	if domain.IsKind(err, domain.ErrTemporary) {
		return err
	}
	if resilience.IsCircuitOpen(err) {
		return domain.WrapError(domain.ErrTemporary, operation, err)
	}

	var statusErr *domain.StatusError
	if errors.As(err, &statusErr) {
		// Kept unwrapped so the session can read status code and detail.
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return domain.WrapError(domain.ErrTemporary, operation, err)
	}
	return err
}

func isBackendFault(statusCode int) bool {
	switch statusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
