package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
)

func TestClassify_RetryableCodes(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	retryable := []string{
		pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow,
	}

	for _, code := range retryable {
		if got := classifier.Classify(pgError(code)); got != Retryable {
			t.Errorf("code %s: expected Retryable, got %v", code, got)
		}
	}
}

func TestClassify_ConstraintViolationsAreNonRetryable(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	nonRetryable := []string{
		pgerrcode.UniqueViolation,
		pgerrcode.ForeignKeyViolation,
		pgerrcode.CheckViolation,
		pgerrcode.SyntaxError,
	}

	for _, code := range nonRetryable {
		if got := classifier.Classify(pgError(code)); got != NonRetryable {
			t.Errorf("code %s: expected NonRetryable, got %v", code, got)
		}
	}
}

func TestClassify_WrappedDriverError(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	wrapped := fmt.Errorf("%w: %w", ErrExecutingQuery, pgError(pgerrcode.DeadlockDetected))
	if got := classifier.Classify(wrapped); got != Retryable {
		t.Errorf("expected Retryable for wrapped deadlock, got %v", got)
	}
}

func TestClassify_NonPostgresError(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	if got := classifier.Classify(errors.New("dial tcp: i/o timeout")); got != NonRetryable {
		t.Errorf("expected NonRetryable for non-driver error, got %v", got)
	}
	if got := classifier.Classify(nil); got != NonRetryable {
		t.Errorf("expected NonRetryable for nil error, got %v", got)
	}
}

func TestErrorClassificationString(t *testing.T) {
	if Retryable.String() != "retryable" {
		t.Errorf("expected 'retryable', got %s", Retryable.String())
	}
	if NonRetryable.String() != "non_retryable" {
		t.Errorf("expected 'non_retryable', got %s", NonRetryable.String())
	}
}
