package events

import (
	"errors"
	"testing"
)

// mockRetryPublisher fails until a given attempt number
type mockRetryPublisher struct {
	sendAttempts int
	failUntil    int // Fail until this attempt number (0-indexed)
	lastEvent    Event
}

func (m *mockRetryPublisher) SendEvent(event Event) error {
	m.lastEvent = event
	currentAttempt := m.sendAttempts
	m.sendAttempts++

	if currentAttempt < m.failUntil {
		return errors.New("simulated send failure")
	}
	return nil
}

func TestPublishWithRetry_Success(t *testing.T) {
	mock := &mockRetryPublisher{failUntil: 0}
	event := Event{Type: EventCompaniesChanged, UserID: "user-1"}

	if err := PublishWithRetry(mock, event, 3); err != nil {
		t.Errorf("Expected success, got error: %v", err)
	}
	if mock.sendAttempts != 1 {
		t.Errorf("Expected 1 attempt, got %d", mock.sendAttempts)
	}
	if mock.lastEvent.UserID != "user-1" {
		t.Errorf("Expected event user user-1, got %q", mock.lastEvent.UserID)
	}
}

func TestPublishWithRetry_SuccessAfterRetries(t *testing.T) {
	// Fail first 2 attempts, succeed on 3rd
	mock := &mockRetryPublisher{failUntil: 2}

	if err := PublishWithRetry(mock, Event{Type: EventCompaniesChanged}, 3); err != nil {
		t.Errorf("Expected success after retries, got error: %v", err)
	}
	if mock.sendAttempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", mock.sendAttempts)
	}
}

func TestPublishWithRetry_FailureAfterAllRetries(t *testing.T) {
	mock := &mockRetryPublisher{failUntil: 999}

	err := PublishWithRetry(mock, Event{Type: EventSettingsChanged}, 3)
	if err == nil {
		t.Fatal("Expected error after all retries failed, got nil")
	}
	if mock.sendAttempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", mock.sendAttempts)
	}
	if err.Error() != "simulated send failure" {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestPublishWithRetry_NilClient(t *testing.T) {
	if err := PublishWithRetry(nil, Event{Type: EventCompaniesChanged}, 3); err != nil {
		t.Errorf("Expected nil error for nil client, got: %v", err)
	}
}

func TestPublishWithRetry_ZeroRetries(t *testing.T) {
	mock := &mockRetryPublisher{failUntil: 999}

	if err := PublishWithRetry(mock, Event{Type: EventCompaniesChanged}, 0); err != nil {
		t.Errorf("Expected nil error with 0 retries (no attempts), got: %v", err)
	}
	if mock.sendAttempts != 0 {
		t.Errorf("Expected 0 attempts with maxRetries=0, got %d", mock.sendAttempts)
	}
}
