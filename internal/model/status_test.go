package model

import "testing"

func TestTaskStatusIsActive(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, false},
		{TaskStatusStarting, true},
		{TaskStatusDownloading, true},
		{TaskStatusExtracting, true},
		{TaskStatusStopping, true},
		{TaskStatusStopped, false},
		{TaskStatusCompleted, false},
		{TaskStatusError, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsActive(); got != tt.expected {
				t.Errorf("IsActive() for %s = %v, expected %v", tt.status, got, tt.expected)
			}
		})
	}
}

func TestTaskStatusIsFinished(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, false},
		{TaskStatusStarting, false},
		{TaskStatusDownloading, false},
		{TaskStatusExtracting, false},
		{TaskStatusStopping, false},
		{TaskStatusStopped, true},
		{TaskStatusCompleted, true},
		{TaskStatusError, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsFinished(); got != tt.expected {
				t.Errorf("IsFinished() for %s = %v, expected %v", tt.status, got, tt.expected)
			}
		})
	}
}

func TestTaskStatusString(t *testing.T) {
	if TaskStatusExtracting.String() != "Extracting" {
		t.Errorf("String() = %s, expected Extracting", TaskStatusExtracting.String())
	}
}
