package diag

import "testing"

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SevInfo, "INFO"},
		{SevWarning, "WARNING"},
		{SevError, "ERROR"},
		{Severity(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("Expected %q for severity %d, got %q", tt.want, tt.sev, got)
		}
	}
}

func TestSeverityOrdering(t *testing.T) {
	if !(SevInfo < SevWarning && SevWarning < SevError) {
		t.Error("Expected severities to order info < warning < error")
	}
}
