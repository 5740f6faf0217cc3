package handlers

import (
	"testing"
	"time"
)

func TestValidTime(t *testing.T) {
	valid := []string{"00:00", "09:05", "23:59", "14:30"}
	for _, s := range valid {
		if !ValidTime(s) {
			t.Errorf("ValidTime(%q) = false, want true", s)
		}
	}
	// Hours without the leading zero would break lexicographic time order,
	// so they are rejected rather than stored verbatim.
	invalid := []string{"", "9:05", "24:00", "12:60", "noon", "7pm", "12:5", "1230"}
	for _, s := range invalid {
		if ValidTime(s) {
			t.Errorf("ValidTime(%q) = true, want false", s)
		}
	}
}

func TestValidTaskTypeAndStatus(t *testing.T) {
	for _, s := range []string{"Meeting", "Call", "Video Call"} {
		if !ValidTaskType(s) {
			t.Errorf("ValidTaskType(%q) = false", s)
		}
	}
	if ValidTaskType("Email") || ValidTaskType("call") {
		t.Error("unknown task types should be rejected")
	}

	if !ValidStatus("Open") || !ValidStatus("Closed") {
		t.Error("known statuses should be accepted")
	}
	if ValidStatus("Done") || ValidStatus("open") {
		t.Error("unknown statuses should be rejected")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-03")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := time.Time(d).Format("2006-01-02"); got != "2026-08-03" {
		t.Errorf("round trip = %q", got)
	}

	if _, err := ParseDate("03/08/2026"); err == nil {
		t.Error("slash dates should be rejected")
	}
}

func TestNormalizePriority(t *testing.T) {
	cases := map[string]string{
		"High":    "High",
		"H":       "High",
		"LOW":     "Low",
		"Medium":  "Medium",
		"":        "Medium",
		"urgent?": "Medium",
	}
	for in, want := range cases {
		if got := NormalizePriority(in); got != want {
			t.Errorf("NormalizePriority(%q) = %q, want %q", in, got, want)
		}
	}
}
