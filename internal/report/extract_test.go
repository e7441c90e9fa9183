package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"yolink-cli/pkg/models"
)

func stateFromJSON(t *testing.T, raw string) models.DeviceState {
	t.Helper()
	var state models.DeviceState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		t.Fatalf("bad state fixture: %v", err)
	}
	return state
}

func TestModelFromAppEUI(t *testing.T) {
	tests := []struct {
		appEUI string
		want   string
	}{
		{"d88b4c7804000000", "YS7804-UC"},
		{"d88b4c7706000000", "YS7706-UC"},
		{"short", "N/A"},
		{"", "N/A"},
		{"123456789", "N/A"}, // one short of the required ten
		{"1234567890", "YS7890-UC"},
	}
	for _, tt := range tests {
		if got := ModelFromAppEUI(tt.appEUI); got != tt.want {
			t.Errorf("ModelFromAppEUI(%q) = %q, want %q", tt.appEUI, got, tt.want)
		}
	}
}

func TestTypeLabel(t *testing.T) {
	tests := []struct {
		deviceType string
		model      string
		want       string
	}{
		{"MotionSensor", "YS7804-UC", "Motion sensor"},
		{"THSensor", "YS8003-UC", "Temperature sensor"},
		{"DoorSensor", "YS7707-UC", "Door sensor"},
		{"LeakSensor", "YS7903-UC", "Leak sensor"},
		{"Hub", "N/A", "Hub"}, // unknown types pass through
		{"DoorSensor", "YS7706-UC", "Garage door sensor"},
		{"MotionSensor", "YS7706-UC", "Garage door sensor"}, // model override wins over type
	}
	for _, tt := range tests {
		if got := TypeLabel(tt.deviceType, tt.model); got != tt.want {
			t.Errorf("TypeLabel(%q, %q) = %q, want %q", tt.deviceType, tt.model, got, tt.want)
		}
	}
}

func TestBatteryPercent(t *testing.T) {
	want := map[float64]string{0: "0%", 1: "25%", 2: "50%", 3: "75%", 4: "100%"}
	for level, expected := range want {
		if got := batteryPercent(level); got != expected {
			t.Errorf("batteryPercent(%v) = %q, want %q", level, got, expected)
		}
	}

	// out-of-range levels go through the same formula unclamped
	if got := batteryPercent(6); got != "150%" {
		t.Errorf("batteryPercent(6) = %q, want %q", got, "150%")
	}
}

func TestBatteryCell(t *testing.T) {
	if got := BatteryCell(stateFromJSON(t, `{"battery":3}`)); got != "75%" {
		t.Errorf("BatteryCell = %q, want 75%%", got)
	}
	if got := BatteryCell(stateFromJSON(t, `{"state":"open"}`)); got != "N/A" {
		t.Errorf("BatteryCell without key = %q, want N/A", got)
	}
}

func TestTemperatureCell(t *testing.T) {
	tests := []struct {
		name       string
		state      string
		deviceType string
		want       string
	}{
		{"th sensor one decimal", `{"temperature":17.5}`, "THSensor", "  17.5C"},
		{"th sensor integral still one decimal", `{"temperature":17}`, "THSensor", "  17.0C"},
		{"other type integral", `{"devTemperature":17}`, "DoorSensor", "  17  C"},
		{"other type fractional", `{"devTemperature":17.5}`, "DoorSensor", "  17.5C"},
		{"devTemperature wins over temperature", `{"temperature":99,"devTemperature":21}`, "DoorSensor", "  21  C"},
		{"temp as last resort", `{"temp":30}`, "DoorSensor", "  30  C"},
		{"missing", `{"battery":4}`, "DoorSensor", "  N/A  "},
		{"negative", `{"devTemperature":-5}`, "DoorSensor", "  -5  C"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TemperatureCell(stateFromJSON(t, tt.state), tt.deviceType)
			if got != tt.want {
				t.Errorf("TemperatureCell = %q, want %q", got, tt.want)
			}
			if len(got) != tempWidth {
				t.Errorf("TemperatureCell width = %d, want %d", len(got), tempWidth)
			}
		})
	}
}

func TestTemperatureCellWidthContract(t *testing.T) {
	states := []string{
		`{"devTemperature":0}`,
		`{"devTemperature":-3.2}`,
		`{"temperature":100}`,
		`{}`,
	}
	for _, raw := range states {
		for _, typ := range []string{"THSensor", "MotionSensor", "DoorSensor"} {
			if got := TemperatureCell(stateFromJSON(t, raw), typ); len(got) != tempWidth {
				t.Errorf("TemperatureCell(%s, %s) = %q, width %d, want %d", raw, typ, got, len(got), tempWidth)
			}
		}
	}
}

func TestReportTimeCell(t *testing.T) {
	t.Run("valid instant", func(t *testing.T) {
		in := "2025-12-09T08:54:34.042Z"
		parsed, err := time.Parse(time.RFC3339, in)
		if err != nil {
			t.Fatalf("fixture: %v", err)
		}
		want := parsed.Local().Format(reportTimeLayout)

		got := ReportTimeCell(in)
		if len(got) != timeWidth {
			t.Fatalf("width = %d, want %d", len(got), timeWidth)
		}
		if strings.TrimSpace(got) != want {
			t.Errorf("ReportTimeCell = %q, want %q", strings.TrimSpace(got), want)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		got := strings.TrimSpace(ReportTimeCell("2025-12-09T08:54:34Z"))
		back, err := time.ParseInLocation(reportTimeLayout, got, time.Local)
		if err != nil {
			t.Fatalf("output does not re-parse: %v", err)
		}
		if again := back.Format(reportTimeLayout); again != got {
			t.Errorf("round trip = %q, want %q", again, got)
		}
	})

	t.Run("naive with fractional seconds", func(t *testing.T) {
		got := strings.TrimSpace(ReportTimeCell("2025-12-09T08:54:34.042"))
		if got != "2025-12-09 08:54:34" {
			t.Errorf("ReportTimeCell = %q, want %q", got, "2025-12-09 08:54:34")
		}
	})

	t.Run("naive without fraction", func(t *testing.T) {
		got := strings.TrimSpace(ReportTimeCell("2025-12-09T08:54:34"))
		if got != "2025-12-09 08:54:34" {
			t.Errorf("ReportTimeCell = %q, want %q", got, "2025-12-09 08:54:34")
		}
	})

	t.Run("malformed and missing", func(t *testing.T) {
		want := "        N/A        "
		for _, in := range []string{"", "yesterday", "2025-13-45T99:99:99Z"} {
			if got := ReportTimeCell(in); got != want {
				t.Errorf("ReportTimeCell(%q) = %q, want %q", in, got, want)
			}
		}
	})
}

func TestSummarizeStateMotion(t *testing.T) {
	t.Run("alert with extras", func(t *testing.T) {
		s := SummarizeState("MotionSensor", stateFromJSON(t, `{"state":"alert","nomotionDelay":30,"sensitivity":2}`))
		if s.State != "motion detected" {
			t.Errorf("State = %q, want %q", s.State, "motion detected")
		}
		if s.NoMotionDelay != "30" {
			t.Errorf("NoMotionDelay = %q, want %q", s.NoMotionDelay, "30")
		}
		if s.Sensitivity != "2" {
			t.Errorf("Sensitivity = %q, want %q", s.Sensitivity, "2")
		}
	})

	t.Run("normal and off read as no motion", func(t *testing.T) {
		for _, raw := range []string{"normal", "off"} {
			s := SummarizeState("MotionSensor", stateFromJSON(t, `{"state":"`+raw+`"}`))
			if s.State != "no motion" {
				t.Errorf("State for %q = %q, want %q", raw, s.State, "no motion")
			}
		}
	})

	t.Run("unrecognized passes through lower-cased", func(t *testing.T) {
		s := SummarizeState("MotionSensor", stateFromJSON(t, `{"state":"Tampered"}`))
		if s.State != "tampered" {
			t.Errorf("State = %q, want %q", s.State, "tampered")
		}
	})

	t.Run("extras default when absent", func(t *testing.T) {
		s := SummarizeState("MotionSensor", stateFromJSON(t, `{"state":"alert"}`))
		if s.NoMotionDelay != "N/A" || s.Sensitivity != "N/A" {
			t.Errorf("extras = %q/%q, want N/A/N/A", s.NoMotionDelay, s.Sensitivity)
		}
	})
}

func TestSummarizeStateLeak(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"alert", "wet"},
		{"normal", "dry"},
		{"off", "dry"},
		{"Full", "full"},
	}
	for _, tt := range tests {
		s := SummarizeState("LeakSensor", stateFromJSON(t, `{"state":"`+tt.raw+`"}`))
		if s.State != tt.want {
			t.Errorf("leak state %q = %q, want %q", tt.raw, s.State, tt.want)
		}
	}
}

func TestSummarizeStateGeneric(t *testing.T) {
	t.Run("state key lower-cased and truncated", func(t *testing.T) {
		s := SummarizeState("DoorSensor", stateFromJSON(t, `{"state":"Open"}`))
		if s.State != "open" {
			t.Errorf("State = %q, want %q", s.State, "open")
		}

		long := strings.Repeat("A", 30)
		s = SummarizeState("DoorSensor", stateFromJSON(t, `{"state":"`+long+`"}`))
		if s.State != strings.Repeat("a", 20) {
			t.Errorf("State = %q, want 20 a's", s.State)
		}
	})

	t.Run("fallback uses first key in wire order", func(t *testing.T) {
		s := SummarizeState("Hub", stateFromJSON(t, `{"wifi":"connected","ethernet":"down"}`))
		if s.State != "wifi: connected" {
			t.Errorf("State = %q, want %q", s.State, "wifi: connected")
		}
	})

	t.Run("fallback truncates the value to fifteen", func(t *testing.T) {
		long := strings.Repeat("B", 25)
		s := SummarizeState("Hub", stateFromJSON(t, `{"note":"`+long+`"}`))
		if s.State != "note: "+strings.Repeat("b", 15) {
			t.Errorf("State = %q", s.State)
		}
	})

	t.Run("truncation counts characters, not bytes", func(t *testing.T) {
		s := SummarizeState("Hub", stateFromJSON(t, `{"state":"a`+strings.Repeat("セ", 20)+`"}`))
		want := "a" + strings.Repeat("セ", 19)
		if s.State != want {
			t.Errorf("State = %q, want %q", s.State, want)
		}
		if !utf8.ValidString(s.State) {
			t.Errorf("State is not valid UTF-8: %q", s.State)
		}
	})

	t.Run("no properties at all", func(t *testing.T) {
		s := SummarizeState("Hub", stateFromJSON(t, `{}`))
		if s.State != "N/A" {
			t.Errorf("State = %q, want N/A", s.State)
		}
	})
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{float64(30), "30"},
		{float64(2.5), "2.5"},
		{"abc", "abc"},
		{true, "true"},
		{nil, "null"},
	}
	for _, tt := range tests {
		if got := stringify(tt.in); got != tt.want {
			t.Errorf("stringify(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCenter(t *testing.T) {
	if got := center("N/A", 7); got != "  N/A  " {
		t.Errorf("center(N/A, 7) = %q", got)
	}
	if got := center("ab", 7); got != "  ab   " {
		t.Errorf("center(ab, 7) = %q", got) // odd leftover goes right
	}
	if got := center("too wide for it", 7); got != "too wide for it" {
		t.Errorf("center over width = %q", got)
	}
	if got := center("7", 1); got != "7" {
		t.Errorf("center exact fit = %q", got)
	}
	if got := center("セセセ", 7); got != "  セセセ  " {
		t.Errorf("center multibyte = %q, padding must count characters", got)
	}
}
