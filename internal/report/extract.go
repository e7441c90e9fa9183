package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"yolink-cli/pkg/models"
)

const notAvailable = "N/A"

const (
	tempWidth = 7
	timeWidth = 19
)

// ModelFromAppEUI derives the YoLink model number from the appEui hex
// identifier, e.g. d88b4c7804000000 -> YS7804-UC.
func ModelFromAppEUI(appEUI string) string {
	if len(appEUI) < 10 {
		return notAvailable
	}
	return "YS" + appEUI[6:10] + "-UC"
}

// Garage door sensors report type DoorSensor and are only distinguishable
// by model number.
const garageDoorModel = "YS7706-UC"

var typeLabels = map[string]string{
	"MotionSensor": "Motion sensor",
	"THSensor":     "Temperature sensor",
	"DoorSensor":   "Door sensor",
	"LeakSensor":   "Leak sensor",
}

// TypeLabel maps a raw hub device type to its display name. Unknown types
// pass through unchanged.
func TypeLabel(deviceType, model string) string {
	if model == garageDoorModel {
		return "Garage door sensor"
	}
	if label, ok := typeLabels[deviceType]; ok {
		return label
	}
	return deviceType
}

// BatteryCell renders the battery column. The hub reports charge as an
// integer level from 0 to 4.
func BatteryCell(state models.DeviceState) string {
	v, ok := state.Get("battery")
	if !ok {
		return notAvailable
	}
	level, ok := asFloat(v)
	if !ok {
		return notAvailable
	}
	return batteryPercent(level)
}

// batteryPercent scales a 0-4 level to a percentage. Out-of-range levels go
// through the same formula unclamped.
func batteryPercent(level float64) string {
	return strconv.Itoa(int(math.Round(level/4*100))) + "%"
}

// temperatureKeys are probed in priority order; device firmware differs on
// which one it reports.
var temperatureKeys = []string{"devTemperature", "temperature", "temp"}

// TemperatureCell renders the probed temperature reading in a fixed
// 7-character cell so the unit symbol lines up across rows.
func TemperatureCell(state models.DeviceState, deviceType string) string {
	for _, key := range temperatureKeys {
		if v, ok := state.Get(key); ok {
			if f, ok := asFloat(v); ok {
				return formatTemperature(f, deviceType)
			}
		}
	}
	return center(notAvailable, tempWidth)
}

// formatTemperature lays out the value inside the 7-character contract.
// Temperature sensors always get one decimal; other device types report
// internal temperature as whole degrees unless the hub sends a fraction.
func formatTemperature(value float64, deviceType string) string {
	var s string
	switch {
	case deviceType == "THSensor":
		s = fmt.Sprintf("%5.1fC", value)
	case value == math.Trunc(value):
		s = fmt.Sprintf("%3d  C", int(value))
	default:
		s = fmt.Sprintf("%5.1fC", value)
	}
	return fmt.Sprintf("%*s", tempWidth, s)
}

const reportTimeLayout = "2006-01-02 15:04:05"

// ReportTimeCell converts the hub's ISO 8601 reportAt timestamp to local
// time, centered in a 19-character cell. Missing or unparseable input
// renders as N/A; this never fails.
func ReportTimeCell(reportAt string) string {
	if reportAt == "" {
		return center(notAvailable, timeWidth)
	}
	t, err := time.Parse(time.RFC3339, reportAt)
	if err != nil {
		// some firmwares omit the timezone; those stamps are local already,
		// with or without fractional seconds
		t, err = time.ParseInLocation("2006-01-02T15:04:05.999999999", reportAt, time.Local)
	}
	if err != nil {
		return center(notAvailable, timeWidth)
	}
	return center(t.Local().Format(reportTimeLayout), timeWidth)
}

// VersionCell passes the firmware version through verbatim.
func VersionCell(state models.DeviceState) string {
	if v, ok := state.Get("version"); ok {
		return stringify(v)
	}
	return notAvailable
}

// StateSummary holds the state-derived table fields for one device. The
// motion fields only apply to motion sensors and default to N/A elsewhere.
type StateSummary struct {
	State         string
	NoMotionDelay string
	Sensitivity   string
}

// SummarizeState renders the state column for one device. Dispatch is on
// the declared device type; every arm is total over any payload shape.
func SummarizeState(deviceType string, state models.DeviceState) StateSummary {
	switch deviceType {
	case "MotionSensor":
		return motionSummary(state)
	case "LeakSensor":
		return leakSummary(state)
	default:
		return genericSummary(state)
	}
}

func motionSummary(state models.DeviceState) StateSummary {
	s := emptySummary()
	switch raw := rawState(state); raw {
	case "alert":
		s.State = "motion detected"
	case "normal", "off":
		s.State = "no motion"
	default:
		s.State = strings.ToLower(raw)
	}
	if v, ok := state.Get("nomotionDelay"); ok {
		s.NoMotionDelay = stringify(v)
	}
	if v, ok := state.Get("sensitivity"); ok {
		s.Sensitivity = stringify(v)
	}
	return s
}

func leakSummary(state models.DeviceState) StateSummary {
	s := emptySummary()
	switch raw := rawState(state); raw {
	case "alert":
		s.State = "wet"
	case "normal", "off":
		s.State = "dry"
	default:
		s.State = strings.ToLower(raw)
	}
	return s
}

func genericSummary(state models.DeviceState) StateSummary {
	s := emptySummary()
	if v, ok := state.Get("state"); ok {
		s.State = strings.ToLower(truncate(stringify(v), 20))
		return s
	}
	if key, ok := state.FirstKey(); ok {
		v, _ := state.Get(key)
		s.State = strings.ToLower(key + ": " + truncate(stringify(v), 15))
	}
	return s
}

func emptySummary() StateSummary {
	return StateSummary{
		State:         notAvailable,
		NoMotionDelay: notAvailable,
		Sensitivity:   notAvailable,
	}
}

// rawState reads the "state" key as a string, defaulting to N/A. The default
// falls through the summary switches and gets lower-cased like any other
// unrecognized value.
func rawState(state models.DeviceState) string {
	if v, ok := state.Get("state"); ok {
		return stringify(v)
	}
	return notAvailable
}

// asFloat coerces the scalar shapes the hub sends for numeric fields.
func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// stringify renders a decoded JSON scalar for display. Integral floats drop
// the fraction so counters like nomotionDelay read as plain integers.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return "null"
	default:
		return fmt.Sprint(t)
	}
}

// truncate bounds s to n characters, not bytes, so multibyte state text is
// never cut mid-rune.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// center pads s to width characters, favoring the right side for odd
// leftovers. Strings already at or over width pass through untouched.
func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
