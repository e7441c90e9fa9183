package report

import "yolink-cli/pkg/models"

// Row is one fully formatted table line. Field order mirrors the header;
// every field is non-empty, with N/A standing in for anything unknown.
type Row struct {
	Type          string
	Name          string
	DeviceID      string
	Model         string
	Battery       string
	Temp          string
	LastContact   string
	NoMotionDelay string
	Sensitivity   string
	State         string
	Version       string
}

// BuildRow assembles the row for one device. data is nil when the device has
// no token or its state call failed; every state-derived field then keeps
// its N/A default.
func BuildRow(dev models.Device, data *models.StateData) Row {
	model := ModelFromAppEUI(dev.AppEUI)
	row := Row{
		Type:          TypeLabel(orNA(dev.Type), model),
		Name:          orNA(dev.Name),
		DeviceID:      orNA(dev.DeviceID),
		Model:         model,
		Battery:       notAvailable,
		Temp:          center(notAvailable, tempWidth),
		LastContact:   center(notAvailable, timeWidth),
		NoMotionDelay: notAvailable,
		Sensitivity:   notAvailable,
		State:         notAvailable,
		Version:       notAvailable,
	}
	if data == nil {
		return row
	}

	row.LastContact = ReportTimeCell(data.ReportAt)

	state := data.State
	if state.Len() == 0 {
		return row
	}

	row.Battery = BatteryCell(state)
	row.Temp = TemperatureCell(state, dev.Type)
	row.Version = VersionCell(state)

	summary := SummarizeState(dev.Type, state)
	row.State = summary.State
	row.NoMotionDelay = summary.NoMotionDelay
	row.Sensitivity = summary.Sensitivity

	return row
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
