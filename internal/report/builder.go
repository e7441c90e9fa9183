package report

import (
	"encoding/json"

	"go.uber.org/zap"

	"yolink-cli/pkg/models"
)

// StateFetcher is the slice of the hub client the builder needs.
type StateFetcher interface {
	GetDeviceState(dev models.Device) (*models.StateData, []byte, error)
}

// Builder turns catalog entries into table rows, one state call per device,
// strictly in catalog order.
type Builder struct {
	Client StateFetcher
	Log    *zap.SugaredLogger
}

// DeviceDump pairs one device with its raw getState response, for the
// optional JSON section after the table.
type DeviceDump struct {
	DeviceID string
	Name     string
	Raw      json.RawMessage
}

// Build enriches every catalog entry with live state. A failed state call
// degrades that device's row to N/A fields instead of failing the batch;
// devices without a token skip the call entirely.
func (b *Builder) Build(devices []models.Device) ([]Row, []DeviceDump) {
	rows := make([]Row, 0, len(devices))
	var dumps []DeviceDump

	for _, dev := range devices {
		var data *models.StateData
		if dev.Token != "" {
			fetched, raw, err := b.Client.GetDeviceState(dev)
			if len(raw) > 0 {
				dumps = append(dumps, DeviceDump{
					DeviceID: dev.DeviceID,
					Name:     dev.Name,
					Raw:      json.RawMessage(raw),
				})
			}
			if err != nil {
				b.Log.Warnf("could not fetch state for %s: %v", dev.DeviceID, err)
			} else {
				data = fetched
			}
		}
		rows = append(rows, BuildRow(dev, data))
	}
	return rows, dumps
}
