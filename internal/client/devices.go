package client

import (
	"encoding/json"
	"fmt"

	"yolink-cli/pkg/models"
)

// GetDeviceList fetches the device catalog via Home.getDeviceList. A bad
// envelope here is fatal for the run; an empty catalog is not an error.
func (c *YoLinkClient) GetDeviceList() ([]models.Device, error) {
	env, _, err := c.Call(Request{Method: "Home.getDeviceList"})
	if err != nil {
		return nil, err
	}
	if err := EnvelopeError(env); err != nil {
		return nil, err
	}

	var data models.DeviceListData
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, fmt.Errorf("decode device list: %w", err)
		}
	}
	return data.Devices, nil
}

// GetDeviceState fetches live state for one device via <Type>.getState.
// The raw response body is returned even when the envelope signals failure
// so the caller can still include it in a JSON dump.
func (c *YoLinkClient) GetDeviceState(dev models.Device) (*models.StateData, []byte, error) {
	method := dev.Type + ".getState"

	env, raw, err := c.Call(Request{
		Method:       method,
		TargetDevice: dev.DeviceID,
		Token:        dev.Token,
		Params:       map[string]any{},
	})
	if err != nil {
		return nil, nil, err
	}
	if err := EnvelopeError(env); err != nil {
		return nil, raw, err
	}

	var data models.StateData
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, raw, fmt.Errorf("%s: decode state: %w", method, err)
		}
	}
	return &data, raw, nil
}
