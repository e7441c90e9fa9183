package models

import "encoding/json"

// Envelope is the outer {code, desc, data} wrapper common to every hub
// response. Data is kept raw because its shape depends on the method called.
type Envelope struct {
	Code string          `json:"code"`
	Desc string          `json:"desc"`
	Data json.RawMessage `json:"data"`
}

// Device is a single catalog entry returned by Home.getDeviceList.
// The token authorizes state calls for this device only.
type Device struct {
	DeviceID string `json:"deviceId"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Token    string `json:"token"`
	AppEUI   string `json:"appEui"`
}

// DeviceListData is the data payload of Home.getDeviceList.
type DeviceListData struct {
	Devices []Device `json:"devices"`
}

// StateData is the data payload of a <Type>.getState response.
type StateData struct {
	State    DeviceState `json:"state"`
	ReportAt string      `json:"reportAt"`
}
