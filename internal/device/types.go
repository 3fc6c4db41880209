package device

import "time"

// Form field names shared by the sanitizer, validator, and HTTP handlers.
// These match the field names of the external request payloads.
const (
	FieldDeviceTypeName    = "deviceTypeName"
	FieldCustomName        = "customName"
	FieldOnOff             = "onOff"
	FieldTemperature       = "temperature"
	FieldVolume            = "volume"
	FieldBatteriesIncluded = "batteriesIncluded"
	FieldOpenClosed        = "openClosed"
)

// RequiredFields are always present after sanitization, even when empty.
var RequiredFields = []string{FieldDeviceTypeName, FieldCustomName}

// OptionalFields are absent (nil) when not applicable to a device's category.
var OptionalFields = []string{
	FieldOnOff,
	FieldTemperature,
	FieldVolume,
	FieldBatteriesIncluded,
	FieldOpenClosed,
}

// Fields maps a field name to its raw string value.
// A nil value (or a missing key) means the field is absent.
type Fields map[string]*string

// Value returns the field's value and whether it is present.
func (f Fields) Value(name string) (string, bool) {
	p, ok := f[name]
	if !ok || p == nil {
		return "", false
	}
	return *p, true
}

// Set stores a present value for the field.
func (f Fields) Set(name, value string) {
	f[name] = &value
}

// DeviceType is the parent record: a device's category name and its status
// fields. A nil status field is stored as NULL and means the field is not
// applicable to this device's category, never a sentinel value.
// This matches the database schema in migrations/20260301_120000_initial_schema.up.sql.
type DeviceType struct {
	ID                int64  `json:"id"`
	Name              string `json:"deviceTypeName"`
	OnOff             *int64 `json:"onOff,omitempty"`
	Temperature       *int64 `json:"temperature,omitempty"`
	Volume            *int64 `json:"volume,omitempty"`
	BatteriesIncluded *int64 `json:"batteriesIncluded,omitempty"`
	OpenClosed        *int64 `json:"openClosed,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DeviceName is the dependent record holding the user-chosen label.
// Every DeviceName belongs to exactly one DeviceType; deleting the type
// cascades to the name.
type DeviceName struct {
	ID           int64  `json:"id"`
	CustomName   string `json:"customName"`
	DeviceTypeID int64  `json:"deviceTypeId"`
}

// Record is one logical device as the dashboard sees it: a DeviceType
// outer-joined with its DeviceName. Name is nil only for a type row whose
// name row is missing, which normally happens just inside the create
// transaction.
type Record struct {
	Type DeviceType  `json:"type"`
	Name *DeviceName `json:"name,omitempty"`
}

// CustomName returns the record's label, or "" when no name row exists.
func (r *Record) CustomName() string {
	if r.Name == nil {
		return ""
	}
	return r.Name.CustomName
}
