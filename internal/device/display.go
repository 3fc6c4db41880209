package device

// Display holds the derived view flags for one joined record.
//
// The "has" flags indicate which optional fields are applicable: each is
// true iff the corresponding stored value is non-null. The boolean states
// (IsOn, IsOpen, HasBatteriesState) are meaningful only when the matching
// "has" flag is true, and are defined as "stored value equals 1".
//
// Display state is recomputed on every read; it is never persisted.
type Display struct {
	HasOnOff       bool `json:"hasOnOff"`
	HasTemperature bool `json:"hasTemperature"`
	HasVolume      bool `json:"hasVolume"`
	HasBatteries   bool `json:"hasBatteries"`
	HasOpenClosed  bool `json:"hasOpenClosed"`

	IsOn              bool `json:"isOn"`
	IsOpen            bool `json:"isOpen"`
	HasBatteriesState bool `json:"hasBatteriesState"`
}

// Display computes the derived view flags for the record.
func (r *Record) Display() Display {
	t := r.Type

	d := Display{
		HasOnOff:       t.OnOff != nil,
		HasTemperature: t.Temperature != nil,
		HasVolume:      t.Volume != nil,
		HasBatteries:   t.BatteriesIncluded != nil,
		HasOpenClosed:  t.OpenClosed != nil,
	}

	if d.HasOnOff {
		d.IsOn = *t.OnOff == 1
	}
	if d.HasOpenClosed {
		d.IsOpen = *t.OpenClosed == 1
	}
	if d.HasBatteries {
		d.HasBatteriesState = *t.BatteriesIncluded == 1
	}

	return d
}
