package device

import "testing"

func intp(n int64) *int64 {
	return &n
}

func TestRecordDisplay(t *testing.T) {
	tests := []struct {
		name string
		typ  DeviceType
		want Display
	}{
		{
			name: "all fields absent",
			typ:  DeviceType{Name: "Shelf"},
			want: Display{},
		},
		{
			name: "powered device on",
			typ:  DeviceType{Name: "Lamp", OnOff: intp(1)},
			want: Display{HasOnOff: true, IsOn: true},
		},
		{
			name: "powered device off",
			typ:  DeviceType{Name: "Lamp", OnOff: intp(0)},
			want: Display{HasOnOff: true, IsOn: false},
		},
		{
			name: "entry device open",
			typ:  DeviceType{Name: "Garage Door", OpenClosed: intp(1)},
			want: Display{HasOpenClosed: true, IsOpen: true},
		},
		{
			name: "batteries included",
			typ:  DeviceType{Name: "Remote", BatteriesIncluded: intp(1)},
			want: Display{HasBatteries: true, HasBatteriesState: true},
		},
		{
			name: "climate and audio device",
			typ:  DeviceType{Name: "Media Thermostat", Temperature: intp(21), Volume: intp(40)},
			want: Display{HasTemperature: true, HasVolume: true},
		},
		{
			name: "zero values are applicable but off",
			typ: DeviceType{
				Name:              "Speaker",
				OnOff:             intp(0),
				Volume:            intp(0),
				BatteriesIncluded: intp(0),
				OpenClosed:        intp(0),
			},
			want: Display{
				HasOnOff:      true,
				HasVolume:     true,
				HasBatteries:  true,
				HasOpenClosed: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{Type: tt.typ}
			if got := rec.Display(); got != tt.want {
				t.Errorf("Display() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRecordCustomName(t *testing.T) {
	rec := Record{Type: DeviceType{ID: 1, Name: "Lamp"}}
	if got := rec.CustomName(); got != "" {
		t.Errorf("CustomName() = %q, want empty without a name row", got)
	}

	rec.Name = &DeviceName{ID: 1, CustomName: "lamp01", DeviceTypeID: 1}
	if got := rec.CustomName(); got != "lamp01" {
		t.Errorf("CustomName() = %q, want lamp01", got)
	}
}
