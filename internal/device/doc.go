// Package device provides the device record core for Homedeck.
//
// It implements the pipeline every mutating request flows through, and the
// two-table relational model behind it:
//
//	raw fields -> Sanitize -> Validate/ParseFields -> Repository -> Record
//
// # Key Types
//
//   - Fields: raw field mapping, nil value means absent
//   - DeviceType: parent row (category name plus nullable status fields)
//   - DeviceName: dependent row (custom label, FK to DeviceType, cascade)
//   - Record: one DeviceType outer-joined with its DeviceName
//   - Display: derived view flags, recomputed on every read
//
// # Usage
//
//	fields := device.Sanitize(raw)
//	t, customName, err := device.ParseFields(fields)
//	if err != nil {
//	    // reject with 400, nothing was written
//	}
//	id, err := repo.Create(ctx, t, customName)
//
// Validation always runs before any mutation, so a rejected request never
// reaches the store. Create and Update write both rows inside a single
// transaction; Delete relies on the store's ON DELETE CASCADE rule.
//
// # Field rules
//
//   - deviceTypeName: required, alphanumeric+space, non-empty
//   - customName: required, 5-16 characters of [A-Za-z0-9_]
//   - onOff, batteriesIncluded, openClosed: optional flags, 0 or 1
//   - temperature: optional integer in [1,220]
//   - volume: optional integer in [0,100]
//
// An optional field that is not applicable to a device's category is stored
// as NULL, never as a sentinel value.
package device
