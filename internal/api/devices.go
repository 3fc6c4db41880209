package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/homedeck/internal/device"
)

// deviceRequest is the body for create and update. Every field arrives as a
// raw string; a nil field is absent and stays absent through sanitization.
type deviceRequest struct {
	DeviceTypeName    *string `json:"deviceTypeName"`
	CustomName        *string `json:"customName"`
	OnOff             *string `json:"onOff"`
	Temperature       *string `json:"temperature"`
	Volume            *string `json:"volume"`
	BatteriesIncluded *string `json:"batteriesIncluded"`
	OpenClosed        *string `json:"openClosed"`
}

// fields converts the request body into the raw field mapping the
// sanitize/validate pipeline operates on.
func (p *deviceRequest) fields() device.Fields {
	return device.Fields{
		device.FieldDeviceTypeName:    p.DeviceTypeName,
		device.FieldCustomName:        p.CustomName,
		device.FieldOnOff:             p.OnOff,
		device.FieldTemperature:       p.Temperature,
		device.FieldVolume:            p.Volume,
		device.FieldBatteriesIncluded: p.BatteriesIncluded,
		device.FieldOpenClosed:        p.OpenClosed,
	}
}

// confirmRequest is the structured confirm-delete payload: every field of the
// record to be removed, named, so the client's view can be checked against
// the store before the destructive step.
type confirmRequest struct {
	ID                int64   `json:"id"`
	CustomName        string  `json:"customName"`
	DeviceTypeName    string  `json:"deviceTypeName"`
	OnOff             *string `json:"onOff"`
	BatteriesIncluded *string `json:"batteriesIncluded"`
	OpenClosed        *string `json:"openClosed"`
	Volume            *string `json:"volume"`
	Temperature       *string `json:"temperature"`
}

// fields converts the confirm payload into the raw field mapping for
// re-validation.
func (p *confirmRequest) fields() device.Fields {
	f := device.Fields{
		device.FieldOnOff:             p.OnOff,
		device.FieldTemperature:       p.Temperature,
		device.FieldVolume:            p.Volume,
		device.FieldBatteriesIncluded: p.BatteriesIncluded,
		device.FieldOpenClosed:        p.OpenClosed,
	}
	f.Set(device.FieldDeviceTypeName, p.DeviceTypeName)
	f.Set(device.FieldCustomName, p.CustomName)
	return f
}

// deviceView is one record as the dashboard renders it: the stored rows plus
// the display flags derived from them on this read.
type deviceView struct {
	device.Record
	Display device.Display `json:"display"`
}

// listDevices fetches every record with freshly derived display state.
func (s *Server) listDevices(ctx context.Context) ([]deviceView, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]deviceView, 0, len(records))
	for _, rec := range records {
		views = append(views, deviceView{Record: rec, Display: rec.Display()})
	}
	return views, nil
}

// parseID extracts the numeric record id from the URL.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing device id: %w", err)
	}
	return id, nil
}

// handleListDevices returns all device records with display state.
func (s *Server) handleListDevices(w http.ResponseWriter, r *http.Request) {
	views, err := s.listDevices(r.Context())
	if err != nil {
		s.logger.Error("failed to list devices", "error", err)
		redirectTo(w, r, "/")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"devices": views, "count": len(views)})
}

// handleCreateDevice creates a new device record.
//
// The raw fields are sanitized and validated before anything is written;
// a rejected request never reaches the store.
func (s *Server) handleCreateDevice(w http.ResponseWriter, r *http.Request) {
	var payload deviceRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	typ, customName, err := device.ParseFields(device.Sanitize(payload.fields()))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	id, err := s.repo.Create(r.Context(), typ, customName)
	if err != nil {
		s.logger.Error("failed to create device", "error", err)
		redirectTo(w, r, "/")
		return
	}

	views, err := s.listDevices(r.Context())
	if err != nil {
		s.logger.Error("failed to list devices", "error", err)
		redirectTo(w, r, "/")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":      id,
		"devices": views,
		"count":   len(views),
	})
}

// handleGetDevice returns a single record with display state, as used by the
// status and update-preparation views.
func (s *Server) handleGetDevice(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeBadRequest(w, "invalid device id")
		return
	}

	rec, err := s.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, device.ErrNotFound) {
			writeNotFound(w, "device not found")
			return
		}
		s.logger.Error("failed to get device", "error", err, "id", id)
		redirectTo(w, r, "/api/v1/devices")
		return
	}

	writeJSON(w, http.StatusOK, deviceView{Record: *rec, Display: rec.Display()})
}

// handleUpdateDevice replaces both rows of a record.
//
// Validation runs first: an out-of-range field rejects the request and the
// stored record is left untouched.
func (s *Server) handleUpdateDevice(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeBadRequest(w, "invalid device id")
		return
	}

	var payload deviceRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	typ, customName, err := device.ParseFields(device.Sanitize(payload.fields()))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	rows, err := s.repo.Update(r.Context(), id, typ, customName)
	if err != nil {
		s.logger.Error("failed to update device", "error", err, "id", id)
		redirectTo(w, r, fmt.Sprintf("/api/v1/devices/%d", id))
		return
	}
	if rows == 0 {
		writeNotFound(w, "device not found")
		return
	}

	views, err := s.listDevices(r.Context())
	if err != nil {
		s.logger.Error("failed to list devices", "error", err)
		redirectTo(w, r, "/")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"devices": views, "count": len(views)})
}

// handleDeleteDevice removes a record; the dependent name row goes with it
// via the store's cascade rule. Deleting a missing id is not an error.
func (s *Server) handleDeleteDevice(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeBadRequest(w, "invalid device id")
		return
	}

	rows, err := s.repo.Delete(r.Context(), id)
	if err != nil {
		s.logger.Error("failed to delete device", "error", err, "id", id)
		redirectTo(w, r, "/")
		return
	}

	views, err := s.listDevices(r.Context())
	if err != nil {
		s.logger.Error("failed to list devices", "error", err)
		redirectTo(w, r, "/")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"deleted": rows,
		"devices": views,
		"count":   len(views),
	})
}

// handleConfirmDelete prepares the confirm-delete view.
//
// The client sends back the full record it is about to remove; the fields are
// re-validated and the stored record is fetched so the confirmation shows
// current data. Nothing is deleted here.
func (s *Server) handleConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeBadRequest(w, "invalid device id")
		return
	}

	var payload confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if payload.ID != id {
		writeBadRequest(w, "payload id does not match URL")
		return
	}

	if err := device.Validate(payload.fields()); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	rec, err := s.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, device.ErrNotFound) {
			writeNotFound(w, "device not found")
			return
		}
		s.logger.Error("failed to get device", "error", err, "id", id)
		redirectTo(w, r, "/api/v1/devices")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"confirm": true,
		"device":  deviceView{Record: *rec, Display: rec.Display()},
	})
}
