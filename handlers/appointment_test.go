package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"occlusa/middleware"
	"occlusa/models"
	"occlusa/services/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSchedulingService returns canned results so the handler's status
// mapping can be exercised without a store.
type stubSchedulingService struct {
	createErr error
	simpleErr error
	simpleID  string
	slots     []string
	slotsErr  error
}

func (s *stubSchedulingService) CreateAppointment(_ context.Context, input models.CreateAppointmentInput, _ models.UserContext) (*models.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.Appointment{ID: "appt-1", PatientID: input.PatientID}, nil
}

func (s *stubSchedulingService) UpdateAppointment(_ context.Context, id string, _ models.UpdateAppointmentInput, _ models.UserContext) (*models.Appointment, error) {
	return &models.Appointment{ID: id}, nil
}

func (s *stubSchedulingService) CancelAppointment(context.Context, string, *models.UserContext) error {
	return nil
}

func (s *stubSchedulingService) CheckConflicts(context.Context, string, time.Time, time.Time, string) (bool, error) {
	return false, nil
}

func (s *stubSchedulingService) CreateSimpleAppointment(context.Context, models.SimpleAppointmentInput) (string, error) {
	if s.simpleErr != nil {
		return "", s.simpleErr
	}
	return s.simpleID, nil
}

func (s *stubSchedulingService) GetAppointmentsForDay(context.Context, time.Time, string) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubSchedulingService) GetAppointmentsForDate(context.Context, string, string) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubSchedulingService) GetAvailableSlots(context.Context, string, string) ([]string, error) {
	return s.slots, s.slotsErr
}

func (s *stubSchedulingService) GetProviderByName(context.Context, string) (*models.Provider, error) {
	return nil, nil
}

func newTestRouter(svc scheduling.SchedulingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAppointmentHandler(svc)
	r.POST("/appointments/simple", h.CreateSimpleAppointmentHandler)
	r.POST("/appointments", withUser(models.RoleFrontdesk), h.CreateAppointmentHandler)
	r.GET("/availability", h.GetAvailableSlotsHandler)
	return r
}

// withUser injects a user context the way the auth middleware would.
func withUser(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserContextKey, models.UserContext{UserID: "user-1", Role: role})
		c.Next()
	}
}

func TestCreateSimpleAppointmentHandlerConflictMapsTo409(t *testing.T) {
	r := newTestRouter(&stubSchedulingService{simpleErr: scheduling.ErrConflict})

	body := `{"patientName":"Jane","phone":"0712","providerName":"Abdulhafidh Salim","date":"2026-01-07","timeSlot":"9:00am"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/appointments/simple", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateSimpleAppointmentHandlerSuccess(t *testing.T) {
	r := newTestRouter(&stubSchedulingService{simpleID: "appt-9"})

	body := `{"patientName":"Jane","phone":"0712","providerName":"Abdulhafidh Salim","date":"2026-01-07","timeSlot":"9:00am"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/appointments/simple", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "appt-9", resp["id"])
}

func TestCreateSimpleAppointmentHandlerRejectsBadInput(t *testing.T) {
	r := newTestRouter(&stubSchedulingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/appointments/simple", strings.NewReader(`{"patientName":"Jane"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAppointmentHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{scheduling.ErrPermissionDenied, http.StatusForbidden},
		{scheduling.ErrInvalidTimeRange, http.StatusBadRequest},
		{scheduling.ErrConflict, http.StatusConflict},
		{scheduling.ErrNotFound, http.StatusNotFound},
		{context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		r := newTestRouter(&stubSchedulingService{createErr: tc.err})

		body := `{"patientId":"p1","providerId":"prov-1","startTime":"2026-01-07T09:00:00Z","endTime":"2026-01-07T09:30:00Z"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, tc.code, w.Code, "error %v", tc.err)
	}
}

func TestGetAvailableSlotsHandler(t *testing.T) {
	r := newTestRouter(&stubSchedulingService{slots: []string{"9:00am", "9:30am"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/availability?provider=Abdulhafidh+Salim&date=2026-01-07", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"9:00am", "9:30am"}, resp["slots"])

	// Missing parameters are a client error.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/availability?provider=x", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
