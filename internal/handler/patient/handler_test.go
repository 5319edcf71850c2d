package patient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nagi609/Clinic-Management-System/internal/handler"
	"github.com/Nagi609/Clinic-Management-System/internal/model"
	"github.com/Nagi609/Clinic-Management-System/pkg/apperror"
)

type stubPatientService struct {
	created *model.Patient
	err     error
}

func (s *stubPatientService) CreatePatient(_ context.Context, userID uuid.UUID, _ *model.PatientRequest) (*model.Patient, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created.UserID = userID
	return s.created, nil
}

func (s *stubPatientService) GetPatient(_ context.Context, _, _ uuid.UUID) (*model.Patient, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubPatientService) UpdatePatient(_ context.Context, _, _ uuid.UUID, _ *model.PatientRequest) (*model.Patient, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubPatientService) DeletePatient(_ context.Context, _, _ uuid.UUID) error {
	return s.err
}

func (s *stubPatientService) ListPatients(_ context.Context, _ uuid.UUID) ([]*model.Patient, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*model.Patient{s.created}, nil
}

func setupRouter(svc *stubPatientService, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(handler.ContextUserID, userID)
		c.Next()
	})
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestCreatePatientReturnsCreated(t *testing.T) {
	owner := uuid.New()
	svc := &stubPatientService{created: &model.Patient{
		Base:      model.Base{ID: uuid.New()},
		DisplayID: "1",
		FirstName: "Juan",
		LastName:  "Dela Cruz",
	}}
	r := setupRouter(svc, owner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(`{"first_name":"Juan"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp handler.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
}

func TestCreatePatientValidationCarriesAllMessages(t *testing.T) {
	svc := &stubPatientService{err: apperror.Validation(
		"First name is required",
		"Phone must start with 09 and be exactly 11 digits",
	)}
	r := setupRouter(svc, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Len(t, resp.Errors, 2)
	assert.Contains(t, resp.Errors, "First name is required")
}

func TestGetPatientNotFound(t *testing.T) {
	svc := &stubPatientService{err: apperror.NotFound("patient")}
	r := setupRouter(svc, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/"+uuid.New().String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPatientBadIDIsNotFound(t *testing.T) {
	svc := &stubPatientService{created: &model.Patient{}}
	r := setupRouter(svc, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInternalErrorIsGeneric(t *testing.T) {
	svc := &stubPatientService{err: apperror.Internal(assert.AnError)}
	r := setupRouter(svc, uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
