package visit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nagi609/Clinic-Management-System/internal/model"
	"github.com/Nagi609/Clinic-Management-System/internal/service/activity"
	"github.com/Nagi609/Clinic-Management-System/pkg/apperror"
)

type fakeVisitRepo struct {
	visits map[uuid.UUID]*model.VisitRecord
}

func newFakeVisitRepo() *fakeVisitRepo {
	return &fakeVisitRepo{visits: make(map[uuid.UUID]*model.VisitRecord)}
}

func (f *fakeVisitRepo) Create(_ context.Context, v *model.VisitRecord) error {
	f.visits[v.ID] = v
	return nil
}

func (f *fakeVisitRepo) Get(_ context.Context, id uuid.UUID) (*model.VisitRecord, error) {
	v, ok := f.visits[id]
	if !ok {
		return nil, errors.New("sql: no rows in result set")
	}
	return v, nil
}

func (f *fakeVisitRepo) Update(_ context.Context, v *model.VisitRecord) error {
	f.visits[v.ID] = v
	return nil
}

func (f *fakeVisitRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.visits, id)
	return nil
}

func (f *fakeVisitRepo) List(_ context.Context, userID uuid.UUID) ([]*model.VisitWithPatient, error) {
	var out []*model.VisitWithPatient
	for _, v := range f.visits {
		if v.UserID == userID {
			out = append(out, &model.VisitWithPatient{VisitRecord: *v})
		}
	}
	return out, nil
}

func (f *fakeVisitRepo) ListDisplayIDs(_ context.Context, userID uuid.UUID) ([]string, error) {
	var out []string
	for _, v := range f.visits {
		if v.UserID == userID {
			out = append(out, v.DisplayID)
		}
	}
	return out, nil
}

type fakePatientRepo struct {
	patients map[uuid.UUID]*model.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[uuid.UUID]*model.Patient)}
}

func (f *fakePatientRepo) Create(_ context.Context, p *model.Patient) error {
	f.patients[p.ID] = p
	return nil
}

func (f *fakePatientRepo) Get(_ context.Context, id uuid.UUID) (*model.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, errors.New("sql: no rows in result set")
	}
	return p, nil
}

func (f *fakePatientRepo) Update(_ context.Context, _ *model.Patient) error { return nil }
func (f *fakePatientRepo) Delete(_ context.Context, _ uuid.UUID) error      { return nil }

func (f *fakePatientRepo) List(_ context.Context, _ uuid.UUID) ([]*model.Patient, error) {
	return nil, nil
}

func (f *fakePatientRepo) ListDisplayIDs(_ context.Context, _ uuid.UUID) ([]string, error) {
	return nil, nil
}

type noopActivityRepo struct{}

func (noopActivityRepo) Create(_ context.Context, _ *model.Activity) error { return nil }

func (noopActivityRepo) ListRecent(_ context.Context, _ uuid.UUID, _ int) ([]*model.Activity, error) {
	return nil, nil
}

func (noopActivityRepo) DeleteBefore(_ context.Context, _ time.Time) (int64, error) { return 0, nil }

func newTestService(repo *fakeVisitRepo, patients *fakePatientRepo) *Service {
	return NewService(repo, patients, activity.NewService(noopActivityRepo{}, nil))
}

func walkInRequest() *model.VisitRequest {
	return &model.VisitRequest{
		VisitorName: "Jose Rizal",
		VisitDate:   "2025-08-20",
		Reason:      "Headache",
		Symptoms:    "Throbbing pain",
		Treatment:   "Paracetamol 500mg",
	}
}

func TestCreateWalkInVisit(t *testing.T) {
	repo := newFakeVisitRepo()
	svc := newTestService(repo, newFakePatientRepo())

	visit, err := svc.CreateVisit(context.Background(), uuid.New(), walkInRequest())
	require.NoError(t, err)
	assert.Equal(t, "1", visit.DisplayID)
	require.NotNil(t, visit.VisitorName)
	assert.Equal(t, "Jose Rizal", *visit.VisitorName)
	assert.Nil(t, visit.PatientID)
}

func TestCreateVisitWithOwnedPatient(t *testing.T) {
	patients := newFakePatientRepo()
	owner := uuid.New()
	patient := &model.Patient{
		Base:      model.Base{ID: uuid.New()},
		UserID:    owner,
		FirstName: "Juan",
		LastName:  "Dela Cruz",
	}
	patients.patients[patient.ID] = patient

	svc := newTestService(newFakeVisitRepo(), patients)
	req := walkInRequest()
	req.VisitorName = ""
	req.PatientID = patient.ID.String()

	visit, err := svc.CreateVisit(context.Background(), owner, req)
	require.NoError(t, err)
	require.NotNil(t, visit.PatientID)
	assert.Equal(t, patient.ID, *visit.PatientID)
	assert.Nil(t, visit.VisitorName)
}

// Both a patient reference and a walk-in name set: mutual exclusivity is
// violated and the request is rejected outright.
func TestCreateVisitBothPatientAndVisitorFails(t *testing.T) {
	patients := newFakePatientRepo()
	owner := uuid.New()
	patient := &model.Patient{Base: model.Base{ID: uuid.New()}, UserID: owner}
	patients.patients[patient.ID] = patient

	svc := newTestService(newFakeVisitRepo(), patients)
	req := walkInRequest()
	req.PatientID = patient.ID.String()

	_, err := svc.CreateVisit(context.Background(), owner, req)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.StatusCode())
}

// A patient owned by a different user is reported as not-found, not as a
// plain validation failure.
func TestCreateVisitForeignPatientIsNotFound(t *testing.T) {
	patients := newFakePatientRepo()
	patient := &model.Patient{Base: model.Base{ID: uuid.New()}, UserID: uuid.New()}
	patients.patients[patient.ID] = patient

	svc := newTestService(newFakeVisitRepo(), patients)
	req := walkInRequest()
	req.VisitorName = ""
	req.PatientID = patient.ID.String()

	_, err := svc.CreateVisit(context.Background(), uuid.New(), req)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode())
}

func TestCreateVisitMissingFieldsCollected(t *testing.T) {
	svc := newTestService(newFakeVisitRepo(), newFakePatientRepo())

	_, err := svc.CreateVisit(context.Background(), uuid.New(), &model.VisitRequest{})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.StatusCode())
	// date, reason, symptoms, treatment, and the patient/visitor rule
	assert.Len(t, appErr.Messages, 5)
}

func TestUpdateVisitCrossOwnerIsNotFound(t *testing.T) {
	repo := newFakeVisitRepo()
	svc := newTestService(repo, newFakePatientRepo())

	visit, err := svc.CreateVisit(context.Background(), uuid.New(), walkInRequest())
	require.NoError(t, err)

	_, err = svc.UpdateVisit(context.Background(), uuid.New(), visit.ID, walkInRequest())
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode())
}

func TestDeleteVisitReusesDisplayID(t *testing.T) {
	repo := newFakeVisitRepo()
	svc := newTestService(repo, newFakePatientRepo())
	owner := uuid.New()

	first, err := svc.CreateVisit(context.Background(), owner, walkInRequest())
	require.NoError(t, err)
	_, err = svc.CreateVisit(context.Background(), owner, walkInRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteVisit(context.Background(), owner, first.ID))

	third, err := svc.CreateVisit(context.Background(), owner, walkInRequest())
	require.NoError(t, err)
	assert.Equal(t, "1", third.DisplayID)
}
