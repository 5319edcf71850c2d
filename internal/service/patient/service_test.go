package patient

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

func (f *fakePatientRepo) Update(_ context.Context, p *model.Patient) error {
	f.patients[p.ID] = p
	return nil
}

func (f *fakePatientRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.patients, id)
	return nil
}

func (f *fakePatientRepo) List(_ context.Context, userID uuid.UUID) ([]*model.Patient, error) {
	var out []*model.Patient
	for _, p := range f.patients {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePatientRepo) ListDisplayIDs(_ context.Context, userID uuid.UUID) ([]string, error) {
	var out []string
	for _, p := range f.patients {
		if p.UserID == userID {
			out = append(out, p.DisplayID)
		}
	}
	return out, nil
}

type erroringActivityRepo struct{}

func (erroringActivityRepo) Create(_ context.Context, _ *model.Activity) error {
	return errors.New("datastore outage")
}

func (erroringActivityRepo) ListRecent(_ context.Context, _ uuid.UUID, _ int) ([]*model.Activity, error) {
	return nil, nil
}

func (erroringActivityRepo) DeleteBefore(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func newTestService(repo *fakePatientRepo) *Service {
	return NewService(repo, activity.NewService(erroringActivityRepo{}, nil))
}

func seedPatient(repo *fakePatientRepo, userID uuid.UUID, displayID string) *model.Patient {
	p := &model.Patient{
		Base:      model.Base{ID: uuid.New()},
		UserID:    userID,
		DisplayID: displayID,
		FirstName: "Seed",
		LastName:  "Patient",
	}
	repo.patients[p.ID] = p
	return p
}

func TestCreatePatientAllocatesGapDisplayID(t *testing.T) {
	repo := newFakePatientRepo()
	svc := newTestService(repo)
	owner := uuid.New()

	seedPatient(repo, owner, "1")
	seedPatient(repo, owner, "3")

	created, err := svc.CreatePatient(context.Background(), owner, validStudentRequest())
	require.NoError(t, err)
	assert.Equal(t, "2", created.DisplayID)
	assert.Equal(t, owner, created.UserID)
}

func TestCreatePatientFirstRecordGetsOne(t *testing.T) {
	repo := newFakePatientRepo()
	svc := newTestService(repo)

	created, err := svc.CreatePatient(context.Background(), uuid.New(), validStudentRequest())
	require.NoError(t, err)
	assert.Equal(t, "1", created.DisplayID)
}

func TestCreatePatientValidationFailure(t *testing.T) {
	svc := newTestService(newFakePatientRepo())
	req := validStudentRequest()
	req.Phone = "12345"

	_, err := svc.CreatePatient(context.Background(), uuid.New(), req)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.StatusCode())
}

// An activity-log outage must not fail the mutation itself.
func TestCreatePatientSurvivesActivityFailure(t *testing.T) {
	repo := newFakePatientRepo()
	svc := newTestService(repo)

	created, err := svc.CreatePatient(context.Background(), uuid.New(), validStudentRequest())
	require.NoError(t, err)
	assert.Contains(t, repo.patients, created.ID)
}

func TestGetPatientCrossOwnerIsNotFound(t *testing.T) {
	repo := newFakePatientRepo()
	svc := newTestService(repo)
	p := seedPatient(repo, uuid.New(), "1")

	_, err := svc.GetPatient(context.Background(), uuid.New(), p.ID)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode())
}

func TestUpdatePatientKeepsDisplayID(t *testing.T) {
	repo := newFakePatientRepo()
	svc := newTestService(repo)
	owner := uuid.New()

	created, err := svc.CreatePatient(context.Background(), owner, validStudentRequest())
	require.NoError(t, err)

	req := validStudentRequest()
	req.FirstName = "Pedro"
	updated, err := svc.UpdatePatient(context.Background(), owner, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, created.DisplayID, updated.DisplayID)
	assert.Equal(t, "Pedro", updated.FirstName)
}

func TestDeletePatientCrossOwnerIsNotFound(t *testing.T) {
	repo := newFakePatientRepo()
	svc := newTestService(repo)
	p := seedPatient(repo, uuid.New(), "1")

	err := svc.DeletePatient(context.Background(), uuid.New(), p.ID)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.StatusCode())
	assert.Contains(t, repo.patients, p.ID)
}

func TestDeletedDisplayIDIsReused(t *testing.T) {
	repo := newFakePatientRepo()
	svc := newTestService(repo)
	owner := uuid.New()

	first, err := svc.CreatePatient(context.Background(), owner, validStudentRequest())
	require.NoError(t, err)
	second, err := svc.CreatePatient(context.Background(), owner, validStudentRequest())
	require.NoError(t, err)
	assert.Equal(t, "1", first.DisplayID)
	assert.Equal(t, "2", second.DisplayID)

	require.NoError(t, svc.DeletePatient(context.Background(), owner, first.ID))

	third, err := svc.CreatePatient(context.Background(), owner, validStudentRequest())
	require.NoError(t, err)
	assert.Equal(t, "1", third.DisplayID)
}
