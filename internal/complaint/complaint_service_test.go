package complaint_test

import (
	"complaintbox/backend/internal/complaint"
	"complaintbox/backend/internal/models"
	"complaintbox/backend/internal/storage"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) ComplaintCreated(ctx context.Context, c models.Complaint) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

var fixedNow = time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, opts ...complaint.Option) (*complaint.Service, *storage.MemoryKV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	store := storage.NewComplaintStore(kv, zap.NewNop())
	opts = append([]complaint.Option{complaint.WithClock(func() time.Time { return fixedNow })}, opts...)
	return complaint.NewService(store, zap.NewNop(), opts...), kv
}

func TestCreate_BrokenChairScenario(t *testing.T) {
	// Arrange
	ctx := context.Background()
	svc, _ := newTestService(t)

	// Act
	created, err := svc.Create(ctx, models.CategoryAcademics, "Broken chair", true)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.True(t, created.Anonymous)
	assert.Equal(t, "2026-03-14", created.Date)
	assert.True(t, strings.HasPrefix(created.ID, "C"))

	listed := svc.List(ctx)
	require.Len(t, listed, 4)
	assert.Equal(t, created, listed[0])
}

func TestCreate_IDsAreFreshAndDistinct(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	seen := map[string]bool{}
	for _, c := range svc.List(ctx) {
		seen[c.ID] = true
	}

	for i := 0; i < 50; i++ {
		created, err := svc.Create(ctx, models.CategoryOther, fmt.Sprintf("issue %d", i), false)
		require.NoError(t, err)
		assert.NotContains(t, seen, created.ID)
		seen[created.ID] = true
	}
}

func TestCreate_NewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	a, err := svc.Create(ctx, models.CategoryFacilities, "first", false)
	require.NoError(t, err)
	b, err := svc.Create(ctx, models.CategoryInfrastructure, "second", false)
	require.NoError(t, err)

	listed := svc.List(ctx)
	require.GreaterOrEqual(t, len(listed), 2)
	assert.Equal(t, b.ID, listed[0].ID)
	assert.Equal(t, a.ID, listed[1].ID)
	assert.Equal(t, "C001", listed[2].ID)
}

func TestCreate_UsesInjectedIDGenerator(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, complaint.WithIDGenerator(func() string { return "C-fixed" }))

	created, err := svc.Create(ctx, models.CategoryOther, "x", false)

	require.NoError(t, err)
	assert.Equal(t, "C-fixed", created.ID)
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		category    models.Category
		description string
	}{
		{"empty category", models.CategoryNone, "Broken chair"},
		{"unknown category", models.Category("Parking"), "No spots"},
		{"empty description", models.CategoryAcademics, ""},
		{"blank description", models.CategoryAcademics, "   \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, _ := newTestService(t)
			before := svc.List(ctx)

			_, err := svc.Create(ctx, tt.category, tt.description, false)

			assert.ErrorIs(t, err, complaint.ErrInvalidInput)
			assert.Equal(t, before, svc.List(ctx), "no record should be created")
		})
	}
}

func TestCreate_NotifiesAfterPersisting(t *testing.T) {
	// Arrange
	ctx := context.Background()
	notifier := new(MockNotifier)
	svc, _ := newTestService(t, complaint.WithNotifier(notifier))

	notifier.On("ComplaintCreated", ctx, mock.AnythingOfType("models.Complaint")).
		Run(func(args mock.Arguments) {
			c := args.Get(1).(models.Complaint)
			assert.Equal(t, c.ID, svc.List(ctx)[0].ID, "complaint must be stored before notifying")
		}).
		Return(nil).Once()

	// Act
	_, err := svc.Create(ctx, models.CategoryFacilities, "Water fountain leaks", false)

	// Assert
	require.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestCreate_NotifierFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	notifier := new(MockNotifier)
	notifier.On("ComplaintCreated", ctx, mock.Anything).Return(errors.New("telegram down"))
	svc, _ := newTestService(t, complaint.WithNotifier(notifier))

	created, err := svc.Create(ctx, models.CategoryOther, "x", true)

	require.NoError(t, err)
	assert.Equal(t, created.ID, svc.List(ctx)[0].ID)
}

func TestUpdateStatus_ChangesOnlyTargetStatus(t *testing.T) {
	// Arrange
	ctx := context.Background()
	svc, _ := newTestService(t)
	before := svc.List(ctx)

	// Act
	after, err := svc.UpdateStatus(ctx, "C003", models.StatusInReview)

	// Assert
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for i := range before {
		expected := before[i]
		if expected.ID == "C003" {
			expected.Status = models.StatusInReview
		}
		assert.Equal(t, expected, after[i])
	}
	assert.Equal(t, after, svc.List(ctx), "returned collection should match storage")
}

func TestUpdateStatus_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, kv := newTestService(t)
	svc.List(ctx)
	rawBefore, _, _ := kv.Get(ctx, "campusComplaints")

	got, err := svc.UpdateStatus(ctx, "does-not-exist", models.StatusResolved)

	require.NoError(t, err)
	assert.Equal(t, storage.SeedComplaints(), got)
	rawAfter, _, _ := kv.Get(ctx, "campusComplaints")
	assert.Equal(t, rawBefore, rawAfter)
}

func TestUpdateStatus_SameStatusScenario(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	got, err := svc.UpdateStatus(ctx, "C001", models.StatusResolved)

	require.NoError(t, err)
	assert.Equal(t, storage.SeedComplaints(), got)
}

func TestUpdateStatus_TransitionsAreUnconstrained(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	got, err := svc.UpdateStatus(ctx, "C001", models.StatusPending)

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got[0].Status, "Resolved may move back to Pending")
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.UpdateStatus(ctx, "C001", models.Status("Closed"))

	assert.ErrorIs(t, err, complaint.ErrInvalidInput)
	assert.Equal(t, models.StatusResolved, svc.List(ctx)[0].Status)
}

func TestListByStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	_, err := svc.Create(ctx, models.CategoryOther, "new one", false)
	require.NoError(t, err)

	all, err := svc.ListByStatus(ctx, complaint.StatusFilterAll)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	empty, err := svc.ListByStatus(ctx, "")
	require.NoError(t, err)
	assert.Len(t, empty, 4)

	pending, err := svc.ListByStatus(ctx, string(models.StatusPending))
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "new one", pending[0].Description, "filter keeps newest-first order")
	assert.Equal(t, "C003", pending[1].ID)

	resolved, err := svc.ListByStatus(ctx, string(models.StatusResolved))
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "C001", resolved[0].ID)

	_, err = svc.ListByStatus(ctx, "Closed")
	assert.ErrorIs(t, err, complaint.ErrInvalidInput)
}
