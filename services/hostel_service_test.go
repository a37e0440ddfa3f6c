package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mukeshkdas03/hostel-management-system/models"
	"github.com/mukeshkdas03/hostel-management-system/services"
	"github.com/mukeshkdas03/hostel-management-system/store"
)

func newHostelService(t *testing.T, st store.Store, notifier services.NotificationSender) *services.HostelService {
	t.Helper()
	students := services.NewStudentService(st)
	return services.NewHostelService(st, students, notifier, zap.NewNop())
}

func TestGetOutpassesStatusFilter(t *testing.T) {
	st := newSeededStore(t)
	notifier := new(mockNotifier)
	notifier.On("Send", mock.Anything, mock.Anything).Return(nil)
	hostel := newHostelService(t, st, notifier)
	students := services.NewStudentService(st)

	_, err := students.CreateOutpass(services.OutpassRequest{
		StudentID: "s1", StudentName: "Alex Johnson",
		Reason: "Medical", FromDate: "2024-03-01", ToDate: "2024-03-02",
	})
	require.NoError(t, err)

	_, err = hostel.UpdateOutpassStatus(context.Background(), "o2", models.OutpassApproved)
	require.NoError(t, err)

	pending, err := hostel.GetOutpasses(models.OutpassPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "o1", pending[0].ID)

	all, err := hostel.GetOutpasses("")
	require.NoError(t, err)
	require.Len(t, all, 2)
	// No filter returns the full set in store order.
	assert.Equal(t, "o1", all[0].ID)
	assert.Equal(t, "o2", all[1].ID)
}

func TestPendingOutpassCount(t *testing.T) {
	st := newSeededStore(t)
	hostel := newHostelService(t, st, new(mockNotifier))

	n, err := hostel.PendingOutpassCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestUpdateOutpassStatusUnknownID(t *testing.T) {
	hostel := newHostelService(t, newSeededStore(t), new(mockNotifier))

	_, err := hostel.UpdateOutpassStatus(context.Background(), "unknown-id", models.OutpassApproved)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestOutpassDecisionIsTerminal(t *testing.T) {
	notifier := new(mockNotifier)
	notifier.On("Send", mock.Anything, mock.Anything).Return(nil)
	hostel := newHostelService(t, newSeededStore(t), notifier)

	ctx := context.Background()

	o, err := hostel.UpdateOutpassStatus(ctx, "o1", models.OutpassRejected)
	require.NoError(t, err)
	assert.Equal(t, models.OutpassRejected, o.Status)

	// Rejected is terminal: no second decision, no un-reject.
	_, err = hostel.UpdateOutpassStatus(ctx, "o1", models.OutpassApproved)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
	_, err = hostel.UpdateOutpassStatus(ctx, "o1", models.OutpassRejected)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestOutpassDecisionNotifiesParent(t *testing.T) {
	notifier := new(mockNotifier)
	notifier.On("Send", mock.Anything, mock.MatchedBy(func(n services.ParentNotification) bool {
		return n.StudentID == "s1" &&
			n.Message == "Outpass request from 2023-11-15 to 2023-11-17 has been approved"
	})).Return(nil).Once()

	hostel := newHostelService(t, newSeededStore(t), notifier)

	_, err := hostel.UpdateOutpassStatus(context.Background(), "o1", models.OutpassApproved)
	require.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestComplaintLifecycleForwardOnly(t *testing.T) {
	hostel := newHostelService(t, newSeededStore(t), new(mockNotifier))

	// Skipping straight to resolved is not allowed.
	_, err := hostel.UpdateComplaintStatus("c1", models.ComplaintResolved, "")
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	c, err := hostel.UpdateComplaintStatus("c1", models.ComplaintInProgress, "")
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintInProgress, c.Status)

	c, err = hostel.UpdateComplaintStatus("c1", models.ComplaintResolved, "Fixed")
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintResolved, c.Status)
	assert.Equal(t, "Fixed", c.Response)

	// Resolved is immutable; moving back is rejected.
	_, err = hostel.UpdateComplaintStatus("c1", models.ComplaintInProgress, "")
	assert.ErrorIs(t, err, services.ErrInvalidTransition)

	_, err = hostel.UpdateComplaintStatus("c9", models.ComplaintInProgress, "")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetComplaintsStatusFilter(t *testing.T) {
	st := newSeededStore(t)
	hostel := newHostelService(t, st, new(mockNotifier))
	students := services.NewStudentService(st)

	_, err := students.CreateComplaint(services.ComplaintRequest{
		StudentID: "s1", StudentName: "Alex Johnson",
		Title: "Broken fan", Description: "Ceiling fan not working",
	})
	require.NoError(t, err)

	_, err = hostel.UpdateComplaintStatus("c2", models.ComplaintInProgress, "")
	require.NoError(t, err)

	pending, err := hostel.GetComplaints(models.ComplaintPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "c1", pending[0].ID)

	inProgress, err := hostel.GetComplaints(models.ComplaintInProgress)
	require.NoError(t, err)
	require.Len(t, inProgress, 1)
	assert.Equal(t, "c2", inProgress[0].ID)
}

func TestUpdateStudentDetailsDelegates(t *testing.T) {
	hostel := newHostelService(t, newSeededStore(t), new(mockNotifier))

	warden := "Dr. Rao"
	student, err := hostel.UpdateStudentDetails("s1", store.StudentPatch{WardenName: &warden})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Rao", student.WardenName)

	_, err = hostel.UpdateStudentDetails("s42", store.StudentPatch{WardenName: &warden})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
