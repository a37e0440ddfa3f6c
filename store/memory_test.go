package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mukeshkdas03/hostel-management-system/models"
	"github.com/mukeshkdas03/hostel-management-system/store"
)

func newSeededStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	s := store.NewMemoryStore()
	require.NoError(t, store.Seed(s))
	return s
}

func TestAllocateUserIDPerRole(t *testing.T) {
	s := newSeededStore(t)

	id, err := s.AllocateUserID(models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "s2", id)

	id, err = s.AllocateUserID(models.RoleMess)
	require.NoError(t, err)
	assert.Equal(t, "m2", id)

	id, err = s.AllocateUserID(models.RoleHostel)
	require.NoError(t, err)
	assert.Equal(t, "h2", id)

	// Counters are independent per role.
	id, err = s.AllocateUserID(models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "s3", id)

	_, err = s.AllocateUserID(models.Role("admin"))
	assert.Error(t, err)
}

func TestAddCredentialDuplicate(t *testing.T) {
	s := newSeededStore(t)

	err := s.AddCredential(models.Credential{
		Username: "student1", PasswordHash: "x", Role: models.RoleMess, UserID: "m9",
	})
	assert.ErrorIs(t, err, store.ErrDuplicateUsername)
}

func TestSetPasswordUnknownUsername(t *testing.T) {
	s := newSeededStore(t)

	err := s.SetPassword("ghost", "hash")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Existing credentials untouched.
	cred, err := s.CredentialByUsername("student1")
	require.NoError(t, err)
	assert.NotEmpty(t, cred.PasswordHash)
}

func TestUpdateStudentShallowMerge(t *testing.T) {
	s := newSeededStore(t)

	room := "B-202"
	updated, err := s.UpdateStudent("s1", store.StudentPatch{RoomNumber: &room})
	require.NoError(t, err)
	assert.Equal(t, "B-202", updated.RoomNumber)
	// Untouched fields survive the merge.
	assert.Equal(t, "Alex Johnson", updated.Name)
	assert.Equal(t, "+1234567890", updated.ParentContactNumber)

	_, err = s.UpdateStudent("s99", store.StudentPatch{RoomNumber: &room})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSetAttendanceUpsertsByDate(t *testing.T) {
	s := newSeededStore(t)

	updated, err := s.SetAttendance("s1", models.MessAttendance{Date: "2024-01-01", Lunch: true})
	require.NoError(t, err)

	updated, err = s.SetAttendance("s1", models.MessAttendance{Date: "2024-01-01", Lunch: true, Dinner: true})
	require.NoError(t, err)

	var matches int
	for _, a := range updated.MessAttendance {
		if a.Date == "2024-01-01" {
			matches++
		}
	}
	assert.Equal(t, 1, matches, "one record per (student, date)")

	_, err = s.SetAttendance("s99", models.MessAttendance{Date: "2024-01-01"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStudentReadsReturnFreshCopies(t *testing.T) {
	s := newSeededStore(t)

	first, err := s.StudentByID("s1")
	require.NoError(t, err)
	require.NotEmpty(t, first.MessAttendance)
	first.MessAttendance[0].Dinner = true
	first.Name = "Mallory"

	second, err := s.StudentByID("s1")
	require.NoError(t, err)
	assert.False(t, second.MessAttendance[0].Dinner, "caller mutation must not reach the store")
	assert.Equal(t, "Alex Johnson", second.Name)
}

func TestOutpassSequenceAndSave(t *testing.T) {
	s := newSeededStore(t)

	o, err := s.AddOutpass(models.Outpass{StudentID: "s1", Status: models.OutpassPending})
	require.NoError(t, err)
	assert.Equal(t, "o2", o.ID)

	o.Status = models.OutpassApproved
	require.NoError(t, s.SaveOutpass(o))

	got, err := s.OutpassByID("o2")
	require.NoError(t, err)
	assert.Equal(t, models.OutpassApproved, got.Status)

	assert.ErrorIs(t, s.SaveOutpass(models.Outpass{ID: "o99"}), store.ErrNotFound)
}

func TestMenuSeededOncePerDay(t *testing.T) {
	s := newSeededStore(t)

	items, err := s.MenuItems()
	require.NoError(t, err)
	require.Len(t, items, 7)

	seen := map[models.Day]bool{}
	for _, it := range items {
		assert.False(t, seen[it.Day], "day %s appears twice", it.Day)
		seen[it.Day] = true
	}
}

func TestUpdateMenuItemPatch(t *testing.T) {
	s := newSeededStore(t)

	lunch := "Biryani, Raita"
	item, err := s.UpdateMenuItem("m1", store.MenuItemPatch{Lunch: &lunch})
	require.NoError(t, err)
	assert.Equal(t, "Biryani, Raita", item.Lunch)
	assert.Equal(t, models.Monday, item.Day)
	assert.Equal(t, "Bread, Eggs, Milk", item.Breakfast)

	_, err = s.UpdateMenuItem("m99", store.MenuItemPatch{Lunch: &lunch})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
