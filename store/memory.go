package store

import (
	"fmt"
	"sync"

	"github.com/mukeshkdas03/hostel-management-system/models"
)

// MemoryStore keeps every collection in insertion-ordered slices. It is the
// default backend and the one used by tests; the postgres store implements
// the same interface for deployments with a real database.
type MemoryStore struct {
	mu sync.RWMutex

	credentials []models.Credential
	students    []models.Student
	messAuths   []models.MessAuthority
	hostelAuths []models.HostelAuthority
	outpasses   []models.Outpass
	complaints  []models.Complaint
	menuItems   []models.MenuItem
	schedules   []models.Schedule
	images      []models.HostelImage

	userSeq      map[models.Role]int
	outpassSeq   int
	complaintSeq int
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{userSeq: map[models.Role]int{}}
}

/* ===== Credentials ===== */

func (m *MemoryStore) CredentialByUsername(username string) (models.Credential, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.credentials {
		if c.Username == username {
			return c, nil
		}
	}
	return models.Credential{}, ErrNotFound
}

func (m *MemoryStore) AddCredential(cred models.Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.credentials {
		if c.Username == cred.Username {
			return ErrDuplicateUsername
		}
	}
	m.credentials = append(m.credentials, cred)
	return nil
}

func (m *MemoryStore) SetPassword(username, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.credentials {
		if m.credentials[i].Username == username {
			m.credentials[i].PasswordHash = passwordHash
			return nil
		}
	}
	return ErrNotFound
}

/* ===== Users ===== */

func (m *MemoryStore) AllocateUserID(role models.Role) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("allocate user id: invalid role %q", role)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userSeq[role]++
	return fmt.Sprintf("%c%d", role[0], m.userSeq[role]), nil
}

func (m *MemoryStore) AddStudent(s models.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.students = append(m.students, copyStudent(s))
	return nil
}

func (m *MemoryStore) AddMessAuthority(a models.MessAuthority) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messAuths = append(m.messAuths, a)
	return nil
}

func (m *MemoryStore) AddHostelAuthority(a models.HostelAuthority) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hostelAuths = append(m.hostelAuths, a)
	return nil
}

func (m *MemoryStore) StudentByID(id string) (models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.students {
		if m.students[i].ID == id {
			return copyStudent(m.students[i]), nil
		}
	}
	return models.Student{}, ErrNotFound
}

func (m *MemoryStore) MessAuthorityByID(id string) (models.MessAuthority, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.messAuths {
		if a.ID == id {
			return a, nil
		}
	}
	return models.MessAuthority{}, ErrNotFound
}

func (m *MemoryStore) HostelAuthorityByID(id string) (models.HostelAuthority, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.hostelAuths {
		if a.ID == id {
			return a, nil
		}
	}
	return models.HostelAuthority{}, ErrNotFound
}

func (m *MemoryStore) Students() ([]models.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Student, 0, len(m.students))
	for i := range m.students {
		out = append(out, copyStudent(m.students[i]))
	}
	return out, nil
}

func (m *MemoryStore) UpdateStudent(id string, patch StudentPatch) (models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.students {
		if m.students[i].ID == id {
			patch.apply(&m.students[i])
			return copyStudent(m.students[i]), nil
		}
	}
	return models.Student{}, ErrNotFound
}

func (m *MemoryStore) SetAttendance(studentID string, rec models.MessAttendance) (models.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.students {
		if m.students[i].ID != studentID {
			continue
		}
		rec.StudentID = studentID
		replaced := false
		for j := range m.students[i].MessAttendance {
			if m.students[i].MessAttendance[j].Date == rec.Date {
				m.students[i].MessAttendance[j] = rec
				replaced = true
				break
			}
		}
		if !replaced {
			m.students[i].MessAttendance = append(m.students[i].MessAttendance, rec)
		}
		return copyStudent(m.students[i]), nil
	}
	return models.Student{}, ErrNotFound
}

/* ===== Outpasses ===== */

func (m *MemoryStore) AddOutpass(o models.Outpass) (models.Outpass, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outpassSeq++
	o.ID = fmt.Sprintf("o%d", m.outpassSeq)
	m.outpasses = append(m.outpasses, o)
	return o, nil
}

func (m *MemoryStore) OutpassByID(id string) (models.Outpass, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, o := range m.outpasses {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Outpass{}, ErrNotFound
}

func (m *MemoryStore) Outpasses() ([]models.Outpass, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Outpass, len(m.outpasses))
	copy(out, m.outpasses)
	return out, nil
}

func (m *MemoryStore) OutpassesByStudentID(studentID string) ([]models.Outpass, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Outpass{}
	for _, o := range m.outpasses {
		if o.StudentID == studentID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *MemoryStore) SaveOutpass(o models.Outpass) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.outpasses {
		if m.outpasses[i].ID == o.ID {
			m.outpasses[i] = o
			return nil
		}
	}
	return ErrNotFound
}

/* ===== Complaints ===== */

func (m *MemoryStore) AddComplaint(c models.Complaint) (models.Complaint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.complaintSeq++
	c.ID = fmt.Sprintf("c%d", m.complaintSeq)
	m.complaints = append(m.complaints, c)
	return c, nil
}

func (m *MemoryStore) ComplaintByID(id string) (models.Complaint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.complaints {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Complaint{}, ErrNotFound
}

func (m *MemoryStore) Complaints() ([]models.Complaint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Complaint, len(m.complaints))
	copy(out, m.complaints)
	return out, nil
}

func (m *MemoryStore) ComplaintsByStudentID(studentID string) ([]models.Complaint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Complaint{}
	for _, c := range m.complaints {
		if c.StudentID == studentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MemoryStore) SaveComplaint(c models.Complaint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.complaints {
		if m.complaints[i].ID == c.ID {
			m.complaints[i] = c
			return nil
		}
	}
	return ErrNotFound
}

/* ===== Menu ===== */

func (m *MemoryStore) AddMenuItem(item models.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.menuItems = append(m.menuItems, item)
	return nil
}

func (m *MemoryStore) MenuItems() ([]models.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.MenuItem, len(m.menuItems))
	copy(out, m.menuItems)
	return out, nil
}

func (m *MemoryStore) MenuItemByID(id string) (models.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, it := range m.menuItems {
		if it.ID == id {
			return it, nil
		}
	}
	return models.MenuItem{}, ErrNotFound
}

func (m *MemoryStore) UpdateMenuItem(id string, patch MenuItemPatch) (models.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.menuItems {
		if m.menuItems[i].ID == id {
			patch.apply(&m.menuItems[i])
			return m.menuItems[i], nil
		}
	}
	return models.MenuItem{}, ErrNotFound
}

/* ===== Read-only collections ===== */

func (m *MemoryStore) AddSchedule(sch models.Schedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schedules = append(m.schedules, sch)
	return nil
}

func (m *MemoryStore) AddHostelImage(img models.HostelImage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.images = append(m.images, img)
	return nil
}

func (m *MemoryStore) Schedules() ([]models.Schedule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Schedule, len(m.schedules))
	copy(out, m.schedules)
	return out, nil
}

func (m *MemoryStore) HostelImages() ([]models.HostelImage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.HostelImage, len(m.images))
	copy(out, m.images)
	return out, nil
}

// copyStudent detaches the attendance slice so callers never share backing
// arrays with the store.
func copyStudent(s models.Student) models.Student {
	att := make([]models.MessAttendance, len(s.MessAttendance))
	copy(att, s.MessAttendance)
	s.MessAttendance = att
	return s
}
