package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mukeshkdas03/hostel-management-system/models"
)

// GormStore is the postgres-backed Store. Same contract and id scheme as
// MemoryStore; selected with STORE_DRIVER=postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Empty reports whether no credentials exist yet, so main knows to seed.
func (g *GormStore) Empty() (bool, error) {
	var n int64
	if err := g.db.Model(&models.Credential{}).Count(&n).Error; err != nil {
		return false, err
	}
	return n == 0, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

/* ===== Credentials ===== */

func (g *GormStore) CredentialByUsername(username string) (models.Credential, error) {
	var c models.Credential
	if err := g.db.First(&c, "username = ?", username).Error; err != nil {
		return models.Credential{}, translate(err)
	}
	return c, nil
}

func (g *GormStore) AddCredential(cred models.Credential) error {
	var dup models.Credential
	if err := g.db.First(&dup, "username = ?", cred.Username).Error; err == nil {
		return ErrDuplicateUsername
	}
	return g.db.Create(&cred).Error
}

func (g *GormStore) SetPassword(username, passwordHash string) error {
	res := g.db.Model(&models.Credential{}).
		Where("username = ?", username).
		Update("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

/* ===== Users ===== */

func (g *GormStore) AllocateUserID(role models.Role) (string, error) {
	var model any
	switch role {
	case models.RoleStudent:
		model = &models.Student{}
	case models.RoleMess:
		model = &models.MessAuthority{}
	case models.RoleHostel:
		model = &models.HostelAuthority{}
	default:
		return "", fmt.Errorf("allocate user id: invalid role %q", role)
	}
	var n int64
	if err := g.db.Model(model).Count(&n).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%c%d", role[0], n+1), nil
}

func (g *GormStore) AddStudent(s models.Student) error {
	return g.db.Create(&s).Error
}

func (g *GormStore) AddMessAuthority(a models.MessAuthority) error {
	return g.db.Create(&a).Error
}

func (g *GormStore) AddHostelAuthority(a models.HostelAuthority) error {
	return g.db.Create(&a).Error
}

func (g *GormStore) StudentByID(id string) (models.Student, error) {
	var s models.Student
	err := g.db.Preload("MessAttendance").First(&s, "id = ?", id).Error
	if err != nil {
		return models.Student{}, translate(err)
	}
	return s, nil
}

func (g *GormStore) MessAuthorityByID(id string) (models.MessAuthority, error) {
	var a models.MessAuthority
	if err := g.db.First(&a, "id = ?", id).Error; err != nil {
		return models.MessAuthority{}, translate(err)
	}
	return a, nil
}

func (g *GormStore) HostelAuthorityByID(id string) (models.HostelAuthority, error) {
	var a models.HostelAuthority
	if err := g.db.First(&a, "id = ?", id).Error; err != nil {
		return models.HostelAuthority{}, translate(err)
	}
	return a, nil
}

func (g *GormStore) Students() ([]models.Student, error) {
	var out []models.Student
	if err := g.db.Preload("MessAttendance").Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (g *GormStore) UpdateStudent(id string, patch StudentPatch) (models.Student, error) {
	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.RoomNumber != nil {
		updates["room_number"] = *patch.RoomNumber
	}
	if patch.ParentContactNumber != nil {
		updates["parent_contact_number"] = *patch.ParentContactNumber
	}
	if patch.WardenName != nil {
		updates["warden_name"] = *patch.WardenName
	}
	if patch.WardenContactNumber != nil {
		updates["warden_contact_number"] = *patch.WardenContactNumber
	}
	if len(updates) > 0 {
		res := g.db.Model(&models.Student{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return models.Student{}, res.Error
		}
		if res.RowsAffected == 0 {
			return models.Student{}, ErrNotFound
		}
	}
	return g.StudentByID(id)
}

func (g *GormStore) SetAttendance(studentID string, rec models.MessAttendance) (models.Student, error) {
	if _, err := g.StudentByID(studentID); err != nil {
		return models.Student{}, err
	}
	rec.StudentID = studentID
	err := g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"breakfast", "lunch", "dinner"}),
	}).Create(&rec).Error
	if err != nil {
		return models.Student{}, err
	}
	return g.StudentByID(studentID)
}

/* ===== Outpasses ===== */

func (g *GormStore) AddOutpass(o models.Outpass) (models.Outpass, error) {
	var n int64
	if err := g.db.Model(&models.Outpass{}).Count(&n).Error; err != nil {
		return models.Outpass{}, err
	}
	o.ID = fmt.Sprintf("o%d", n+1)
	if err := g.db.Create(&o).Error; err != nil {
		return models.Outpass{}, err
	}
	return o, nil
}

func (g *GormStore) OutpassByID(id string) (models.Outpass, error) {
	var o models.Outpass
	if err := g.db.First(&o, "id = ?", id).Error; err != nil {
		return models.Outpass{}, translate(err)
	}
	return o, nil
}

func (g *GormStore) Outpasses() ([]models.Outpass, error) {
	var out []models.Outpass
	if err := g.db.Order("created_at").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (g *GormStore) OutpassesByStudentID(studentID string) ([]models.Outpass, error) {
	out := []models.Outpass{}
	if err := g.db.Where("student_id = ?", studentID).Order("created_at").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (g *GormStore) SaveOutpass(o models.Outpass) error {
	res := g.db.Model(&models.Outpass{}).Where("id = ?", o.ID).
		Updates(map[string]any{"status": o.Status})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

/* ===== Complaints ===== */

func (g *GormStore) AddComplaint(c models.Complaint) (models.Complaint, error) {
	var n int64
	if err := g.db.Model(&models.Complaint{}).Count(&n).Error; err != nil {
		return models.Complaint{}, err
	}
	c.ID = fmt.Sprintf("c%d", n+1)
	if err := g.db.Create(&c).Error; err != nil {
		return models.Complaint{}, err
	}
	return c, nil
}

func (g *GormStore) ComplaintByID(id string) (models.Complaint, error) {
	var c models.Complaint
	if err := g.db.First(&c, "id = ?", id).Error; err != nil {
		return models.Complaint{}, translate(err)
	}
	return c, nil
}

func (g *GormStore) Complaints() ([]models.Complaint, error) {
	var out []models.Complaint
	if err := g.db.Order("created_at").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (g *GormStore) ComplaintsByStudentID(studentID string) ([]models.Complaint, error) {
	out := []models.Complaint{}
	if err := g.db.Where("student_id = ?", studentID).Order("created_at").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (g *GormStore) SaveComplaint(c models.Complaint) error {
	res := g.db.Model(&models.Complaint{}).Where("id = ?", c.ID).
		Updates(map[string]any{"status": c.Status, "response": c.Response})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

/* ===== Menu ===== */

func (g *GormStore) AddMenuItem(item models.MenuItem) error {
	return g.db.Create(&item).Error
}

func (g *GormStore) MenuItems() ([]models.MenuItem, error) {
	var out []models.MenuItem
	if err := g.db.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (g *GormStore) MenuItemByID(id string) (models.MenuItem, error) {
	var it models.MenuItem
	if err := g.db.First(&it, "id = ?", id).Error; err != nil {
		return models.MenuItem{}, translate(err)
	}
	return it, nil
}

func (g *GormStore) UpdateMenuItem(id string, patch MenuItemPatch) (models.MenuItem, error) {
	updates := map[string]any{}
	if patch.Breakfast != nil {
		updates["breakfast"] = *patch.Breakfast
	}
	if patch.Lunch != nil {
		updates["lunch"] = *patch.Lunch
	}
	if patch.Dinner != nil {
		updates["dinner"] = *patch.Dinner
	}
	if len(updates) > 0 {
		res := g.db.Model(&models.MenuItem{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return models.MenuItem{}, res.Error
		}
		if res.RowsAffected == 0 {
			return models.MenuItem{}, ErrNotFound
		}
	}
	return g.MenuItemByID(id)
}

/* ===== Read-only collections ===== */

func (g *GormStore) AddSchedule(sch models.Schedule) error {
	return g.db.Create(&sch).Error
}

func (g *GormStore) Schedules() ([]models.Schedule, error) {
	var out []models.Schedule
	if err := g.db.Order("date").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (g *GormStore) AddHostelImage(img models.HostelImage) error {
	return g.db.Create(&img).Error
}

func (g *GormStore) HostelImages() ([]models.HostelImage, error) {
	var out []models.HostelImage
	if err := g.db.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
