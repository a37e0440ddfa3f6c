package store

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mukeshkdas03/hostel-management-system/models"
)

// SeedPassword is the password every seeded demo account logs in with.
const SeedPassword = "password123"

// Seed fills an empty store with the demo data set: one account per role, a
// pending outpass and complaint, the weekly menu, two schedule entries and
// the gallery. Safe to skip on stores that already hold data.
func Seed(s Store) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	today := time.Now().Format("2006-01-02")

	studentID, err := s.AllocateUserID(models.RoleStudent)
	if err != nil {
		return err
	}
	student := models.Student{
		User: models.User{
			ID:       studentID,
			Username: "student1",
			Name:     "Alex Johnson",
			Role:     models.RoleStudent,
			Email:    "alex@example.com",
		},
		RoomNumber:          "A-101",
		ParentContactNumber: "+1234567890",
		WardenName:          "Dr. Smith",
		WardenContactNumber: "+1987654321",
		MessAttendance: []models.MessAttendance{
			{StudentID: studentID, Date: today, Breakfast: true, Lunch: true, Dinner: false},
		},
	}
	if err := s.AddStudent(student); err != nil {
		return err
	}

	messID, err := s.AllocateUserID(models.RoleMess)
	if err != nil {
		return err
	}
	if err := s.AddMessAuthority(models.MessAuthority{User: models.User{
		ID: messID, Username: "mess1", Name: "Mike Wilson", Role: models.RoleMess, Email: "mike@example.com",
	}}); err != nil {
		return err
	}

	hostelID, err := s.AllocateUserID(models.RoleHostel)
	if err != nil {
		return err
	}
	if err := s.AddHostelAuthority(models.HostelAuthority{User: models.User{
		ID: hostelID, Username: "hostel1", Name: "Sarah Parker", Role: models.RoleHostel, Email: "sarah@example.com",
	}}); err != nil {
		return err
	}

	for _, cred := range []models.Credential{
		{Username: "student1", PasswordHash: string(hash), Role: models.RoleStudent, UserID: studentID},
		{Username: "mess1", PasswordHash: string(hash), Role: models.RoleMess, UserID: messID},
		{Username: "hostel1", PasswordHash: string(hash), Role: models.RoleHostel, UserID: hostelID},
	} {
		if err := s.AddCredential(cred); err != nil {
			return err
		}
	}

	if _, err := s.AddOutpass(models.Outpass{
		StudentID:   studentID,
		StudentName: student.Name,
		Reason:      "Family function",
		FromDate:    "2023-11-15",
		ToDate:      "2023-11-17",
		Status:      models.OutpassPending,
		CreatedAt:   time.Now(),
	}); err != nil {
		return err
	}

	if _, err := s.AddComplaint(models.Complaint{
		StudentID:   studentID,
		StudentName: student.Name,
		Title:       "Water leakage in room",
		Description: "There is water leaking from the ceiling in my room",
		Status:      models.ComplaintPending,
		CreatedAt:   time.Now(),
	}); err != nil {
		return err
	}

	if err := seedMenu(s); err != nil {
		return err
	}
	return seedStatic(s)
}

func seedMenu(s Store) error {
	items := []models.MenuItem{
		{ID: "m1", Day: models.Monday, Breakfast: "Bread, Eggs, Milk", Lunch: "Rice, Dal, Paneer", Dinner: "Chapati, Vegetables, Soup"},
		{ID: "m2", Day: models.Tuesday, Breakfast: "Idli, Sambar, Coffee", Lunch: "Rice, Sambar, Curd", Dinner: "Chapati, Curry, Pulao"},
		{ID: "m3", Day: models.Wednesday, Breakfast: "Poha, Tea", Lunch: "Rice, Dal, Chicken", Dinner: "Chapati, Vegetables, Milk"},
		{ID: "m4", Day: models.Thursday, Breakfast: "Sandwich, Juice", Lunch: "Rice, Dal, Fish", Dinner: "Chapati, Curry, Fruits"},
		{ID: "m5", Day: models.Friday, Breakfast: "Upma, Coffee", Lunch: "Rice, Dal, Egg Curry", Dinner: "Chapati, Vegetables, Ice Cream"},
		{ID: "m6", Day: models.Saturday, Breakfast: "Dosa, Chutney", Lunch: "Rice, Sambar, Payasam", Dinner: "Chapati, Paneer, Fruits"},
		{ID: "m7", Day: models.Sunday, Breakfast: "Paratha, Curd", Lunch: "Rice, Dal, Special Dessert", Dinner: "Chapati, Mixed Vegetables, Milk"},
	}
	for _, it := range items {
		if err := s.AddMenuItem(it); err != nil {
			return err
		}
	}
	return nil
}

func seedStatic(s Store) error {
	schedules := []models.Schedule{
		{ID: "s1", Title: "Mid-term Exams", Date: "2023-11-20", Description: "Mid-term examinations starting from 9 AM"},
		{ID: "s2", Title: "Cultural Fest", Date: "2023-12-05", Description: "Annual cultural festival from 10 AM to 8 PM"},
	}
	for _, sch := range schedules {
		if err := s.AddSchedule(sch); err != nil {
			return err
		}
	}
	images := []models.HostelImage{
		{ID: "i1", URL: "/hostel/hostel-front.jpg", Title: "Hostel Front View"},
		{ID: "i2", URL: "/hostel/hostel-room.jpg", Title: "Student Room"},
		{ID: "i3", URL: "/hostel/mess-hall.jpg", Title: "Mess Hall"},
		{ID: "i4", URL: "/hostel/recreation-area.jpg", Title: "Recreation Area"},
	}
	for _, img := range images {
		if err := s.AddHostelImage(img); err != nil {
			return err
		}
	}
	return nil
}
