package model

import (
	"time"

	"github.com/google/uuid"
)

type PatientRole string

const (
	PatientRoleStudent          PatientRole = "student"
	PatientRoleTeachingStaff    PatientRole = "teaching_staff"
	PatientRoleNonTeachingStaff PatientRole = "non_teaching_staff"
)

// Programs offered by the institution. Students pick a course from the
// program's list; teaching staff belong to one of the same two units.
const (
	ProgramCICT = "CICT"
	ProgramCBME = "CBME"
)

// CourseOptions maps a program to its valid courses.
var CourseOptions = map[string][]string{
	ProgramCICT: {"BSIT", "BSCS", "BSIS", "BTVTED"},
	ProgramCBME: {"BSA", "BSAIS", "BPA", "BSE"},
}

// StaffCategories are the valid departments for non-teaching staff.
var StaffCategories = []string{
	"Administration",
	"Accounting",
	"Human Resources",
	"Student Service",
	"Library",
	"Maintenance",
	"Security",
	"Supply",
	"Clinic",
}

// Patient is a person receiving clinic services, owned by one user.
// Exactly one role-specific field group is populated: program/course/
// year_level/block for students, department for teaching staff,
// staff_category for non-teaching staff. The rest are null.
type Patient struct {
	Base
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	DisplayID   string    `db:"display_id" json:"display_id"`
	FirstName   string    `db:"first_name" json:"first_name"`
	MiddleName  *string   `db:"middle_name" json:"middle_name,omitempty"`
	LastName    string    `db:"last_name" json:"last_name"`
	Suffix      *string   `db:"suffix" json:"suffix,omitempty"`
	DateOfBirth time.Time `db:"date_of_birth" json:"date_of_birth"`
	Gender      string    `db:"gender" json:"gender"`
	Phone       string    `db:"phone" json:"phone"`
	Email       *string   `db:"email" json:"email,omitempty"`
	Address     *string   `db:"address" json:"address,omitempty"`
	Role        string    `db:"role" json:"role"`
	IDNumber    string    `db:"id_number" json:"id_number"`

	Program       *string `db:"program" json:"program,omitempty"`
	Course        *string `db:"course" json:"course,omitempty"`
	YearLevel     *int    `db:"year_level" json:"year_level,omitempty"`
	Block         *int    `db:"block" json:"block,omitempty"`
	Department    *string `db:"department" json:"department,omitempty"`
	StaffCategory *string `db:"staff_category" json:"staff_category,omitempty"`

	PastIllnesses     *string `db:"past_illnesses" json:"past_illnesses,omitempty"`
	Surgeries         *string `db:"surgeries" json:"surgeries,omitempty"`
	CurrentMedication *string `db:"current_medication" json:"current_medication,omitempty"`
	Allergies         *string `db:"allergies" json:"allergies,omitempty"`
	MedicalNotes      *string `db:"medical_notes" json:"medical_notes,omitempty"`

	PrimaryContactName           string  `db:"primary_contact_name" json:"primary_contact_name"`
	PrimaryContactRelationship   string  `db:"primary_contact_relationship" json:"primary_contact_relationship"`
	PrimaryContactPhone          string  `db:"primary_contact_phone" json:"primary_contact_phone"`
	PrimaryContactAddress        *string `db:"primary_contact_address" json:"primary_contact_address,omitempty"`
	SecondaryContactName         *string `db:"secondary_contact_name" json:"secondary_contact_name,omitempty"`
	SecondaryContactRelationship *string `db:"secondary_contact_relationship" json:"secondary_contact_relationship,omitempty"`
	SecondaryContactPhone        *string `db:"secondary_contact_phone" json:"secondary_contact_phone,omitempty"`
	SecondaryContactAddress      *string `db:"secondary_contact_address" json:"secondary_contact_address,omitempty"`

	Attachments *string `db:"attachments" json:"attachments,omitempty"`
}

// FullName returns the patient's display name for activity messages.
func (p *Patient) FullName() string {
	name := p.FirstName + " " + p.LastName
	if p.Suffix != nil && *p.Suffix != "" {
		name += " " + *p.Suffix
	}
	return name
}

// PatientRequest is the intake form payload for create and update.
// Numeric sub-fields arrive as strings and are coerced during validation.
type PatientRequest struct {
	FirstName   string `json:"first_name"`
	MiddleName  string `json:"middle_name"`
	LastName    string `json:"last_name"`
	Suffix      string `json:"suffix"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Role        string `json:"role"`
	IDNumber    string `json:"id_number"`

	Program       string `json:"program"`
	Course        string `json:"course"`
	YearLevel     string `json:"year_level"`
	Block         string `json:"block"`
	Department    string `json:"department"`
	StaffCategory string `json:"staff_category"`

	PastIllnesses     string `json:"past_illnesses"`
	Surgeries         string `json:"surgeries"`
	CurrentMedication string `json:"current_medication"`
	Allergies         string `json:"allergies"`
	MedicalNotes      string `json:"medical_notes"`

	PrimaryContactName           string `json:"primary_contact_name"`
	PrimaryContactRelationship   string `json:"primary_contact_relationship"`
	PrimaryContactPhone          string `json:"primary_contact_phone"`
	PrimaryContactAddress        string `json:"primary_contact_address"`
	SecondaryContactName         string `json:"secondary_contact_name"`
	SecondaryContactRelationship string `json:"secondary_contact_relationship"`
	SecondaryContactPhone        string `json:"secondary_contact_phone"`
	SecondaryContactAddress      string `json:"secondary_contact_address"`

	Attachments string `json:"attachments"`
}
