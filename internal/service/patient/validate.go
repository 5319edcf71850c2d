package patient

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Nagi609/Clinic-Management-System/internal/model"
	"github.com/Nagi609/Clinic-Management-System/pkg/apperror"
)

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	phoneRe = regexp.MustCompile(`^09\d{9}$`)
	// ID numbers accept letters, digits and hyphens.
	idNumberRe = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
)

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func validName(s string) bool {
	trimmed := strings.TrimSpace(s)
	return trimmed != "" && nameRe.MatchString(trimmed)
}

func validPhone(s string) bool {
	return phoneRe.MatchString(s)
}

func courseInProgram(program, course string) bool {
	for _, c := range model.CourseOptions[program] {
		if c == course {
			return true
		}
	}
	return false
}

func validStaffCategory(category string) bool {
	for _, c := range model.StaffCategories {
		if c == category {
			return true
		}
	}
	return false
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v := s
	return &v
}

// Validate applies the intake rules to the raw form payload and returns a
// normalized patient or the full list of violations. Every rule runs; the
// caller sees all failures at once rather than the first one.
//
// Normalization guarantees that exactly one role-specific field group
// survives: a student's department/staff_category are cleared even when
// present in the payload, and vice versa.
func Validate(req *model.PatientRequest) (*model.Patient, *apperror.Error) {
	var errs []string

	if !validName(req.FirstName) {
		errs = append(errs, "First name is required and must be letters only")
	}
	if req.MiddleName != "" && !validName(req.MiddleName) {
		errs = append(errs, "Middle name must contain letters only")
	}
	if !validName(req.LastName) {
		errs = append(errs, "Last name is required and must be letters only")
	}
	if req.Suffix != "" && !validName(req.Suffix) {
		errs = append(errs, "Suffix must contain letters only")
	}

	var dob time.Time
	if req.DateOfBirth == "" {
		errs = append(errs, "Date of birth is required")
	} else {
		var ok bool
		if dob, ok = parseDate(req.DateOfBirth); !ok {
			errs = append(errs, "Invalid date of birth")
		}
	}

	if req.Gender == "" {
		errs = append(errs, "Gender is required")
	}
	if !validPhone(req.Phone) {
		errs = append(errs, "Phone must start with 09 and be exactly 11 digits")
	}

	role := model.PatientRole(req.Role)
	switch role {
	case model.PatientRoleStudent, model.PatientRoleTeachingStaff, model.PatientRoleNonTeachingStaff:
	default:
		errs = append(errs, "Valid role is required")
	}

	if req.IDNumber == "" || !idNumberRe.MatchString(req.IDNumber) {
		errs = append(errs, "Valid ID number is required")
	}

	var yearLevel, block *int
	switch role {
	case model.PatientRoleStudent:
		if _, ok := model.CourseOptions[req.Program]; !ok {
			errs = append(errs, "Valid program is required for students")
		} else if req.Course == "" || !courseInProgram(req.Program, req.Course) {
			errs = append(errs, "Course is required for students")
		}
		if req.YearLevel == "" {
			errs = append(errs, "Year level must be 1-4")
		} else if y, err := strconv.Atoi(req.YearLevel); err != nil || y < 1 || y > 4 {
			errs = append(errs, "Year level must be 1-4")
		} else {
			yearLevel = &y
		}
		if req.Block != "" {
			if b, err := strconv.Atoi(req.Block); err != nil || b < 1 || b > 5 {
				errs = append(errs, "Block must be 1-5")
			} else {
				block = &b
			}
		}
	case model.PatientRoleTeachingStaff:
		if _, ok := model.CourseOptions[req.Department]; !ok {
			errs = append(errs, "Valid department is required")
		}
	case model.PatientRoleNonTeachingStaff:
		if !validStaffCategory(req.StaffCategory) {
			errs = append(errs, "Staff category is required")
		}
	}

	if strings.TrimSpace(req.PrimaryContactName) == "" {
		errs = append(errs, "Primary contact name is required")
	}
	if strings.TrimSpace(req.PrimaryContactRelationship) == "" {
		errs = append(errs, "Primary contact relationship is required")
	}
	if !validPhone(req.PrimaryContactPhone) {
		errs = append(errs, "Primary contact phone is invalid")
	}
	if req.SecondaryContactPhone != "" && !validPhone(req.SecondaryContactPhone) {
		errs = append(errs, "Secondary contact phone is invalid")
	}

	if len(errs) > 0 {
		return nil, apperror.Validation(errs...)
	}

	p := &model.Patient{
		FirstName:   strings.TrimSpace(req.FirstName),
		MiddleName:  optional(req.MiddleName),
		LastName:    strings.TrimSpace(req.LastName),
		Suffix:      optional(req.Suffix),
		DateOfBirth: dob,
		Gender:      req.Gender,
		Phone:       req.Phone,
		Email:       optional(req.Email),
		Address:     optional(req.Address),
		Role:        req.Role,
		IDNumber:    req.IDNumber,

		PastIllnesses:     optional(req.PastIllnesses),
		Surgeries:         optional(req.Surgeries),
		CurrentMedication: optional(req.CurrentMedication),
		Allergies:         optional(req.Allergies),
		MedicalNotes:      optional(req.MedicalNotes),

		PrimaryContactName:           strings.TrimSpace(req.PrimaryContactName),
		PrimaryContactRelationship:   strings.TrimSpace(req.PrimaryContactRelationship),
		PrimaryContactPhone:          req.PrimaryContactPhone,
		PrimaryContactAddress:        optional(req.PrimaryContactAddress),
		SecondaryContactName:         optional(req.SecondaryContactName),
		SecondaryContactRelationship: optional(req.SecondaryContactRelationship),
		SecondaryContactPhone:        optional(req.SecondaryContactPhone),
		SecondaryContactAddress:      optional(req.SecondaryContactAddress),

		Attachments: optional(req.Attachments),
	}

	// Only the selected role's field group survives.
	switch role {
	case model.PatientRoleStudent:
		p.Program = &req.Program
		p.Course = &req.Course
		p.YearLevel = yearLevel
		p.Block = block
	case model.PatientRoleTeachingStaff:
		p.Department = &req.Department
	case model.PatientRoleNonTeachingStaff:
		p.StaffCategory = &req.StaffCategory
	}

	return p, nil
}

// actionMessage builds the activity feed line for a patient mutation.
func actionMessage(action string, p *model.Patient) string {
	return fmt.Sprintf("%s patient %s", action, p.FullName())
}
