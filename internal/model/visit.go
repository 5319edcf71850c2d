package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitRecord is a single clinic encounter, owned by the staff user who
// logged it. Exactly one of PatientID / VisitorName is set: a registered
// patient reference or a free-text walk-in visitor name.
type VisitRecord struct {
	Base
	UserID      uuid.UUID  `db:"user_id" json:"user_id"`
	DisplayID   string     `db:"display_id" json:"display_id"`
	PatientID   *uuid.UUID `db:"patient_id" json:"patient_id,omitempty"`
	VisitorName *string    `db:"visitor_name" json:"visitor_name,omitempty"`
	VisitDate   time.Time  `db:"visit_date" json:"visit_date"`
	Reason      string     `db:"reason" json:"reason"`
	Symptoms    string     `db:"symptoms" json:"symptoms"`
	Treatment   string     `db:"treatment" json:"treatment"`
	Notes       *string    `db:"notes" json:"notes,omitempty"`
}

// VisitWithPatient is a visit joined with its patient's name parts for
// list views. The patient columns are null for walk-in visits.
type VisitWithPatient struct {
	VisitRecord
	PatientFirstName  *string `db:"patient_first_name" json:"patient_first_name,omitempty"`
	PatientMiddleName *string `db:"patient_middle_name" json:"patient_middle_name,omitempty"`
	PatientLastName   *string `db:"patient_last_name" json:"patient_last_name,omitempty"`
	PatientSuffix     *string `db:"patient_suffix" json:"patient_suffix,omitempty"`
}

// VisitRequest is the visit form payload for create and update.
type VisitRequest struct {
	PatientID   string `json:"patient_id"`
	VisitorName string `json:"visitor_name"`
	VisitDate   string `json:"visit_date"`
	Reason      string `json:"reason"`
	Symptoms    string `json:"symptoms"`
	Treatment   string `json:"treatment"`
	Notes       string `json:"notes"`
}

// DisplayName returns the name to embed in activity messages: the
// registered patient's name when joined, otherwise the walk-in name.
func (v *VisitWithPatient) DisplayName() string {
	if v.PatientFirstName != nil {
		name := *v.PatientFirstName
		if v.PatientLastName != nil {
			name += " " + *v.PatientLastName
		}
		return name
	}
	if v.VisitorName != nil {
		return *v.VisitorName
	}
	return "unknown visitor"
}
