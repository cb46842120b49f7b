// file: internals/features/school/academics/class_offerings/model/class_offering_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   Enum status offering
   ======================================================= */

type OfferingStatus string

const (
	OfferingUpcoming  OfferingStatus = "upcoming"
	OfferingOngoing   OfferingStatus = "ongoing"
	OfferingCompleted OfferingStatus = "completed"
	OfferingCancelled OfferingStatus = "cancelled"
)

// SubjectToConflictCheck — cek bentrok jadwal hanya berlaku untuk offering
// yang masih berjalan; historis/batal tidak mungkin bentrok.
func (s OfferingStatus) SubjectToConflictCheck() bool {
	return s == OfferingUpcoming || s == OfferingOngoing
}

/* =======================================================
   ClassOfferingModel — satu course untuk satu section
   ======================================================= */

type ClassOfferingModel struct {
	// PK
	ClassOfferingID uuid.UUID `json:"class_offering_id" gorm:"type:uuid;primaryKey;column:class_offering_id;default:gen_random_uuid()"`

	// Tenant / scope
	ClassOfferingsSchoolID uuid.UUID `json:"class_offerings_school_id" gorm:"type:uuid;not null;column:class_offerings_school_id;index"`

	// Relasi
	ClassOfferingsCourseID  uuid.UUID  `json:"class_offerings_course_id" gorm:"type:uuid;not null;column:class_offerings_course_id"`
	ClassOfferingsSectionID uuid.UUID  `json:"class_offerings_section_id" gorm:"type:uuid;not null;column:class_offerings_section_id"`
	ClassOfferingsCoachID   *uuid.UUID `json:"class_offerings_coach_id,omitempty" gorm:"type:uuid;column:class_offerings_coach_id"`

	ClassOfferingsStatus   OfferingStatus `json:"class_offerings_status" gorm:"type:text;not null;default:'upcoming';column:class_offerings_status"`
	ClassOfferingsCapacity int            `json:"class_offerings_capacity" gorm:"type:int;not null;default:0;column:class_offerings_capacity"`

	// Timestamps
	ClassOfferingsCreatedAt time.Time      `json:"class_offerings_created_at" gorm:"column:class_offerings_created_at;not null;autoCreateTime"`
	ClassOfferingsUpdatedAt time.Time      `json:"class_offerings_updated_at" gorm:"column:class_offerings_updated_at;not null;autoUpdateTime"`
	ClassOfferingsDeletedAt gorm.DeletedAt `json:"class_offerings_deleted_at" gorm:"column:class_offerings_deleted_at;index"`
}

func (ClassOfferingModel) TableName() string { return "class_offerings" }
