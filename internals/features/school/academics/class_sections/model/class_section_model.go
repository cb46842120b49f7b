// file: internals/features/school/academics/class_sections/model/class_section_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassSectionModel — rombongan belajar (cohort). Satu section mengikuti
// satu timetable sebagai satu kesatuan.
type ClassSectionModel struct {
	// PK
	ClassSectionID uuid.UUID `json:"class_section_id" gorm:"type:uuid;primaryKey;column:class_section_id;default:gen_random_uuid()"`

	// Tenant / scope
	ClassSectionsSchoolID uuid.UUID `json:"class_sections_school_id" gorm:"type:uuid;not null;column:class_sections_school_id;index"`

	ClassSectionsName         string `json:"class_sections_name" gorm:"type:varchar(80);not null;column:class_sections_name"`
	ClassSectionsAcademicYear string `json:"class_sections_academic_year" gorm:"type:varchar(20);not null;column:class_sections_academic_year"`
	ClassSectionsCapacity     int    `json:"class_sections_capacity" gorm:"type:int;not null;default:0;column:class_sections_capacity"`

	// Timestamps
	ClassSectionsCreatedAt time.Time      `json:"class_sections_created_at" gorm:"column:class_sections_created_at;not null;autoCreateTime"`
	ClassSectionsUpdatedAt time.Time      `json:"class_sections_updated_at" gorm:"column:class_sections_updated_at;not null;autoUpdateTime"`
	ClassSectionsDeletedAt gorm.DeletedAt `json:"class_sections_deleted_at" gorm:"column:class_sections_deleted_at;index"`
}

func (ClassSectionModel) TableName() string { return "class_sections" }
