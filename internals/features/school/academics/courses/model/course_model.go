// file: internals/features/school/academics/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	// PK
	CourseID uuid.UUID `json:"course_id" gorm:"type:uuid;primaryKey;column:course_id;default:gen_random_uuid()"`

	// Tenant / scope
	CoursesSchoolID uuid.UUID `json:"courses_school_id" gorm:"type:uuid;not null;column:courses_school_id;index"`

	// Identitas
	CoursesCode        string  `json:"courses_code" gorm:"type:varchar(40);not null;column:courses_code"`
	CoursesTitle       string  `json:"courses_title" gorm:"type:varchar(160);not null;column:courses_title"`
	CoursesDescription *string `json:"courses_description,omitempty" gorm:"type:text;column:courses_description"`

	CoursesIsActive bool `json:"courses_is_active" gorm:"type:boolean;not null;default:true;column:courses_is_active"`

	// Timestamps
	CoursesCreatedAt time.Time      `json:"courses_created_at" gorm:"column:courses_created_at;not null;autoCreateTime"`
	CoursesUpdatedAt time.Time      `json:"courses_updated_at" gorm:"column:courses_updated_at;not null;autoUpdateTime"`
	CoursesDeletedAt gorm.DeletedAt `json:"courses_deleted_at" gorm:"column:courses_deleted_at;index"`
}

func (CourseModel) TableName() string { return "courses" }
