// file: internals/features/school/academics/class_offerings/dto/class_offering_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	m "atletaku_backend/internals/features/school/academics/class_offerings/model"
)

/* =======================================================
   Util & parsing
   ======================================================= */

func uuidPtrFromString(s *string) (*uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}
	ss := strings.TrimSpace(*s)
	if ss == "" {
		return nil, nil
	}
	id, err := uuid.Parse(ss)
	if err != nil {
		return nil, fmt.Errorf("invalid uuid: %w", err)
	}
	return &id, nil
}

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateClassOfferingRequest struct {
	// Required
	ClassOfferingsCourseID  string `json:"class_offerings_course_id"  validate:"required,uuid4"`
	ClassOfferingsSectionID string `json:"class_offerings_section_id" validate:"required,uuid4"`

	// Optional
	ClassOfferingsCoachID  *string           `json:"class_offerings_coach_id,omitempty" validate:"omitempty,uuid4"`
	ClassOfferingsStatus   *m.OfferingStatus `json:"class_offerings_status,omitempty"   validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
	ClassOfferingsCapacity *int              `json:"class_offerings_capacity,omitempty" validate:"omitempty,gte=0"`
}

func (r *CreateClassOfferingRequest) ApplyToModel(dst *m.ClassOfferingModel) error {
	courseID, err := uuid.Parse(strings.TrimSpace(r.ClassOfferingsCourseID))
	if err != nil {
		return fmt.Errorf("class_offerings_course_id: %w", err)
	}
	sectionID, err := uuid.Parse(strings.TrimSpace(r.ClassOfferingsSectionID))
	if err != nil {
		return fmt.Errorf("class_offerings_section_id: %w", err)
	}
	coachID, err := uuidPtrFromString(r.ClassOfferingsCoachID)
	if err != nil {
		return fmt.Errorf("class_offerings_coach_id: %w", err)
	}

	dst.ClassOfferingsCourseID = courseID
	dst.ClassOfferingsSectionID = sectionID
	dst.ClassOfferingsCoachID = coachID

	if r.ClassOfferingsStatus != nil {
		dst.ClassOfferingsStatus = *r.ClassOfferingsStatus
	} else {
		dst.ClassOfferingsStatus = m.OfferingUpcoming
	}
	if r.ClassOfferingsCapacity != nil {
		dst.ClassOfferingsCapacity = *r.ClassOfferingsCapacity
	}
	return nil
}

type PatchClassOfferingRequest struct {
	// Semua optional — hanya field non-nil yang di-apply
	ClassOfferingsCoachID  *string           `json:"class_offerings_coach_id,omitempty" validate:"omitempty,uuid4"`
	ClassOfferingsStatus   *m.OfferingStatus `json:"class_offerings_status,omitempty"   validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
	ClassOfferingsCapacity *int              `json:"class_offerings_capacity,omitempty" validate:"omitempty,gte=0"`
}

func (p *PatchClassOfferingRequest) ApplyPatch(dst *m.ClassOfferingModel) error {
	if p.ClassOfferingsCoachID != nil {
		idp, err := uuidPtrFromString(p.ClassOfferingsCoachID)
		if err != nil {
			return fmt.Errorf("class_offerings_coach_id: %w", err)
		}
		dst.ClassOfferingsCoachID = idp
	}
	if p.ClassOfferingsStatus != nil {
		switch *p.ClassOfferingsStatus {
		case m.OfferingUpcoming, m.OfferingOngoing, m.OfferingCompleted, m.OfferingCancelled:
			dst.ClassOfferingsStatus = *p.ClassOfferingsStatus
		default:
			return errors.New("invalid class_offerings_status")
		}
	}
	if p.ClassOfferingsCapacity != nil {
		dst.ClassOfferingsCapacity = *p.ClassOfferingsCapacity
	}
	return nil
}

/* =======================================================
   Response DTO
   ======================================================= */

type ClassOfferingResponse struct {
	ClassOfferingID         uuid.UUID         `json:"class_offering_id"`
	ClassOfferingsSchoolID  uuid.UUID         `json:"class_offerings_school_id"`
	ClassOfferingsCourseID  uuid.UUID         `json:"class_offerings_course_id"`
	ClassOfferingsSectionID uuid.UUID         `json:"class_offerings_section_id"`
	ClassOfferingsCoachID   *uuid.UUID        `json:"class_offerings_coach_id,omitempty"`
	ClassOfferingsStatus    m.OfferingStatus  `json:"class_offerings_status"`
	ClassOfferingsCapacity  int               `json:"class_offerings_capacity"`
	ClassOfferingsCreatedAt time.Time         `json:"class_offerings_created_at"`
	ClassOfferingsUpdatedAt time.Time         `json:"class_offerings_updated_at"`
	Schedule                *ScheduleResponse `json:"schedule,omitempty"`
}

func NewClassOfferingResponse(src *m.ClassOfferingModel) ClassOfferingResponse {
	return ClassOfferingResponse{
		ClassOfferingID:         src.ClassOfferingID,
		ClassOfferingsSchoolID:  src.ClassOfferingsSchoolID,
		ClassOfferingsCourseID:  src.ClassOfferingsCourseID,
		ClassOfferingsSectionID: src.ClassOfferingsSectionID,
		ClassOfferingsCoachID:   src.ClassOfferingsCoachID,
		ClassOfferingsStatus:    src.ClassOfferingsStatus,
		ClassOfferingsCapacity:  src.ClassOfferingsCapacity,
		ClassOfferingsCreatedAt: src.ClassOfferingsCreatedAt,
		ClassOfferingsUpdatedAt: src.ClassOfferingsUpdatedAt,
	}
}
