package courses

import (
	pkgvalidator "github.com/durvibangera/sorte/internal/pkg/validator"
	apperrors "github.com/durvibangera/sorte/pkg/errors"
)

func ValidateCreateCourse(req *CreateCourseRequest) error {
	if pkgvalidator.IsBlank(req.Name) {
		return apperrors.Validation("Course name is required")
	}
	if pkgvalidator.IsBlank(req.Instructor) {
		return apperrors.Validation("Instructor is required")
	}
	if pkgvalidator.IsBlank(req.Location) {
		return apperrors.Validation("Location is required")
	}
	if req.Color != "" && !pkgvalidator.IsValidColor(req.Color) {
		return apperrors.Validation("Invalid color")
	}
	return nil
}

// ValidateUpdateCourse rejects fields that were sent but blank
func ValidateUpdateCourse(req *UpdateCourseRequest) error {
	if req.Name != nil && pkgvalidator.IsBlank(*req.Name) {
		return apperrors.Validation("Course name cannot be empty")
	}
	if req.Instructor != nil && pkgvalidator.IsBlank(*req.Instructor) {
		return apperrors.Validation("Instructor cannot be empty")
	}
	if req.Location != nil && pkgvalidator.IsBlank(*req.Location) {
		return apperrors.Validation("Location cannot be empty")
	}
	if req.Color != nil && !pkgvalidator.IsValidColor(*req.Color) {
		return apperrors.Validation("Color cannot be empty")
	}
	return nil
}
