package tasks

import (
	pkgvalidator "github.com/durvibangera/sorte/internal/pkg/validator"
	apperrors "github.com/durvibangera/sorte/pkg/errors"
)

func ValidateCreateTask(req *CreateTaskRequest) error {
	if pkgvalidator.IsBlank(req.Title) {
		return apperrors.Validation("Title is required")
	}
	if req.DueDate == nil || req.DueDate.IsZero() {
		return apperrors.Validation("Due date is required")
	}
	if pkgvalidator.IsBlank(req.CourseID) {
		return apperrors.Validation("Course is required")
	}
	return nil
}

func ValidateUpdateTask(req *UpdateTaskRequest) error {
	if req.Title != nil && pkgvalidator.IsBlank(*req.Title) {
		return apperrors.Validation("Title cannot be empty")
	}
	if req.DueDate != nil && req.DueDate.IsZero() {
		return apperrors.Validation("Due date cannot be empty")
	}
	return nil
}
