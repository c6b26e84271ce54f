package application

import "context"

type ApplicationService interface {
	// Submit stores a pending application and returns its id.
	Submit(ctx context.Context, req SubmitRequest) (SubmitResponse, error)

	// UpdateStatus overwrites the status of an application found by id or,
	// for numeric ids, by its surrogate key.
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (UpdateStatusResponse, error)

	// List returns the admin application list.
	List(ctx context.Context, req ListRequest) ([]ApplicationRow, error)

	// Detail returns one admin list row.
	Detail(ctx context.Context, id string) (ApplicationRow, error)

	// All returns every stored application, newest first.
	All(ctx context.Context) ([]ApplicationRecord, error)

	// Recent returns the employee's recent submissions, newest first.
	Recent(ctx context.Context, employeeID string) ([]RecentApplication, error)

	// LeaveSchedule returns leave-like applications overlapping a window.
	LeaveSchedule(ctx context.Context, req ScheduleRequest) ([]ScheduleItem, error)
}
