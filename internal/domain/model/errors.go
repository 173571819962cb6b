package model

import "errors"

var (
	ErrInvalidCategory   = errors.New("payroll: invalid employment type")
	ErrNegativeField     = errors.New("payroll: value cannot be negative")
	ErrNonFiniteField    = errors.New("payroll: value must be a finite number")
	ErrInvalidHours      = errors.New("payroll: invalid working hours for part-time worker")
	ErrCapacityExceeded  = errors.New("payroll: worker list is full")
	ErrUnknownJobTitle   = errors.New("payroll: unknown job title")
	ErrInvalidMenuChoice = errors.New("payroll: invalid menu choice")
)
