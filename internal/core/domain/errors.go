package domain

import "errors"

var ErrProjectNotFound = errors.New("project not found")
var ErrTaskNotFound = errors.New("task not found")
var ErrEventNotFound = errors.New("calendar event not found")
var ErrClientNotFound = errors.New("client not found")
var ErrSubClientNotFound = errors.New("sub-client not found")
var ErrUserNotFound = errors.New("user not found")
var ErrCompanyNotFound = errors.New("company not found")
var ErrTaskTypeNotFound = errors.New("task type not found")
var ErrInvalidStatus = errors.New("invalid status")
