package transition

import "errors"

// ErrInvalidTarget is returned by ScheduleSwitch when the target fails validation.
var ErrInvalidTarget = errors.New("transition: invalid target")
