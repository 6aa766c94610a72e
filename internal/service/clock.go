package service

import "time"

// Clock supplies the reference instant for every accrual computation.
type Clock interface {
	Now() time.Time
}
