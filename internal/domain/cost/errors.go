package cost

import "errors"

var (
	ErrOperationalCostNotFound = errors.New("operational cost not found")
	ErrFixedCostNotFound       = errors.New("fixed cost not found")
)
