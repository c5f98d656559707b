// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package century

import "context"

// Repository is the read-side contract for the century reference table.
type Repository interface {
	ListCenturies(ctx context.Context) ([]*Century, error)
	GetCentury(ctx context.Context, id int) (*Century, error)
}
