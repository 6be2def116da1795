package usecases_port

import "context"

type GetDistrictsUseCasePort interface {
	Execute(ctx context.Context) ([]string, error)
}
