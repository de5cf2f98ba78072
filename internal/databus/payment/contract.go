//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package payment

import (
	"context"

	"github.com/s21platform/livestream-service/internal/model"
)

type DBRepo interface {
	AddSale(ctx context.Context, sale *model.Sale) error
}
