package repository

import (
	"solar-marketplace/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Account  AccountRepository
	Listing  ListingRepository
	Shop     ShopRepository
	Engineer EngineerRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Account:  NewAccountRepository(db, log),
		Listing:  NewListingRepository(db, log),
		Shop:     NewShopRepository(db, log),
		Engineer: NewEngineerRepository(db, log),
	}
}
