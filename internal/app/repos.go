package app

import (
	"gorm.io/gorm"

	"github.com/rainaarpit12/Sih-2025/internal/logger"
	"github.com/rainaarpit12/Sih-2025/internal/repos"
)

type Repos struct {
	User            repos.UserRepo
	UserToken       repos.UserTokenRepo
	Product         repos.ProductRepo
	LedgerRecord    repos.LedgerRecordRepo
	DistributorInfo repos.DistributorInfoRepo
	RetailerInfo    repos.RetailerInfoRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:            repos.NewUserRepo(db, log),
		UserToken:       repos.NewUserTokenRepo(db, log),
		Product:         repos.NewProductRepo(db, log),
		LedgerRecord:    repos.NewLedgerRecordRepo(db, log),
		DistributorInfo: repos.NewDistributorInfoRepo(db, log),
		RetailerInfo:    repos.NewRetailerInfoRepo(db, log),
	}
}
