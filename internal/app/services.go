package app

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/rainaarpit12/Sih-2025/internal/ledger"
	"github.com/rainaarpit12/Sih-2025/internal/logger"
	"github.com/rainaarpit12/Sih-2025/internal/services"
)

type Services struct {
	Auth        services.AuthService
	QRCode      services.QRCodeService
	Product     services.ProductService
	Distributor services.DistributorService
	Retailer    services.RetailerService
	Ledger      ledger.Client
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) (Services, error) {
	log.Info("Wiring services...")

	ledgerClient, err := wireLedgerClient(cfg, log)
	if err != nil {
		return Services{}, err
	}

	qrService := services.NewQRCodeService(log)
	productService := services.NewProductService(log, reposet.Product, reposet.LedgerRecord, ledgerClient, qrService)
	distributorService := services.NewDistributorService(log, reposet.DistributorInfo, productService, ledgerClient)
	retailerService := services.NewRetailerService(log, reposet.RetailerInfo, productService, ledgerClient)
	authService := services.NewAuthService(db, log, reposet.User, reposet.UserToken, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	return Services{
		Auth:        authService,
		QRCode:      qrService,
		Product:     productService,
		Distributor: distributorService,
		Retailer:    retailerService,
		Ledger:      ledgerClient,
	}, nil
}

func wireLedgerClient(cfg Config, log *logger.Logger) (ledger.Client, error) {
	switch strings.ToLower(cfg.LedgerMode) {
	case "", "simulated":
		return ledger.NewSimulatedClient(log), nil
	case "rpc":
		if cfg.RPC.NodeURL == "" {
			return nil, fmt.Errorf("LEDGER_MODE=rpc requires LEDGER_RPC_URL")
		}
		return ledger.NewRPCClient(cfg.RPC, log), nil
	default:
		return nil, fmt.Errorf("unknown LEDGER_MODE %q", cfg.LedgerMode)
	}
}
