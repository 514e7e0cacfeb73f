package app

import (
	"time"

	"github.com/rainaarpit12/Sih-2025/internal/ledger"
	"github.com/rainaarpit12/Sih-2025/internal/logger"
	"github.com/rainaarpit12/Sih-2025/internal/utils"
)

type Config struct {
	Port            string
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	AuthEnforced    bool

	// LedgerMode selects "simulated" or "rpc".
	LedgerMode string
	RPC        ledger.RPCConfig
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	authEnforced := utils.GetEnv("AUTH_ENFORCED", "false", log) == "true"

	ledgerMode := utils.GetEnv("LEDGER_MODE", "simulated", log)
	rpcTimeoutSeconds := utils.GetEnvAsInt("LEDGER_RPC_TIMEOUT", 15, log)

	return Config{
		Port:            port,
		JWTSecretKey:    jwtSecretKey,
		AccessTokenTTL:  time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL: time.Duration(refreshTokenTTLSeconds) * time.Second,
		AuthEnforced:    authEnforced,
		LedgerMode:      ledgerMode,
		RPC: ledger.RPCConfig{
			NodeURL:         utils.GetEnv("LEDGER_RPC_URL", "", log),
			ContractAddress: utils.GetEnv("LEDGER_CONTRACT_ADDRESS", "", log),
			PrivateKey:      utils.GetEnv("LEDGER_PRIVATE_KEY", "", log),
			Timeout:         time.Duration(rpcTimeoutSeconds) * time.Second,
		},
	}
}
