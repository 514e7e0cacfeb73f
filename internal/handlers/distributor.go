package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rainaarpit12/Sih-2025/internal/apperr"
	"github.com/rainaarpit12/Sih-2025/internal/logger"
	"github.com/rainaarpit12/Sih-2025/internal/services"
	"github.com/rainaarpit12/Sih-2025/internal/types"
)

type DistributorHandler interface {
	UpdateInfo(c *gin.Context)
	GetInfo(c *gin.Context)
	DeleteInfo(c *gin.Context)
	ProductDetails(c *gin.Context)
}

type distributorHandler struct {
	log            *logger.Logger
	distributorSvc services.DistributorService
}

func NewDistributorHandler(baseLog *logger.Logger, distributorSvc services.DistributorService) DistributorHandler {
	return &distributorHandler{
		log:            baseLog.With("handler", "distributor"),
		distributorSvc: distributorSvc,
	}
}

func (h *distributorHandler) UpdateInfo(c *gin.Context) {
	productID := c.Param("productId")

	var payload types.DistributorInfo
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, apperr.Validation("invalid request body"), nil)
		return
	}

	result, err := h.distributorSvc.UpdateInfo(c.Request.Context(), nil, productID, &payload)
	if err != nil {
		RespondError(c, err, nil)
		return
	}

	body := gin.H{
		"distributorInfo":   result.DistributorInfo,
		"blockchainUpdated": result.BlockchainUpdated,
		"message":           "Distributor information updated successfully",
		"success":           true,
	}
	if len(result.Warnings) > 0 {
		body["warnings"] = result.Warnings
	}
	RespondOK(c, body)
}

func (h *distributorHandler) GetInfo(c *gin.Context) {
	productID := c.Param("productId")

	info, err := h.distributorSvc.GetInfo(c.Request.Context(), nil, productID)
	if err != nil {
		RespondError(c, err, nil)
		return
	}
	RespondOK(c, gin.H{
		"distributorInfo": info,
		"success":         true,
	})
}

func (h *distributorHandler) DeleteInfo(c *gin.Context) {
	productID := c.Param("productId")

	if err := h.distributorSvc.DeleteInfo(c.Request.Context(), nil, productID); err != nil {
		RespondError(c, err, nil)
		return
	}
	RespondOK(c, gin.H{
		"message": "Distributor information deleted successfully",
		"success": true,
	})
}

func (h *distributorHandler) ProductDetails(c *gin.Context) {
	encryptedCode := c.Param("encryptedCode")

	details, err := h.distributorSvc.ProductDetails(c.Request.Context(), nil, encryptedCode)
	if err != nil {
		RespondError(c, err, gin.H{"verified": false})
		return
	}

	body := gin.H{
		"product":             details.Verification.Product,
		"success":             true,
		"verified":            true,
		"transactionHash":     details.Verification.TransactionHash,
		"blockchainTimestamp": details.Verification.Timestamp,
		"hasDistributorInfo":  details.HasCustodyInfo,
	}
	if details.DistributorInfo != nil {
		body["distributorInfo"] = details.DistributorInfo
	}
	RespondOK(c, body)
}
