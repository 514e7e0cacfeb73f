package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rainaarpit12/Sih-2025/internal/apperr"
	"github.com/rainaarpit12/Sih-2025/internal/logger"
	"github.com/rainaarpit12/Sih-2025/internal/services"
	"github.com/rainaarpit12/Sih-2025/internal/types"
)

type RetailerHandler interface {
	UpdateInfo(c *gin.Context)
	GetInfo(c *gin.Context)
	ProductDetails(c *gin.Context)
}

type retailerHandler struct {
	log         *logger.Logger
	retailerSvc services.RetailerService
}

func NewRetailerHandler(baseLog *logger.Logger, retailerSvc services.RetailerService) RetailerHandler {
	return &retailerHandler{
		log:         baseLog.With("handler", "retailer"),
		retailerSvc: retailerSvc,
	}
}

func (h *retailerHandler) UpdateInfo(c *gin.Context) {
	productID := c.Param("productId")

	var payload types.RetailerInfo
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, apperr.Validation("invalid request body"), nil)
		return
	}

	result, err := h.retailerSvc.UpdateInfo(c.Request.Context(), nil, productID, &payload)
	if err != nil {
		RespondError(c, err, nil)
		return
	}

	body := gin.H{
		"retailerInfo":      result.RetailerInfo,
		"blockchainUpdated": result.BlockchainUpdated,
		"message":           "Retailer information updated successfully",
		"success":           true,
	}
	if len(result.Warnings) > 0 {
		body["warnings"] = result.Warnings
	}
	RespondOK(c, body)
}

func (h *retailerHandler) GetInfo(c *gin.Context) {
	productID := c.Param("productId")

	info, err := h.retailerSvc.GetInfo(c.Request.Context(), nil, productID)
	if err != nil {
		RespondError(c, err, nil)
		return
	}
	RespondOK(c, gin.H{
		"retailerInfo": info,
		"success":      true,
	})
}

func (h *retailerHandler) ProductDetails(c *gin.Context) {
	encryptedCode := c.Param("encryptedCode")

	details, err := h.retailerSvc.ProductDetails(c.Request.Context(), nil, encryptedCode)
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
		"hasRetailerInfo":     details.HasCustodyInfo,
	}
	if details.RetailerInfo != nil {
		body["retailerInfo"] = details.RetailerInfo
	}
	RespondOK(c, body)
}
