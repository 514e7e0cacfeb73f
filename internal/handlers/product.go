package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rainaarpit12/Sih-2025/internal/apperr"
	"github.com/rainaarpit12/Sih-2025/internal/logger"
	"github.com/rainaarpit12/Sih-2025/internal/services"
	"github.com/rainaarpit12/Sih-2025/internal/types"
)

type ProductHandler interface {
	Register(c *gin.Context)
	Verify(c *gin.Context)
	GetProduct(c *gin.Context)
	DebugProducts(c *gin.Context)
	DebugLedgerRecords(c *gin.Context)
}

type productHandler struct {
	log        *logger.Logger
	productSvc services.ProductService
}

func NewProductHandler(baseLog *logger.Logger, productSvc services.ProductService) ProductHandler {
	return &productHandler{
		log:        baseLog.With("handler", "product"),
		productSvc: productSvc,
	}
}

func (h *productHandler) Register(c *gin.Context) {
	var product types.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		RespondError(c, apperr.Validation("invalid request body"), nil)
		return
	}

	result, err := h.productSvc.Register(c.Request.Context(), nil, &product)
	if err != nil {
		RespondError(c, err, nil)
		return
	}

	message := "Product registered successfully"
	if !result.BlockchainUpdated {
		message = "Product registered; blockchain update pending"
	}
	body := gin.H{
		"product":           result.Product,
		"encryptedCode":     result.EncryptedCode,
		"qrCode":            result.QRCode,
		"blockchainUpdated": result.BlockchainUpdated,
		"message":           message,
		"success":           true,
	}
	if len(result.Warnings) > 0 {
		body["warnings"] = result.Warnings
	}
	c.JSON(http.StatusOK, body)
}

func (h *productHandler) Verify(c *gin.Context) {
	encryptedCode := c.Param("encryptedCode")

	result, err := h.productSvc.Verify(c.Request.Context(), nil, encryptedCode)
	if err != nil {
		RespondError(c, err, gin.H{"verified": false})
		return
	}

	RespondOK(c, gin.H{
		"product":             result.Product,
		"success":             true,
		"verified":            true,
		"message":             "Product verified successfully",
		"transactionHash":     result.TransactionHash,
		"blockchainTimestamp": result.Timestamp,
	})
}

func (h *productHandler) GetProduct(c *gin.Context) {
	productID := c.Param("productId")

	product, err := h.productSvc.GetByProductID(c.Request.Context(), nil, productID)
	if err != nil {
		RespondError(c, err, nil)
		return
	}
	RespondOK(c, gin.H{
		"product": product,
		"success": true,
	})
}

func (h *productHandler) DebugProducts(c *gin.Context) {
	products, err := h.productSvc.ListProducts(c.Request.Context(), nil)
	if err != nil {
		RespondError(c, err, nil)
		return
	}
	RespondOK(c, gin.H{
		"products": products,
		"count":    len(products),
	})
}

func (h *productHandler) DebugLedgerRecords(c *gin.Context) {
	records, err := h.productSvc.ListLedgerRecords(c.Request.Context(), nil)
	if err != nil {
		RespondError(c, err, nil)
		return
	}
	RespondOK(c, gin.H{
		"records": records,
		"count":   len(records),
	})
}
