package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/petcareagenda/petcare-scheduler/internal/config"
	"github.com/petcareagenda/petcare-scheduler/internal/httperr"
	"github.com/petcareagenda/petcare-scheduler/internal/httpresp"
	"github.com/petcareagenda/petcare-scheduler/internal/otp"
)

const otpTTL = 5 * time.Minute

type OTPHandler struct {
	store  otp.CodeStore
	config *config.Config
	log    *zap.Logger
}

func NewOTPHandler(store otp.CodeStore, cfg *config.Config, log *zap.Logger) *OTPHandler {
	return &OTPHandler{store: store, config: cfg, log: log}
}

type SendOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// Send gera o código de verificação e o registra com expiração. O envio
// de fato (SMS/WhatsApp) fica no log; em desenvolvimento o código volta
// na resposta para facilitar o teste do fluxo.
func (h *OTPHandler) Send(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	code, err := otp.GenerateCode(6)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_code", "Erro ao gerar código.")
		return
	}

	if err := h.store.Set(c.Request.Context(), req.Phone, code, otpTTL); err != nil {
		h.log.Error("otp store set failed", zap.Error(err))
		httperr.Unavailable(c, "otp_store_unavailable", "Serviço indisponível.")
		return
	}

	h.log.Info("verification code issued",
		zap.String("phone", req.Phone),
	)

	if !h.config.IsProduction() {
		c.JSON(200, gin.H{"success": true, "code": code})
		return
	}

	httpresp.Success(c, "Código enviado.")
}

func (h *OTPHandler) Verify(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ok, err := h.store.Verify(c.Request.Context(), req.Phone, req.Code)
	if err != nil {
		h.log.Error("otp store verify failed", zap.Error(err))
		httperr.Unavailable(c, "otp_store_unavailable", "Serviço indisponível.")
		return
	}
	if !ok {
		httperr.BadRequest(c, "invalid_or_expired_code", "Código inválido ou expirado.")
		return
	}

	httpresp.Success(c, "Telefone verificado.")
}
