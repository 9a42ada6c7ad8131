package handlers

import (
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/petcareagenda/petcare-scheduler/internal/httperr"
	"github.com/petcareagenda/petcare-scheduler/internal/httpresp"
	"github.com/petcareagenda/petcare-scheduler/internal/storage"
)

// maxUploadBytes limita o corpo aceito antes da normalização.
const maxUploadBytes = 5 << 20

type UploadHandler struct {
	storage storage.ObjectStorage
	log     *zap.Logger
}

func NewUploadHandler(store storage.ObjectStorage, log *zap.Logger) *UploadHandler {
	return &UploadHandler{storage: store, log: log}
}

// UploadPetPhoto recebe a imagem do formulário, normaliza para webp e
// grava no bucket com chave própria.
func (h *UploadHandler) UploadPetPhoto(c *gin.Context) {
	h.upload(c, "pet-photos")
}

func (h *UploadHandler) UploadBusinessLogo(c *gin.Context) {
	h.upload(c, "business-logo")
}

func (h *UploadHandler) upload(c *gin.Context, prefix string) {
	file, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo obrigatório.")
		return
	}
	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Arquivo acima de 5MB.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler arquivo.")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil || len(data) > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Arquivo acima de 5MB.")
		return
	}

	normalized, err := storage.NormalizeImage(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Arquivo não é uma imagem válida.")
		return
	}

	key := fmt.Sprintf("%s/%s.webp", prefix, uuid.NewString())

	if err := h.storage.Put(c.Request.Context(), key, "image/webp", normalized); err != nil {
		h.log.Error("object storage put failed",
			zap.String("key", key),
			zap.Error(err),
		)
		httperr.Unavailable(c, "storage_unavailable", "Armazenamento indisponível.")
		return
	}

	httpresp.OK(c, gin.H{
		"key": key,
		"url": "/api/files/" + key,
	})
}

// ServeFile devolve o objeto gravado; a chave vem no restante do path.
func (h *UploadHandler) ServeFile(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		httperr.BadRequest(c, "missing_key", "Chave obrigatória.")
		return
	}

	body, contentType, err := h.storage.Get(c.Request.Context(), key)
	if err != nil {
		httperr.NotFound(c, "file_not_found", "Arquivo não encontrado.")
		return
	}
	defer body.Close()

	c.Header("Cache-Control", "public, max-age=86400")
	c.DataFromReader(200, -1, contentType, body, nil)
}
