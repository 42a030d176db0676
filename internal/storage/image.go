package storage

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// MaxImageSize limita o tamanho de imagens enviadas pelo painel (5 MB).
const MaxImageSize = 5 << 20

// ErrImageTooLarge indica arquivo acima do limite permitido.
var ErrImageTooLarge = errors.New("storage: imagem acima de 5MB")

// ErrUnsupportedImage indica formato fora da lista permitida.
var ErrUnsupportedImage = errors.New("storage: formato de imagem não suportado")

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ValidateImage confere tamanho e tipo do arquivo e devolve o MIME
// detectado pelo conteúdo, ignorando o Content-Type declarado.
func ValidateImage(body []byte) (string, error) {
	if len(body) == 0 {
		return "", errors.New("storage: arquivo vazio")
	}
	if len(body) > MaxImageSize {
		return "", ErrImageTooLarge
	}

	contentType := http.DetectContentType(body)
	if semicolon := strings.Index(contentType, ";"); semicolon >= 0 {
		contentType = contentType[:semicolon]
	}
	contentType = strings.TrimSpace(strings.ToLower(contentType))

	if _, ok := imageExtensions[contentType]; !ok {
		return "", ErrUnsupportedImage
	}

	return contentType, nil
}

// ImageKey monta a chave do objeto para uma imagem de presente.
func ImageKey(contentType string) string {
	ext, ok := imageExtensions[strings.ToLower(contentType)]
	if !ok {
		ext = ".bin"
	}
	return fmt.Sprintf("gifts/%d%s", time.Now().UnixNano(), ext)
}
