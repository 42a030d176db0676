package storage

import (
	"context"
	"errors"
)

// ErrNotConfigured sinaliza ausência de backend de armazenamento.
var ErrNotConfigured = errors.New("storage: uploader não configurado")

// NoopUploader devolve erro indicando que não há backend configurado.
type NoopUploader struct{}

// Upload sempre retorna erro, sinalizando que o recurso não está disponível.
func (NoopUploader) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	return nil, ErrNotConfigured
}

// Delete sempre retorna erro, sinalizando que o recurso não está disponível.
func (NoopUploader) Delete(ctx context.Context, key string) error {
	return ErrNotConfigured
}
