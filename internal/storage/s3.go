package storage

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// S3Config descreve parâmetros necessários para assinar requisições compatíveis com S3.
type S3Config struct {
	Endpoint     string
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	PublicDomain string
	HTTPClient   *http.Client
}

// S3Uploader implementa Upload e Delete usando assinatura SigV4.
type S3Uploader struct {
	cfg    S3Config
	client *http.Client
}

// NewS3Uploader cria um uploader pronto para falar com um endpoint S3/R2/MinIO.
func NewS3Uploader(cfg S3Config) (*S3Uploader, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	return &S3Uploader{cfg: cfg, client: client}, nil
}

// Upload envia o arquivo para o bucket configurado e retorna URL pública (se disponível).
func (u *S3Uploader) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	if strings.TrimSpace(input.Key) == "" {
		return nil, errors.New("storage: chave do objeto obrigatória")
	}
	if len(input.Body) == 0 {
		return nil, errors.New("storage: corpo vazio")
	}

	contentType := strings.TrimSpace(input.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	escapedKey, targetURL := u.objectURL(input.Key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, targetURL, bytes.NewReader(input.Body))
	if err != nil {
		return nil, err
	}

	payloadHash := sha256.Sum256(input.Body)
	payloadHex := hex.EncodeToString(payloadHash[:])

	req.Header.Set("Content-Type", contentType)
	req.ContentLength = int64(len(input.Body))
	if strings.TrimSpace(input.CacheControl) != "" {
		req.Header.Set("Cache-Control", input.CacheControl)
	}
	req.Header.Set("x-amz-content-sha256", payloadHex)
	req.Header.Set("Content-Length", fmt.Sprintf("%d", len(input.Body)))

	if err := signS3Request(req, u.cfg, payloadHex, time.Now().UTC()); err != nil {
		return nil, err
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("storage: upload falhou (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	etag := strings.Trim(resp.Header.Get("ETag"), "\"")

	publicURL := targetURL
	if strings.TrimSpace(u.cfg.PublicDomain) != "" {
		publicURL = fmt.Sprintf("%s/%s", strings.TrimRight(u.cfg.PublicDomain, "/"), escapedKey)
	}

	return &UploadResult{URL: publicURL, ETag: etag}, nil
}

// Delete remove o objeto do bucket. Objeto inexistente não é erro.
func (u *S3Uploader) Delete(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("storage: chave do objeto obrigatória")
	}

	_, targetURL := u.objectURL(key)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, targetURL, nil)
	if err != nil {
		return err
	}

	emptyHash := sha256.Sum256(nil)
	payloadHex := hex.EncodeToString(emptyHash[:])
	req.Header.Set("x-amz-content-sha256", payloadHex)

	if err := signS3Request(req, u.cfg, payloadHex, time.Now().UTC()); err != nil {
		return err
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("storage: remoção falhou (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}

// KeyFromPublicURL extrai a chave do objeto a partir da URL pública
// gravada no banco. Retorna vazio quando a URL não pertence ao bucket.
func (u *S3Uploader) KeyFromPublicURL(publicURL string) string {
	trimmed := strings.TrimSpace(publicURL)
	if trimmed == "" {
		return ""
	}

	if domain := strings.TrimRight(strings.TrimSpace(u.cfg.PublicDomain), "/"); domain != "" {
		if rest, ok := strings.CutPrefix(trimmed, domain+"/"); ok {
			return unescapeKey(rest)
		}
	}

	prefix := fmt.Sprintf("%s/%s/", strings.TrimRight(u.cfg.Endpoint, "/"), u.cfg.Bucket)
	if rest, ok := strings.CutPrefix(trimmed, prefix); ok {
		return unescapeKey(rest)
	}

	return ""
}

func (u *S3Uploader) objectURL(key string) (escapedKey, targetURL string) {
	endpoint := strings.TrimRight(u.cfg.Endpoint, "/")
	escapedKey = (&url.URL{Path: strings.TrimLeft(key, "/")}).EscapedPath()
	targetURL = fmt.Sprintf("%s/%s/%s", endpoint, u.cfg.Bucket, escapedKey)
	return escapedKey, targetURL
}

func unescapeKey(escaped string) string {
	key, err := url.PathUnescape(escaped)
	if err != nil {
		return escaped
	}
	return key
}

func (cfg S3Config) validate() error {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return errors.New("storage: endpoint do S3 ausente")
	}
	if strings.TrimSpace(cfg.Region) == "" {
		return errors.New("storage: região do S3 ausente")
	}
	if strings.TrimSpace(cfg.Bucket) == "" {
		return errors.New("storage: bucket do S3 ausente")
	}
	if strings.TrimSpace(cfg.AccessKey) == "" {
		return errors.New("storage: access key ausente")
	}
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return errors.New("storage: secret key ausente")
	}
	if !strings.HasPrefix(cfg.Endpoint, "http://") && !strings.HasPrefix(cfg.Endpoint, "https://") {
		return errors.New("storage: endpoint deve incluir protocolo http/https")
	}
	return nil
}
