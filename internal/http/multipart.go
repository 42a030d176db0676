package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

func getFirstFile(form *multipart.Form, field string) (*multipart.FileHeader, error) {
	if form == nil {
		return nil, errors.New("arquivo ausente")
	}
	files := form.File[field]
	if len(files) == 0 {
		return nil, errors.New("arquivo ausente")
	}
	return files[0], nil
}

func readMultipartFile(header *multipart.FileHeader, limit int64) ([]byte, string, error) {
	file, err := header.Open()
	if err != nil {
		return nil, "", fmt.Errorf("falha ao abrir arquivo: %w", err)
	}
	defer file.Close()

	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, io.LimitReader(file, limit)); err != nil {
		return nil, "", fmt.Errorf("falha ao ler arquivo: %w", err)
	}

	if int64(buf.Len()) >= limit {
		return nil, "", fmt.Errorf("arquivo excede %d bytes", limit-1)
	}

	contentType := header.Header.Get("Content-Type")
	if strings.TrimSpace(contentType) == "" {
		contentType = http.DetectContentType(buf.Bytes())
	}

	return buf.Bytes(), contentType, nil
}
