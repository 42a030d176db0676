package storage

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// cabeçalhos mínimos reconhecidos pelo sniffing de conteúdo
var (
	pngHeader  = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	jpegHeader = []byte{0xff, 0xd8, 0xff, 0xe0}
	gifHeader  = []byte("GIF89a")
)

func TestValidateImageAceitaFormatosPermitidos(t *testing.T) {
	cases := []struct {
		name string
		body []byte
		want string
	}{
		{"png", pngHeader, "image/png"},
		{"jpeg", jpegHeader, "image/jpeg"},
		{"gif", gifHeader, "image/gif"},
		{"webp", append([]byte("RIFF\x00\x00\x00\x00WEBP"), []byte("VP8 ")...), "image/webp"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateImage(tc.body)
			if err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			if got != tc.want {
				t.Errorf("tipo = %q, esperado %q", got, tc.want)
			}
		})
	}
}

func TestValidateImageRejeitaOutrosTipos(t *testing.T) {
	if _, err := ValidateImage([]byte("%PDF-1.7 ...")); !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("PDF deveria ser rejeitado, obtido %v", err)
	}
	if _, err := ValidateImage(nil); err == nil {
		t.Error("corpo vazio deveria ser rejeitado")
	}
}

func TestValidateImageRejeitaAcimaDoLimite(t *testing.T) {
	big := append(bytes.Clone(pngHeader), make([]byte, MaxImageSize)...)
	if _, err := ValidateImage(big); !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("esperado ErrImageTooLarge, obtido %v", err)
	}
}

func TestImageKey(t *testing.T) {
	key := ImageKey("image/png")
	if !strings.HasPrefix(key, "gifts/") || !strings.HasSuffix(key, ".png") {
		t.Errorf("chave inesperada: %q", key)
	}

	if key := ImageKey("application/pdf"); !strings.HasSuffix(key, ".bin") {
		t.Errorf("tipo desconhecido deveria cair em .bin: %q", key)
	}
}
