package event

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type stubEventRepo struct {
	info *Info
}

func (s *stubEventRepo) Get(ctx context.Context) (*Info, error) {
	if s.info == nil {
		return nil, ErrNotFound
	}
	i := *s.info
	return &i, nil
}

func (s *stubEventRepo) Upsert(ctx context.Context, input UpdateInput) (*Info, error) {
	s.info = &Info{
		ID:             uuid.New(),
		EventDate:      input.EventDate,
		EventTime:      input.EventTime,
		EventLocation:  input.EventLocation,
		AdditionalInfo: input.AdditionalInfo,
	}
	i := *s.info
	return &i, nil
}

func TestFormatDateBR(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2026-10-17", "17/10/2026"},
		{"17 de outubro", "17 de outubro"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := FormatDateBR(tc.in); got != tc.want {
			t.Errorf("FormatDateBR(%q) = %q, esperado %q", tc.in, got, tc.want)
		}
	}
}

func TestUpdateValidaCamposObrigatorios(t *testing.T) {
	repo := &stubEventRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	cases := []struct {
		name  string
		input UpdateInput
	}{
		{"sem data", UpdateInput{EventTime: "16h", EventLocation: "Salão"}},
		{"sem horário", UpdateInput{EventDate: "2026-10-17", EventLocation: "Salão"}},
		{"sem local", UpdateInput{EventDate: "2026-10-17", EventTime: "16h"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Update(ctx, tc.input)
			var validation *ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("esperado erro de validação, obtido %v", err)
			}
		})
	}

	if repo.info != nil {
		t.Error("entrada inválida não deveria gravar")
	}
}

func TestUpdateEGetFormatamData(t *testing.T) {
	repo := &stubEventRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	extra := "   "
	updated, err := svc.Update(ctx, UpdateInput{
		EventDate:      "2026-10-17",
		EventTime:      "16h",
		EventLocation:  "Salão de Festas",
		AdditionalInfo: &extra,
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if updated.EventDateFormatted != "17/10/2026" {
		t.Errorf("data formatada = %q", updated.EventDateFormatted)
	}
	if updated.AdditionalInfo != nil {
		t.Error("informação adicional em branco deveria virar nil")
	}

	got, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if got.EventDateFormatted != "17/10/2026" {
		t.Errorf("data formatada na leitura = %q", got.EventDateFormatted)
	}
}

func TestGetSemRegistro(t *testing.T) {
	svc := NewService(&stubEventRepo{})
	if _, err := svc.Get(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("esperado ErrNotFound, obtido %v", err)
	}
}
