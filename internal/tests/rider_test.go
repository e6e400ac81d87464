package tests

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"cabride/internal/service"
)

func TestRiderRegister(t *testing.T) {
	t.Parallel()

	riderRepo := NewMockRiderRepository()
	svc := service.NewRiderService(riderRepo, zap.NewNop())

	rider, err := svc.Register(context.Background(), service.RegisterRiderRequest{
		Name:  "Jo",
		Email: "jo@example.com",
		Phone: "9876543210",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rider.ID == "" {
		t.Error("expected an assigned rider ID")
	}
	if rider.CreatedAt.IsZero() {
		t.Error("expected created time to be set")
	}
}

func TestRiderRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	riderRepo := NewMockRiderRepository()
	svc := service.NewRiderService(riderRepo, zap.NewNop())

	ctx := context.Background()
	if _, err := svc.Register(ctx, service.RegisterRiderRequest{Name: "Jo", Email: "jo@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.Register(ctx, service.RegisterRiderRequest{Name: "Another Jo", Email: "jo@example.com"})
	if !errors.Is(err, service.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRiderRegister_Validation(t *testing.T) {
	t.Parallel()

	svc := service.NewRiderService(NewMockRiderRepository(), zap.NewNop())

	if _, err := svc.Register(context.Background(), service.RegisterRiderRequest{Email: "x@example.com"}); !errors.Is(err, service.ErrInvalidRiderName) {
		t.Errorf("expected ErrInvalidRiderName, got %v", err)
	}
	if _, err := svc.Register(context.Background(), service.RegisterRiderRequest{Name: "Jo"}); !errors.Is(err, service.ErrInvalidRiderEmail) {
		t.Errorf("expected ErrInvalidRiderEmail, got %v", err)
	}
}
