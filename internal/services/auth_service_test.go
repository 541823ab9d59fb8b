package services

import (
	"errors"
	"testing"
	"time"

	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/roster"
)

func TestParseCredentials(t *testing.T) {
	creds := ParseCredentials("admin:admin, THT1001:1234,broken,:nouser,THT1002:a:b")
	if creds["admin"] != "admin" || creds["THT1001"] != "1234" {
		t.Errorf("Unexpected credentials %v", creds)
	}
	if creds["THT1002"] != "a:b" {
		t.Errorf("Expected password to keep colons, got %q", creds["THT1002"])
	}
	if len(creds) != 3 {
		t.Errorf("Expected 3 entries, got %d", len(creds))
	}
}

func TestAuthService_Login(t *testing.T) {
	signer := common.NewTokenSigner([]byte("secret"), time.Hour)
	svc := NewAuthService(ParseCredentials("admin:admin,THT1001:1234,THT1004:pw"), roster.Default(), signer)

	resp, err := svc.Login("THT1001", "1234")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	claims, err := signer.Validate(resp.Token)
	if err != nil {
		t.Fatalf("Expected valid token, got %v", err)
	}
	if claims.Username != "THT1001" || claims.Role != string(constants.RoleStaff) {
		t.Errorf("Unexpected claims %+v", claims)
	}

	if resp, _ := svc.Login("THT1004", "pw"); resp == nil || resp.Role != string(constants.RoleRegular) {
		t.Errorf("Expected regular role, got %+v", resp)
	}
	if resp, _ := svc.Login("admin", "admin"); resp == nil || resp.Role != string(constants.RoleStaff) {
		t.Errorf("Expected admin to be staff, got %+v", resp)
	}
}

func TestAuthService_RejectsWrongPassword(t *testing.T) {
	svc := NewAuthService(ParseCredentials("THT1001:1234"), roster.Default(), common.NewTokenSigner([]byte("secret"), time.Hour))

	if _, err := svc.Login("THT1001", "4321"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected invalid credentials, got %v", err)
	}
	if _, err := svc.Login("nobody", "1234"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected invalid credentials, got %v", err)
	}
	var verr *ValidationError
	if _, err := svc.Login("THT1001", ""); !errors.As(err, &verr) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestAuthService_UnknownUserNeverMatchesPlaceholder(t *testing.T) {
	svc := NewAuthService(ParseCredentials("THT1001:1234"), roster.Default(), common.NewTokenSigner([]byte("secret"), time.Hour))

	if _, err := svc.Login("nobody", unknownUserPassword); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected invalid credentials, got %v", err)
	}
}
