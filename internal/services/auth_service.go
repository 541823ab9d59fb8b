package services

import (
	"crypto/subtle"
	"errors"
	"strings"

	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/logging"
	"atn-virtual/crewcenter/internal/models/dtos"
	"atn-virtual/crewcenter/internal/roster"
)

const AdminUser = "admin"

var ErrInvalidCredentials = errors.New(constants.GetErrorMessage(constants.ErrCodeUnauthorized))

// ParseCredentials reads "user:pass,user:pass". Malformed pairs are skipped.
func ParseCredentials(s string) map[string]string {
	creds := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		user, pass, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || user == "" {
			continue
		}
		creds[user] = pass
	}
	return creds
}

// AuthService checks logins against the static credential table and hands
// out session tokens
type AuthService struct {
	credentials map[string]string
	roster      *roster.Roster
	signer      *common.TokenSigner
}

func NewAuthService(credentials map[string]string, r *roster.Roster, signer *common.TokenSigner) *AuthService {
	return &AuthService{credentials: credentials, roster: r, signer: signer}
}

// unknownUserPassword is compared against when the username doesn't exist
const unknownUserPassword = "\x00unknown-user"

// Login returns a signed token for a known user and password
func (s *AuthService) Login(username, password string) (*dtos.LoginResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, newValidationError("", "username and password are required")
	}

	expected, known := s.credentials[username]
	if !known {
		expected = unknownUserPassword
	}
	match := subtle.ConstantTimeCompare([]byte(password), []byte(expected)) == 1
	if !known || !match {
		reason := "wrong password"
		if !known {
			reason = "unknown user"
		}
		logging.Warn("Login rejected", "username", username, "reason", reason)
		return nil, ErrInvalidCredentials
	}

	role := s.RoleOf(username)
	token, expiresAt, err := s.signer.Issue(username, role.String())
	if err != nil {
		return nil, err
	}

	logging.Info("Login accepted", "username", username, "role", role)
	return &dtos.LoginResponse{Token: token, ExpiresAt: expiresAt, Role: role.String()}, nil
}

// RoleOf returns staff for the admin account and for staff pilots
func (s *AuthService) RoleOf(username string) constants.PilotRole {
	if username == AdminUser {
		return constants.RoleStaff
	}
	if p, ok := s.roster.Find(username); ok {
		return p.Role
	}
	return constants.RoleRegular
}
