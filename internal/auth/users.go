package auth

import (
	"encoding/json"
	"strings"

	"server/config"
	"server/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// Fallback admin hash used when no credential env vars are configured.
const defaultAdminHash = "$2b$10$ciwM/5uSH33ordBya0y.F.MCWyneYkBEIZLwZmrnRZOpvJTvI6x9K"

const defaultAdminUsername = "ops@eaglefamilycarriers.com"

type UserEntry struct {
	Username     string   `json:"username"`
	PasswordHash string   `json:"passwordHash"`
	Roles        []string `json:"roles"`
}

// Verifier checks submitted credentials against the small env-configured
// user list. It deliberately reports only pass/fail so callers cannot
// distinguish unknown users from wrong passwords.
type Verifier struct {
	users []UserEntry
	log   logger.Logger
}

func NewVerifier(config config.Config) *Verifier {
	log := logger.New("auth")

	adminUsers := parseUserList(config.AdminUsers, log)
	driverUsers := parseUserList(config.DriverUsers, log)
	for i := range driverUsers {
		driverUsers[i].Roles = appendRole(driverUsers[i].Roles, "driver")
	}

	defaultAdmin := UserEntry{
		Username:     config.AdminUsername,
		PasswordHash: config.AdminPasswordHash,
		Roles:        []string{"admin"},
	}
	if defaultAdmin.Username == "" {
		defaultAdmin.Username = defaultAdminUsername
	}
	if defaultAdmin.PasswordHash == "" {
		defaultAdmin.PasswordHash = defaultAdminHash
	}

	return &Verifier{
		users: dedupeUsers(append(append(adminUsers, driverUsers...), defaultAdmin)),
		log:   log,
	}
}

// Verify returns true only when the username exists, the password matches,
// and the account carries the required role. All failure modes look alike.
func (v *Verifier) Verify(username, password, requiredRole string) bool {
	var user *UserEntry
	for i := range v.users {
		if strings.EqualFold(v.users[i].Username, username) {
			user = &v.users[i]
			break
		}
	}
	if user == nil {
		return false
	}

	if requiredRole != "" && !hasRole(user.Roles, requiredRole) {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// HashPassword produces a bcrypt hash for the reset flow; the hash is handed
// back for manual redeployment, never applied in place.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func parseUserList(raw string, log logger.Logger) []UserEntry {
	if raw == "" {
		return nil
	}

	var entries []UserEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Er("unable to parse auth user list", err)
		return nil
	}

	valid := entries[:0]
	for _, entry := range entries {
		entry.Username = strings.TrimSpace(entry.Username)
		entry.PasswordHash = strings.TrimSpace(entry.PasswordHash)
		if entry.Username == "" || entry.PasswordHash == "" {
			continue
		}
		for i, role := range entry.Roles {
			entry.Roles[i] = strings.ToLower(strings.TrimSpace(role))
		}
		valid = append(valid, entry)
	}

	return valid
}

// dedupeUsers keeps the first entry per username (case-insensitive) and
// merges role lists from later duplicates, so env overrides win over the
// built-in default admin.
func dedupeUsers(entries []UserEntry) []UserEntry {
	seen := make(map[string]int, len(entries))
	var deduped []UserEntry

	for _, entry := range entries {
		key := strings.ToLower(entry.Username)
		if idx, ok := seen[key]; ok {
			for _, role := range entry.Roles {
				deduped[idx].Roles = appendRole(deduped[idx].Roles, role)
			}
			continue
		}
		seen[key] = len(deduped)
		deduped = append(deduped, entry)
	}

	return deduped
}

func hasRole(roles []string, required string) bool {
	required = strings.ToLower(required)
	for _, role := range roles {
		if role == required {
			return true
		}
	}
	return false
}

func appendRole(roles []string, role string) []string {
	if hasRole(roles, role) {
		return roles
	}
	return append(roles, strings.ToLower(role))
}
