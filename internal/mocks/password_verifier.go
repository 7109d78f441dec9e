package mocks

import "github.com/phrazzld/studyplan-api/internal/service/auth"

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
// It treats the stored hash as the plaintext, so "secret" verifies against "secret".
type MockPasswordVerifier struct {
	CompareFn        func(hashedPassword, password string) error
	CompareCallCount int
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements auth.PasswordVerifier
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.CompareCallCount++
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != password {
		return auth.ErrPasswordMismatch
	}
	return nil
}
