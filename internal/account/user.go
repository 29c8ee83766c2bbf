// Package account registers and authenticates players.
package account

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordStrengthScore = 3

	usernamePattern   = `^[a-zA-Z0-9_]+$` // Alphanumeric with underscores
	minUsernameLength = 3
	maxUsernameLength = 20
)

var usernameRegex = regexp.MustCompile(usernamePattern)

var (
	// ErrInvalidUsername is returned for usernames outside the allowed format.
	ErrInvalidUsername = errors.New("account: invalid username")
	// ErrWeakPassword is returned when a password is too easy to guess.
	ErrWeakPassword = errors.New("account: password too weak")
	// ErrUserExists is returned when registering a taken username.
	ErrUserExists = errors.New("account: username already taken")
	// ErrInvalidCredentials is returned for an unknown user or a wrong password.
	ErrInvalidCredentials = errors.New("account: invalid username or password")
)

// User is an authenticated player.
type User struct {
	Username  string
	BestScore int
}

// ValidateUsername checks length and character set.
func ValidateUsername(username string) error {
	if len(username) < minUsernameLength {
		return fmt.Errorf("%w: at least %d characters", ErrInvalidUsername, minUsernameLength)
	}
	if len(username) > maxUsernameLength {
		return fmt.Errorf("%w: at most %d characters", ErrInvalidUsername, maxUsernameLength)
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("%w: letters, digits and underscores only", ErrInvalidUsername)
	}
	return nil
}

// ValidatePassword checks the strength of the password. The username is fed
// to the estimator so it cannot be reused as the password.
func ValidatePassword(username, password string) error {
	result := zxcvbn.PasswordStrength(password, []string{username})
	if result.Score < minPasswordStrengthScore {
		return fmt.Errorf("%w: strength %d of 4, need %d", ErrWeakPassword, result.Score, minPasswordStrengthScore)
	}
	return nil
}

func hashPassword(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

func verifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
