package utils

import (
    "crypto/sha256"
    "encoding/hex"
    "errors"

    "golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = errors.New("password is empty")

// HashPassword bcrypt-hashes an account password.
func HashPassword(plain string) (string, error) {
    if plain == "" {
        return "", ErrEmptyPassword
    }
    hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
    if err != nil {
        return "", err
    }
    return string(hashed), nil
}

func CheckPassword(hashed, plain string) bool {
    if hashed == "" || plain == "" {
        return false
    }
    return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// HashToken is the at-rest form of a refresh token. Lookups compare hashes,
// so the raw token never reaches the database.
func HashToken(token string) string {
    h := sha256.Sum256([]byte(token))
    return hex.EncodeToString(h[:])
}
