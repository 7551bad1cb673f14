package account

import (
	"golang.org/x/crypto/bcrypt"
)

// fixed work factor; raising it only affects hashes written after the bump
const bcryptCost = 10

func (a *accounts) hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)

	return string(hashedPasswordBytes), err
}

func (a *accounts) verifyPassword(hashedPassword, currPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(currPassword))
	return err == nil
}
