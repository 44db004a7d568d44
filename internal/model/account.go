package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Account owns purchases. Every data-access call is scoped to one account id.
type Account struct {
	ID         int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email      string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password   string      `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	IsActive   bool        `gorm:"default:true" json:"is_active"`
	Privileges []Privilege `gorm:"many2many:account_privileges;" json:"privileges,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// SetPassword hashes and sets the account's password
func (a *Account) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (a *Account) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password))
	return err == nil
}

// HasPrivilege checks if the account has a specific privilege
func (a *Account) HasPrivilege(code string) bool {
	for _, p := range a.Privileges {
		if p.Code == code {
			return true
		}
	}
	return false
}

// GetPrivilegeCodes returns a slice of all privilege codes for this account
func (a *Account) GetPrivilegeCodes() []string {
	codes := make([]string, len(a.Privileges))
	for i, p := range a.Privileges {
		codes[i] = p.Code
	}
	return codes
}
