package repository

import (
	"go-purchase-tracker/internal/model"

	"gorm.io/gorm"
)

type AccountRepository interface {
	FindByEmail(email string) (*model.Account, error)
	FindByID(id int64) (*model.Account, error)
	Create(account *model.Account) error
}

type accountRepo struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) AccountRepository {
	return &accountRepo{db}
}

func (r *accountRepo) FindByEmail(email string) (*model.Account, error) {
	var account model.Account
	if err := r.db.Preload("Privileges").Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) FindByID(id int64) (*model.Account, error) {
	var account model.Account
	if err := r.db.Preload("Privileges").First(&account, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepo) Create(account *model.Account) error {
	return r.db.Create(account).Error
}
