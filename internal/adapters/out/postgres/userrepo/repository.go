// Package userrepo persists marketplace accounts. Credentials are not stored
// here; the identity service authenticates callers and this service keeps the
// profile, role and vendor link the policies rely on.
package userrepo

import (
	"context"

	"marketplace/internal/adapters/out/postgres/pgerr"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.UserRepository = (*GormUserRepository)(nil)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Add(ctx context.Context, account *user.User) error {
	if err := account.Validate(); err != nil {
		return err
	}

	dto := fromDomain(account)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Insert("create user", "email", account.Email(), err)
	}
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	account.SetPersisted(id, dto.CreatedAt)
	return nil
}

func (r *GormUserRepository) Exists(ctx context.Context, id kernel.ID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", id.Int64()).Count(&count).Error; err != nil {
		return false, pgerr.Wrap("check user", err)
	}
	return count > 0, nil
}
