package readmodel

import (
	"context"

	"marketplace/internal/adapters/out/postgres/pgerr"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

const userColumns = "id, name, phone, email, role, vendor_id, created_at"

var _ queries.UserReader = (*GormUserReader)(nil)

// GormUserReader implements queries.UserReader.
type GormUserReader struct {
	db *gorm.DB
}

func NewGormUserReader(db *gorm.DB) *GormUserReader {
	return &GormUserReader{db: db}
}

func (r *GormUserReader) Users(ctx context.Context, filter queries.UserFilter, page kernel.Page) ([]queries.UserView, error) {
	db := r.db.WithContext(ctx).Table("users").Select(userColumns)
	if filter.Role != nil {
		db = db.Where("role = ?", filter.Role.String())
	}
	if filter.VendorID != nil {
		db = db.Where("vendor_id = ?", filter.VendorID.Int64())
	}

	users := make([]queries.UserView, 0)
	err := db.Order("created_at DESC").
		Order("id DESC").
		Limit(page.Take()).
		Offset(page.Skip()).
		Scan(&users).Error
	if err != nil {
		return nil, pgerr.Wrap("list users", err)
	}
	return users, nil
}

func (r *GormUserReader) UserByID(ctx context.Context, id kernel.ID) (queries.UserView, error) {
	var users []queries.UserView
	err := r.db.WithContext(ctx).Table("users").
		Select(userColumns).
		Where("id = ?", id.Int64()).
		Scan(&users).Error
	if err != nil {
		return queries.UserView{}, pgerr.Wrap("read user", err)
	}
	if len(users) == 0 {
		return queries.UserView{}, errs.NewObjectNotFoundError("user", id.String())
	}
	return users[0], nil
}
