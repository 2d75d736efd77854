package userrepo

import (
	"time"

	"marketplace/internal/core/domain/model/user"
)

// UserDTO is the users row.
type UserDTO struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"type:varchar(200);not null"`
	Phone     *string `gorm:"type:varchar(32)"`
	Email     string  `gorm:"type:varchar(320);not null;uniqueIndex"`
	Role      string  `gorm:"type:varchar(16);not null"`
	VendorID  *int64
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	dto := UserDTO{
		ID:        u.ID().Int64(),
		Name:      u.Name(),
		Phone:     u.Phone(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
	if v := u.VendorID(); v != nil {
		id := v.Int64()
		dto.VendorID = &id
	}
	return dto
}
