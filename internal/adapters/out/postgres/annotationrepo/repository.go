// Package annotationrepo appends comments and file links to orders. Both
// tables are insert-only.
package annotationrepo

import (
	"context"
	"time"

	"marketplace/internal/adapters/out/postgres/pgerr"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

var (
	_ ports.CommentRepository = (*GormCommentRepository)(nil)
	_ ports.FileRepository    = (*GormFileRepository)(nil)
)

// CommentDTO is the order_comments row.
type CommentDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   int64     `gorm:"not null;index"`
	UserID    int64     `gorm:"not null"`
	Message   string    `gorm:"type:varchar(2000);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (CommentDTO) TableName() string {
	return "order_comments"
}

// FileDTO is the order_files row.
type FileDTO struct {
	ID               int64     `gorm:"primaryKey;autoIncrement"`
	OrderID          int64     `gorm:"not null;index"`
	UploadedByUserID int64     `gorm:"not null"`
	FileURL          string    `gorm:"column:file_url;not null"`
	FileName         string    `gorm:"type:varchar(255);not null"`
	FileType         string    `gorm:"type:varchar(100);not null"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (FileDTO) TableName() string {
	return "order_files"
}

type GormCommentRepository struct {
	db *gorm.DB
}

func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

func (r *GormCommentRepository) Add(ctx context.Context, comment *order.Comment) error {
	dto := CommentDTO{
		OrderID: comment.OrderID().Int64(),
		UserID:  comment.UserID().Int64(),
		Message: comment.Message(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap("insert order comment", err)
	}
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	comment.SetPersisted(id, dto.CreatedAt)
	return nil
}

type GormFileRepository struct {
	db *gorm.DB
}

func NewGormFileRepository(db *gorm.DB) *GormFileRepository {
	return &GormFileRepository{db: db}
}

func (r *GormFileRepository) Add(ctx context.Context, file *order.File) error {
	dto := FileDTO{
		OrderID:          file.OrderID().Int64(),
		UploadedByUserID: file.UploadedBy().Int64(),
		FileURL:          file.URL(),
		FileName:         file.Name(),
		FileType:         file.Type(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap("insert order file", err)
	}
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	file.SetPersisted(id, dto.CreatedAt)
	return nil
}
