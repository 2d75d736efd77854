package readmodel

import (
	"context"
	"time"

	"marketplace/internal/adapters/out/postgres/pgerr"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ queries.OrderReader = (*GormOrderReader)(nil)

// GormOrderReader implements queries.OrderReader. It reads committed state
// only and never takes locks.
type GormOrderReader struct {
	db *gorm.DB
}

func NewGormOrderReader(db *gorm.DB) *GormOrderReader {
	return &GormOrderReader{db: db}
}

func (r *GormOrderReader) Header(ctx context.Context, id kernel.ID) (queries.OrderHeader, error) {
	var rows []orderRow
	err := r.db.WithContext(ctx).
		Raw(`SELECT `+orderColumns+` FROM orders WHERE id = ?`, id.Int64()).
		Scan(&rows).Error
	if err != nil {
		return queries.OrderHeader{}, pgerr.Wrap("read order", err)
	}
	if len(rows) == 0 {
		return queries.OrderHeader{}, errs.NewObjectNotFoundError("order", id.String())
	}
	return rows[0].view(), nil
}

func (r *GormOrderReader) User(ctx context.Context, id kernel.ID) (*queries.UserView, error) {
	var users []queries.UserView
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, phone, email, role, vendor_id, created_at
		FROM users
		WHERE id = ?`, id.Int64()).
		Scan(&users).Error
	if err != nil {
		return nil, pgerr.Wrap("read user", err)
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *GormOrderReader) Vendor(ctx context.Context, id kernel.ID) (*queries.VendorView, error) {
	var rows []vendorRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, legal_name, tax_id, contacts, is_active, created_at
		FROM vendors
		WHERE id = ?`, id.Int64()).
		Scan(&rows).Error
	if err != nil {
		return nil, pgerr.Wrap("read vendor", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	v := rows[0].view()
	return &v, nil
}

func (r *GormOrderReader) Service(ctx context.Context, id kernel.ID) (*queries.ServiceView, error) {
	var services []queries.ServiceView
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, category, name, description, is_active
		FROM services
		WHERE id = ?`, id.Int64()).
		Scan(&services).Error
	if err != nil {
		return nil, pgerr.Wrap("read service", err)
	}
	if len(services) == 0 {
		return nil, nil
	}
	return &services[0], nil
}

func (r *GormOrderReader) History(ctx context.Context, orderID kernel.ID) ([]queries.HistoryView, error) {
	history := make([]queries.HistoryView, 0)
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, order_id, status, changed_by_user_id, note, created_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY created_at, id`, orderID.Int64()).
		Scan(&history).Error
	if err != nil {
		return nil, pgerr.Wrap("read order history", err)
	}
	return history, nil
}

func (r *GormOrderReader) Comments(ctx context.Context, orderID kernel.ID) ([]queries.CommentView, error) {
	comments := make([]queries.CommentView, 0)
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, order_id, user_id, message, created_at
		FROM order_comments
		WHERE order_id = ?
		ORDER BY created_at, id`, orderID.Int64()).
		Scan(&comments).Error
	if err != nil {
		return nil, pgerr.Wrap("read order comments", err)
	}
	return comments, nil
}

func (r *GormOrderReader) Files(ctx context.Context, orderID kernel.ID) ([]queries.FileView, error) {
	files := make([]queries.FileView, 0)
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, order_id, file_url, file_name, file_type, uploaded_by_user_id, created_at
		FROM order_files
		WHERE order_id = ?
		ORDER BY created_at, id`, orderID.Int64()).
		Scan(&files).Error
	if err != nil {
		return nil, pgerr.Wrap("read order files", err)
	}
	return files, nil
}

func (r *GormOrderReader) Offers(ctx context.Context, orderID kernel.ID, limit int) ([]queries.OfferView, error) {
	offers := make([]queries.OfferView, 0)
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, order_id, vendor_id, subtotal, commission, total, due_at, note,
		       status, created_at, decided_at, decided_by_user_id
		FROM order_offers
		WHERE order_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, orderID.Int64(), limit).
		Scan(&offers).Error
	if err != nil {
		return nil, pgerr.Wrap("read order offers", err)
	}
	return offers, nil
}

func (r *GormOrderReader) Find(ctx context.Context, filter order.Filter, page kernel.Page) ([]queries.OrderHeader, error) {
	var rows []orderRow
	err := applyFilter(r.db.WithContext(ctx).Table("orders"), filter).
		Select(orderColumns).
		Order("created_at DESC").
		Order("id DESC").
		Limit(page.Take()).
		Offset(page.Skip()).
		Scan(&rows).Error
	if err != nil {
		return nil, pgerr.Wrap("list orders", err)
	}
	return orderViews(rows), nil
}

func (r *GormOrderReader) Count(ctx context.Context, filter order.Filter) (int64, error) {
	var total int64
	if err := applyFilter(r.db.WithContext(ctx).Table("orders"), filter).Count(&total).Error; err != nil {
		return 0, pgerr.Wrap("count orders", err)
	}
	return total, nil
}

func (r *GormOrderReader) FindOverdue(ctx context.Context, now time.Time) ([]queries.OrderHeader, error) {
	var rows []orderRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE due_at IS NOT NULL
		  AND due_at < ?
		  AND status NOT IN ?
		ORDER BY due_at, id`, now, terminalStatuses()).
		Scan(&rows).Error
	if err != nil {
		return nil, pgerr.Wrap("list overdue orders", err)
	}
	return orderViews(rows), nil
}

// applyFilter adds one equality condition per set field. Scoping by actor
// has already happened in the query handler.
func applyFilter(db *gorm.DB, filter order.Filter) *gorm.DB {
	if filter.UserID != nil {
		db = db.Where("user_id = ?", filter.UserID.Int64())
	}
	if filter.VendorID != nil {
		db = db.Where("vendor_id = ?", filter.VendorID.Int64())
	}
	if filter.ServiceID != nil {
		db = db.Where("service_id = ?", filter.ServiceID.Int64())
	}
	if filter.Status != nil {
		db = db.Where("status = ?", filter.Status.String())
	}
	return db
}

func terminalStatuses() []string {
	out := make([]string, 0, 2)
	for _, s := range order.AllStatuses() {
		if s.IsTerminal() {
			out = append(out, s.String())
		}
	}
	return out
}

