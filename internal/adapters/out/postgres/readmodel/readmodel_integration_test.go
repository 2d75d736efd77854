package readmodel_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/adapters/out/postgres/readmodel"
	"marketplace/internal/adapters/out/postgres/userrepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type ReadModelIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	orders   *readmodel.GormOrderReader
	catalog  *readmodel.GormCatalogReader
	users    *readmodel.GormUserReader
}

func (suite *ReadModelIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.orders = readmodel.NewGormOrderReader(database.DB)
	suite.catalog = readmodel.NewGormCatalogReader(database.DB)
	suite.users = readmodel.NewGormUserReader(database.DB)
}

func (suite *ReadModelIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Reset())
}

func (suite *ReadModelIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

// insertOrder writes an order row directly and returns its id.
func (suite *ReadModelIntegrationTestSuite) insertOrder(userID int64, vendorID *int64, status string, createdAt time.Time, dueAt *time.Time) int64 {
	var id int64
	err := suite.database.DB.Raw(`
		INSERT INTO orders (user_id, service_id, vendor_id, params_json, subtotal, commission, total,
		                    status, due_at, created_at, updated_at)
		VALUES (?, ?, ?, '{"k":1}', 100, 10, 110, ?, ?, ?, ?)
		RETURNING id`,
		userID, pgtest.ServiceID, vendorID, status, dueAt, createdAt, createdAt).
		Scan(&id).Error
	suite.Require().NoError(err)
	return id
}

func (suite *ReadModelIntegrationTestSuite) TestHeader() {
	ctx := context.Background()
	id := suite.insertOrder(pgtest.ClientID, nil, "NEW", time.Now(), nil)

	header, err := suite.orders.Header(ctx, kernel.MustNewID(id))
	suite.Require().NoError(err)
	suite.Equal(id, header.ID)
	suite.Equal("NEW", header.Status)
	suite.JSONEq(`{"k":1}`, string(header.ParamsJSON))
	suite.Nil(header.VendorID)

	_, err = suite.orders.Header(ctx, kernel.MustNewID(id+100))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReadModelIntegrationTestSuite) TestRelatedRecords() {
	ctx := context.Background()
	vendorID := pgtest.VendorID
	id := suite.insertOrder(pgtest.ClientID, &vendorID, "ASSIGNED", time.Now(), nil)
	orderID := kernel.MustNewID(id)

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	db := suite.database.DB
	// Same timestamp twice: ties are broken by id.
	suite.Require().NoError(db.Exec(`INSERT INTO order_status_history (order_id, status, changed_by_user_id, created_at)
		VALUES (?, 'NEW', 1, ?), (?, 'ASSIGNED', 3, ?)`, id, base, id, base).Error)
	suite.Require().NoError(db.Exec(`INSERT INTO order_comments (order_id, user_id, message, created_at)
		VALUES (?, 1, 'second', ?), (?, 2, 'first', ?)`, id, base.Add(time.Minute), id, base).Error)
	for i := range 12 {
		suite.Require().NoError(db.Exec(`INSERT INTO order_offers (order_id, vendor_id, subtotal, commission, total, status, created_at)
			VALUES (?, 1, ?, 0, ?, 'PENDING', ?)`, id, i, i, base.Add(time.Duration(i)*time.Hour)).Error)
	}

	history, err := suite.orders.History(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal("NEW", history[0].Status)
	suite.Equal("ASSIGNED", history[1].Status)

	comments, err := suite.orders.Comments(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(comments, 2)
	suite.Equal("first", comments[0].Message)

	files, err := suite.orders.Files(ctx, orderID)
	suite.Require().NoError(err)
	suite.NotNil(files)
	suite.Empty(files)

	offers, err := suite.orders.Offers(ctx, orderID, order.MaxOffersInAggregate)
	suite.Require().NoError(err)
	suite.Require().Len(offers, order.MaxOffersInAggregate)
	suite.Equal(int64(11), offers[0].Subtotal, "newest offer first")

	vendor, err := suite.orders.Vendor(ctx, kernel.MustNewID(pgtest.VendorID))
	suite.Require().NoError(err)
	suite.Require().NotNil(vendor)
	suite.Require().NotNil(vendor.LegalName)
	suite.Equal("Acme LLC", *vendor.LegalName)
	suite.JSONEq(`{"phone":"+77000000000"}`, string(vendor.Contacts))

	user, err := suite.orders.User(ctx, kernel.MustNewID(pgtest.VendorUserID))
	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("VENDOR", user.Role)
	suite.Require().NotNil(user.VendorID)

	missing, err := suite.orders.User(ctx, kernel.MustNewID(999))
	suite.Require().NoError(err)
	suite.Nil(missing)
}

func (suite *ReadModelIntegrationTestSuite) TestFindAndCount() {
	ctx := context.Background()
	vendorID := pgtest.VendorID
	base := time.Now().Add(-time.Hour)
	var clientOrders []int64
	for i := range 5 {
		clientOrders = append(clientOrders, suite.insertOrder(pgtest.ClientID, nil, "NEW", base.Add(time.Duration(i)*time.Minute), nil))
	}
	suite.insertOrder(pgtest.OtherClientID, &vendorID, "ASSIGNED", base, nil)

	userID := kernel.MustNewID(pgtest.ClientID)
	filter := order.Filter{UserID: &userID}
	take, skip := 2, 1

	rows, err := suite.orders.Find(ctx, filter, kernel.NewPage(&take, &skip))
	suite.Require().NoError(err)
	total, err := suite.orders.Count(ctx, filter)
	suite.Require().NoError(err)

	suite.Equal(int64(5), total)
	suite.Require().Len(rows, 2)
	suite.Equal(clientOrders[3], rows[0].ID, "newest first")
	suite.Equal(clientOrders[2], rows[1].ID)

	assigned := order.Assigned
	vendor := kernel.MustNewID(pgtest.VendorID)
	rows, err = suite.orders.Find(ctx, order.Filter{VendorID: &vendor, Status: &assigned}, kernel.NewPage(nil, nil))
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(pgtest.OtherClientID, rows[0].UserID)
}

func (suite *ReadModelIntegrationTestSuite) TestFindOverdue() {
	ctx := context.Background()
	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	overdue := suite.insertOrder(pgtest.ClientID, nil, "NEW", past, &past)
	suite.insertOrder(pgtest.ClientID, nil, "NEW", past, &future)
	suite.insertOrder(pgtest.ClientID, nil, "NEW", past, nil)
	suite.Require().NoError(suite.database.DB.Exec(`
		INSERT INTO orders (user_id, service_id, params_json, subtotal, commission, total, status, due_at,
		                    cancelled_at, cancelled_by_user_id, cancelled_by_role)
		VALUES (1, 1, '{}', 0, 0, 0, 'CANCELLED', ?, ?, 1, 'CLIENT')`, past, past).Error)

	rows, err := suite.orders.FindOverdue(ctx, now)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(overdue, rows[0].ID)
}

func (suite *ReadModelIntegrationTestSuite) TestCatalog() {
	ctx := context.Background()
	db := suite.database.DB
	suite.Require().NoError(db.Exec(`INSERT INTO services (category, name, is_active) VALUES
		('cleaning', 'Windows', TRUE), ('repair', 'Plumbing', TRUE), ('cleaning', 'Carpets', FALSE)`).Error)
	suite.Require().NoError(db.Exec(`INSERT INTO vendors (name, legal_name, contacts, is_active, created_at)
		VALUES ('Newer', 'Newer LLC', '{}', FALSE, now() + interval '1 minute')`).Error)

	all, err := suite.catalog.Services(ctx, queries.ServiceFilter{})
	suite.Require().NoError(err)
	names := make([]string, 0, len(all))
	for _, s := range all {
		names = append(names, fmt.Sprintf("%s/%s", s.Category, s.Name))
	}
	suite.Equal([]string{"cleaning/Carpets", "cleaning/Deep clean", "cleaning/Windows", "repair/Plumbing"}, names)

	category := "cleaning"
	active, err := suite.catalog.Services(ctx, queries.ServiceFilter{OnlyActive: true, Category: &category})
	suite.Require().NoError(err)
	suite.Len(active, 2)

	vendors, err := suite.catalog.Vendors(ctx, false)
	suite.Require().NoError(err)
	suite.Require().Len(vendors, 2)
	suite.Equal("Newer", vendors[0].Name)

	activeVendors, err := suite.catalog.Vendors(ctx, true)
	suite.Require().NoError(err)
	suite.Require().Len(activeVendors, 1)
	suite.Equal("Acme", activeVendors[0].Name)
}

func TestReadModelIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReadModelIntegrationTestSuite))
}

func (suite *ReadModelIntegrationTestSuite) TestUsers() {
	ctx := context.Background()
	repo := userrepo.NewGormUserRepository(suite.database.DB)
	vendorID := kernel.MustNewID(pgtest.VendorID)

	staff, err := user.NewUser("Sam", " Sam@Acme.test ", "", actor.Vendor, &vendorID)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(ctx, staff))
	suite.Greater(staff.ID().Int64(), pgtest.OtherClientID)
	suite.False(staff.CreatedAt().IsZero())

	duplicate, err := user.NewUser("Other Sam", "sam@acme.test", "", actor.Client, nil)
	suite.Require().NoError(err)
	err = repo.Add(ctx, duplicate)
	suite.Require().ErrorIs(err, errs.ErrInvalidState)
	suite.False(errs.IsRetryable(err))

	got, err := suite.users.UserByID(ctx, staff.ID())
	suite.Require().NoError(err)
	suite.Equal("sam@acme.test", got.Email)
	suite.Equal("VENDOR", got.Role)
	suite.Require().NotNil(got.VendorID)
	suite.Equal(pgtest.VendorID, *got.VendorID)

	_, err = suite.users.UserByID(ctx, kernel.MustNewID(staff.ID().Int64()+100))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	all, err := suite.users.Users(ctx, queries.UserFilter{}, kernel.NewBoundedPage(nil, nil, 50, 200))
	suite.Require().NoError(err)
	suite.Require().Len(all, 5)
	suite.Equal(staff.ID().Int64(), all[0].ID, "newest first")

	take, skip := 2, 1
	page, err := suite.users.Users(ctx, queries.UserFilter{}, kernel.NewBoundedPage(&take, &skip, 50, 200))
	suite.Require().NoError(err)
	suite.Require().Len(page, 2)
	suite.Equal(all[1].ID, page[0].ID)

	role := actor.Vendor
	vendors, err := suite.users.Users(ctx, queries.UserFilter{Role: &role, VendorID: &vendorID}, kernel.NewBoundedPage(nil, nil, 50, 200))
	suite.Require().NoError(err)
	suite.Require().Len(vendors, 2)
	for _, v := range vendors {
		suite.Equal("VENDOR", v.Role)
	}

	clients := actor.Client
	found, err := suite.users.Users(ctx, queries.UserFilter{Role: &clients}, kernel.NewBoundedPage(nil, nil, 50, 200))
	suite.Require().NoError(err)
	suite.Len(found, 2)

	exists, err := repo.Exists(ctx, staff.ID())
	suite.Require().NoError(err)
	suite.True(exists)
}
