package mysql

import (
	"context"
	"errors"

	"glory-event-api/internal/domain"
	"glory-event-api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Save(ctx context.Context, o *domain.Order) error {
	// Lines are persisted separately with their snapshotted prices.
	return dbFrom(ctx, r.db).Omit("Lines").Create(o).Error
}

func (r *orderRepo) SaveLines(ctx context.Context, lines []domain.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}
	return dbFrom(ctx, r.db).Create(&lines).Error
}

// lineRow joins a stored line with the current product identity fields.
// Price and quantity always come from the order_lines snapshot.
type lineRow struct {
	OrderID   uint64
	ProductID uint64
	Quantity  int
	Price     decimal.Decimal
	Name      string
	Slug      string
	Image     string
}

func (r *orderRepo) linesFor(ctx context.Context, orderIDs []uint64) (map[uint64][]domain.OrderLine, error) {
	if len(orderIDs) == 0 {
		return map[uint64][]domain.OrderLine{}, nil
	}
	var rows []lineRow
	err := dbFrom(ctx, r.db).Table("order_lines").
		Select("order_lines.order_id, order_lines.product_id, order_lines.quantity, order_lines.price, products.name, products.slug, products.image").
		Joins("LEFT JOIN products ON products.id = order_lines.product_id").
		Where("order_lines.order_id IN ?", orderIDs).
		Order("order_lines.order_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byOrder := make(map[uint64][]domain.OrderLine, len(orderIDs))
	for _, row := range rows {
		byOrder[row.OrderID] = append(byOrder[row.OrderID], domain.OrderLine{
			OrderID:   row.OrderID,
			ProductID: row.ProductID,
			Quantity:  row.Quantity,
			Price:     row.Price,
			Name:      row.Name,
			Slug:      row.Slug,
			Image:     row.Image,
		})
	}
	return byOrder, nil
}

func (r *orderRepo) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := dbFrom(ctx, r.db).First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	lines, err := r.linesFor(ctx, []uint64{o.ID})
	if err != nil {
		return nil, err
	}
	o.Lines = lines[o.ID]
	return &o, nil
}

func (r *orderRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := dbFrom(ctx, r.db).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return r.attachLines(ctx, out)
}

func (r *orderRepo) FindRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	var out []domain.Order
	if err := dbFrom(ctx, r.db).Order("created_at DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return r.attachLines(ctx, out)
}

func (r *orderRepo) attachLines(ctx context.Context, orders []domain.Order) ([]domain.Order, error) {
	ids := make([]uint64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	byOrder, err := r.linesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Lines = byOrder[orders[i].ID]
	}
	return orders, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) (*domain.Order, error) {
	res := dbFrom(ctx, r.db).Model(&domain.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	// RowsAffected is 0 both for a missing order and for a no-op status
	// write; FindByID settles which.
	return r.FindByID(ctx, id)
}

func (r *orderRepo) Delete(ctx context.Context, id uint64) error {
	db := dbFrom(ctx, r.db)
	if err := db.Where("order_id = ?", id).Delete(&domain.OrderLine{}).Error; err != nil {
		return err
	}
	res := db.Delete(&domain.Order{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *orderRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := dbFrom(ctx, r.db).Model(&domain.Order{}).Count(&n).Error
	return n, err
}

func (r *orderRepo) CountByStatus(ctx context.Context, status domain.OrderStatus) (int64, error) {
	var n int64
	err := dbFrom(ctx, r.db).Model(&domain.Order{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *orderRepo) SumTotalExcluding(ctx context.Context, excluded domain.OrderStatus) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := dbFrom(ctx, r.db).Model(&domain.Order{}).
		Select("SUM(total)").
		Where("status <> ?", excluded).
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}
