package repository

import (
	"context"

	"lionrewards/internal/domain/cart"
	"lionrewards/internal/infra"
	sqlc "lionrewards/internal/infra/sqlc/generated"
	"lionrewards/internal/pkg/pgconv"
)

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/repository/cart.go -package=repositorymock

type CartWriteQueries interface {
	InsertCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCartItemParams) (int64, error)
	UpdateCartItemQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCartItemQuantityParams) (int64, error)
	DeleteCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCartItemParams) (int64, error)
	LockCartItemsByUser(ctx context.Context, db sqlc.DBTX, userID int64) ([]sqlc.LockCartItemsByUserRow, error)
	DeleteLockedCartItems(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteLockedCartItemsParams) (int64, error)
}

type CartRepository struct {
	queries CartWriteQueries
}

func NewCartRepository(queries CartWriteQueries) *CartRepository {
	return &CartRepository{queries: queries}
}

func (r *CartRepository) Add(ctx context.Context, tx sqlc.DBTX, item *cart.NewItem) (int64, error) {
	cartID, err := r.queries.InsertCartItem(ctx, tx, sqlc.InsertCartItemParams{
		UserID:    item.UserID(),
		VoucherID: item.VoucherID(),
		Quantity:  item.Quantity().Int32(),
		AddedAt:   pgconv.TimeToPgtype(item.AddedAt()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert cart item", err)
	}
	return cartID, nil
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, tx sqlc.DBTX, userID, cartID int64, quantity cart.Quantity) error {
	affected, err := r.queries.UpdateCartItemQuantity(ctx, tx, sqlc.UpdateCartItemQuantityParams{
		CartID:   cartID,
		UserID:   userID,
		Quantity: quantity.Int32(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update cart item quantity", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("cart item not found", nil, infra.KindNotFound)
	}
	return nil
}

// Remove reports whether a row was deleted; a missing row is not an error.
func (r *CartRepository) Remove(ctx context.Context, tx sqlc.DBTX, userID, cartID int64) (bool, error) {
	affected, err := r.queries.DeleteCartItem(ctx, tx, sqlc.DeleteCartItemParams{
		CartID: cartID,
		UserID: userID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete cart item", err)
	}
	return affected > 0, nil
}

func (r *CartRepository) LockByUser(ctx context.Context, tx sqlc.DBTX, userID int64) (*cart.Cart, error) {
	rows, err := r.queries.LockCartItemsByUser(ctx, tx, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock cart items", err)
	}
	lines := make([]cart.Line, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, cart.Line{
			CartID:     row.CartID,
			VoucherID:  row.VoucherID,
			Title:      row.Title,
			CostPoints: int64(row.CostPoints),
			Quantity:   row.Quantity,
		})
	}
	return cart.Reconstruct(userID, lines), nil
}

// Clear deletes only the lines read by LockByUser; lines added after the lock was taken stay in the cart.
func (r *CartRepository) Clear(ctx context.Context, tx sqlc.DBTX, c *cart.Cart) (int64, error) {
	n, err := r.queries.DeleteLockedCartItems(ctx, tx, sqlc.DeleteLockedCartItemsParams{
		UserID:  c.UserID(),
		CartIds: c.CartIDs(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clear cart", err)
	}
	return n, nil
}
