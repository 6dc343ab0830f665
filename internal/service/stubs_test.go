package service

import (
	"context"

	"bistro-api/internal/domain"
)

// Function-backed fakes for the repository interfaces. Tests set only the
// fields they care about; unset fields return zero values.

type fakeUserRepo struct {
	getByEmailFn     func(ctx context.Context, email string) (*domain.User, error)
	createFn         func(ctx context.Context, user *domain.User) error
	listFn           func(ctx context.Context) ([]domain.User, error)
	promoteToAdminFn func(ctx context.Context, id string) (bool, error)
	countFn          func(ctx context.Context) (int64, error)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.getByEmailFn == nil {
		return nil, nil
	}
	return f.getByEmailFn(ctx, email)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, user)
}

func (f *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx)
}

func (f *fakeUserRepo) PromoteToAdmin(ctx context.Context, id string) (bool, error) {
	if f.promoteToAdminFn == nil {
		return false, nil
	}
	return f.promoteToAdminFn(ctx, id)
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn(ctx)
}

type fakeMenuRepo struct {
	listFn     func(ctx context.Context) ([]domain.MenuItem, error)
	getByIDsFn func(ctx context.Context, ids []string) ([]domain.MenuItem, error)
	createFn   func(ctx context.Context, item *domain.MenuItem) error
	deleteFn   func(ctx context.Context, id string) (int64, error)
	countFn    func(ctx context.Context) (int64, error)
}

func (f *fakeMenuRepo) List(ctx context.Context) ([]domain.MenuItem, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx)
}

func (f *fakeMenuRepo) GetByIDs(ctx context.Context, ids []string) ([]domain.MenuItem, error) {
	if f.getByIDsFn == nil {
		return nil, nil
	}
	return f.getByIDsFn(ctx, ids)
}

func (f *fakeMenuRepo) Create(ctx context.Context, item *domain.MenuItem) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, item)
}

func (f *fakeMenuRepo) Delete(ctx context.Context, id string) (int64, error) {
	if f.deleteFn == nil {
		return 0, nil
	}
	return f.deleteFn(ctx, id)
}

func (f *fakeMenuRepo) Count(ctx context.Context) (int64, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn(ctx)
}

type fakeCartRepo struct {
	addFn         func(ctx context.Context, item *domain.CartItem) error
	listByOwnerFn func(ctx context.Context, email string) ([]domain.CartItem, error)
	deleteFn      func(ctx context.Context, id string) (int64, error)
	deleteByIDsFn func(ctx context.Context, ids []string) (int64, error)
}

func (f *fakeCartRepo) Add(ctx context.Context, item *domain.CartItem) error {
	if f.addFn == nil {
		return nil
	}
	return f.addFn(ctx, item)
}

func (f *fakeCartRepo) ListByOwner(ctx context.Context, email string) ([]domain.CartItem, error) {
	if f.listByOwnerFn == nil {
		return nil, nil
	}
	return f.listByOwnerFn(ctx, email)
}

func (f *fakeCartRepo) Delete(ctx context.Context, id string) (int64, error) {
	if f.deleteFn == nil {
		return 0, nil
	}
	return f.deleteFn(ctx, id)
}

func (f *fakeCartRepo) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if f.deleteByIDsFn == nil {
		return int64(len(ids)), nil
	}
	return f.deleteByIDsFn(ctx, ids)
}

type fakePaymentRepo struct {
	createFn      func(ctx context.Context, payment *domain.Payment) error
	listFn        func(ctx context.Context) ([]domain.Payment, error)
	listByPayerFn func(ctx context.Context, email string) ([]domain.Payment, error)
	countFn       func(ctx context.Context) (int64, error)
	sumPricesFn   func(ctx context.Context) (float64, error)
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, payment)
}

func (f *fakePaymentRepo) List(ctx context.Context) ([]domain.Payment, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx)
}

func (f *fakePaymentRepo) ListByPayer(ctx context.Context, email string) ([]domain.Payment, error) {
	if f.listByPayerFn == nil {
		return nil, nil
	}
	return f.listByPayerFn(ctx, email)
}

func (f *fakePaymentRepo) Count(ctx context.Context) (int64, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn(ctx)
}

func (f *fakePaymentRepo) SumPrices(ctx context.Context) (float64, error) {
	if f.sumPricesFn == nil {
		return 0, nil
	}
	return f.sumPricesFn(ctx)
}
