package tui

import (
	"context"

	"go-purchase-tracker/pkg/client"
)

// PurchaseViewModel binds the typed API client to the views. Queries read
// through the cache; mutations invalidate their dependent keys synchronously
// after success, so the next read reflects the mutation.
type PurchaseViewModel struct {
	api   *client.Client
	cache *QueryCache
}

func NewPurchaseViewModel(api *client.Client, cache *QueryCache) *PurchaseViewModel {
	return &PurchaseViewModel{api: api, cache: cache}
}

// List returns the purchase list plus the current-month total, cached until
// the next mutation.
func (vm *PurchaseViewModel) List(ctx context.Context) (*client.PurchaseList, error) {
	if cached, ok := vm.cache.Get(KeyPurchases); ok {
		return cached.(*client.PurchaseList), nil
	}

	list, err := vm.api.List(ctx)
	if err != nil {
		return nil, err
	}
	vm.cache.Put(KeyPurchases, list)
	return list, nil
}

// Detail always fetches fresh: an edit form must never be pre-populated from
// a stale cached copy.
func (vm *PurchaseViewModel) Detail(ctx context.Context, id string) (*client.Purchase, error) {
	purchase, err := vm.api.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	vm.cache.Put(KeyPurchase(id), purchase)
	return purchase, nil
}

func (vm *PurchaseViewModel) Create(ctx context.Context, in *client.PurchaseInput) (*client.Purchase, error) {
	purchase, err := vm.api.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	vm.cache.Invalidate(KeyPurchases)
	return purchase, nil
}

func (vm *PurchaseViewModel) Update(ctx context.Context, id string, in *client.PurchaseInput) (*client.Purchase, error) {
	purchase, err := vm.api.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	vm.cache.Invalidate(KeyPurchases, KeyPurchase(id))
	return purchase, nil
}

func (vm *PurchaseViewModel) Delete(ctx context.Context, id string) error {
	if err := vm.api.Delete(ctx, id); err != nil {
		return err
	}
	vm.cache.Invalidate(KeyPurchases, KeyPurchase(id))
	return nil
}
