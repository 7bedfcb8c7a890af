package entities

import (
	"context"
	"errors"
	"sort"

	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/repository"
)

// ErrUnknownEntity is returned by Catalog.Search for unregistered names.
var ErrUnknownEntity = errors.New("unknown entity")

// SearchFunc runs one entity's search and returns its page.
type SearchFunc func(ctx context.Context, req repository.Request) (any, error)

// Catalog holds a repository per entity.
type Catalog struct {
	Leads           *repository.Repository[Lead]
	Products        *repository.Repository[Product]
	Packages        *repository.Repository[Package]
	PurchaseOrders  *repository.Repository[PurchaseOrder]
	Shipments       *repository.Repository[Shipment]
	Users           *repository.Repository[User]
	Promos          *repository.Repository[Promo]
	PickupLocations *repository.Repository[PickupLocation]
	Logs            *repository.Repository[LogEntry]
	Reviews         *repository.Repository[Review]

	orderDetails []repository.Loader[PurchaseOrder]
	searches     map[string]SearchFunc
}

// NewCatalog creates every repository against one dialect and executor.
func NewCatalog(renderer filterql.Renderer, exec repository.Executor, cfg repository.Config) (*Catalog, error) {
	s := Schema()
	c := &Catalog{
		orderDetails: PurchaseOrderDetails(s),
		searches:     make(map[string]SearchFunc),
	}

	var err error
	if c.Leads, err = register(c, Leads(s), renderer, exec, scanLead, cfg); err != nil {
		return nil, err
	}
	if c.Products, err = register(c, Products(s), renderer, exec, scanProduct, cfg); err != nil {
		return nil, err
	}
	if c.Packages, err = register(c, Packages(s), renderer, exec, scanPackage, cfg); err != nil {
		return nil, err
	}
	if c.PurchaseOrders, err = register(c, PurchaseOrders(s), renderer, exec, scanPurchaseOrder, cfg); err != nil {
		return nil, err
	}
	if c.Shipments, err = register(c, Shipments(s), renderer, exec, scanShipment, cfg); err != nil {
		return nil, err
	}
	if c.Users, err = register(c, Users(s), renderer, exec, scanUser, cfg); err != nil {
		return nil, err
	}
	if c.Promos, err = register(c, Promos(s), renderer, exec, scanPromo, cfg); err != nil {
		return nil, err
	}
	if c.PickupLocations, err = register(c, PickupLocations(s), renderer, exec, scanPickupLocation, cfg); err != nil {
		return nil, err
	}
	if c.Logs, err = register(c, Logs(s), renderer, exec, scanLogEntry, cfg); err != nil {
		return nil, err
	}
	if c.Reviews, err = register(c, Reviews(s), renderer, exec, scanReview, cfg); err != nil {
		return nil, err
	}
	return c, nil
}

func register[T any](c *Catalog, e repository.Entity, renderer filterql.Renderer, exec repository.Executor,
	scan func(repository.Row) (T, error), cfg repository.Config) (*repository.Repository[T], error) {
	repo, err := repository.New(e, renderer, exec, scan, cfg)
	if err != nil {
		return nil, err
	}
	c.searches[e.Name] = func(ctx context.Context, req repository.Request) (any, error) {
		return repo.FindPaginated(ctx, req)
	}
	return repo, nil
}

// Names returns the registered entity names, sorted.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.searches))
	for name := range c.searches {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Search runs the named entity's search.
func (c *Catalog) Search(ctx context.Context, entity string, req repository.Request) (any, error) {
	search, ok := c.searches[entity]
	if !ok {
		return nil, ErrUnknownEntity
	}
	return search(ctx, req)
}

// PurchaseOrdersWithDetails searches purchase orders and loads their
// packages, attachments and payments.
func (c *Catalog) PurchaseOrdersWithDetails(ctx context.Context, req repository.Request) (*repository.Page[PurchaseOrder], error) {
	return c.PurchaseOrders.FindPaginatedWithDetails(ctx, req, c.orderDetails...)
}
