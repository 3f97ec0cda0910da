package upstream

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	actionsKey       = "catalog:actions"
	adminSectionsKey = "catalog:admin-sections"
	resendKeyPrefix  = "resend:"
)

// Catalog serves the two static role catalogs through a short TTL cache and
// tracks the resend-password cooldown. ACL-bearing resources never go
// through here; those are fetched fresh on every load.
type Catalog struct {
	client         *Client
	cache          *gocache.Cache
	catalogTTL     time.Duration
	resendCooldown time.Duration
}

func NewCatalog(client *Client, catalogTTL, resendCooldown time.Duration) *Catalog {
	return &Catalog{
		client:         client,
		cache:          gocache.New(catalogTTL, time.Minute),
		catalogTTL:     catalogTTL,
		resendCooldown: resendCooldown,
	}
}

// Actions returns the grantable-actions catalog, cached.
func (cat *Catalog) Actions(ctx context.Context) ([]CatalogSection, error) {
	if v, ok := cat.cache.Get(actionsKey); ok {
		return v.([]CatalogSection), nil
	}
	sections, err := cat.client.Actions(ctx)
	if err != nil {
		return nil, err
	}
	cat.cache.Set(actionsKey, sections, cat.catalogTTL)
	return sections, nil
}

// AdminSections returns the portal-sections catalog, cached.
func (cat *Catalog) AdminSections(ctx context.Context) ([]CatalogSection, error) {
	if v, ok := cat.cache.Get(adminSectionsKey); ok {
		return v.([]CatalogSection), nil
	}
	sections, err := cat.client.AdminSections(ctx)
	if err != nil {
		return nil, err
	}
	cat.cache.Set(adminSectionsKey, sections, cat.catalogTTL)
	return sections, nil
}

// Refresh re-fetches both catalogs, replacing whatever is cached. Used by
// the periodic refresh job.
func (cat *Catalog) Refresh(ctx context.Context) error {
	actions, err := cat.client.Actions(ctx)
	if err != nil {
		return err
	}
	sections, err := cat.client.AdminSections(ctx)
	if err != nil {
		return err
	}
	cat.cache.Set(actionsKey, actions, cat.catalogTTL)
	cat.cache.Set(adminSectionsKey, sections, cat.catalogTTL)
	return nil
}

// ResendAllowed reports whether a reset email may be re-sent to the address.
func (cat *Catalog) ResendAllowed(email string) bool {
	_, onCooldown := cat.cache.Get(resendKeyPrefix + email)
	return !onCooldown
}

// MarkResend starts the cooldown window for the address.
func (cat *Catalog) MarkResend(email string) {
	cat.cache.Set(resendKeyPrefix+email, time.Now(), cat.resendCooldown)
}
