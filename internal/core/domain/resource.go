package domain

import (
	"net/url"
	"sort"
	"strings"
)

// ResourceKind identifies an admin API resource collection.
type ResourceKind string

// Admin resources exposed by the platform.
const (
	ResourceProducts       ResourceKind = "products"
	ResourceCategories     ResourceKind = "categories"
	ResourceOrders         ResourceKind = "orders"
	ResourceBanners        ResourceKind = "banners"
	ResourceCoupons        ResourceKind = "coupons"
	ResourceDeliveryPrices ResourceKind = "delivery-prices"
	ResourceReviews        ResourceKind = "reviews"
)

var resourcePaths = map[ResourceKind]string{
	ResourceProducts:       "/admin/products/",
	ResourceCategories:     "/admin/categories/",
	ResourceOrders:         "/admin/orders/",
	ResourceBanners:        "/admin/banners/",
	ResourceCoupons:        "/admin/coupons/",
	ResourceDeliveryPrices: "/admin/delivery-prices/",
	ResourceReviews:        "/admin/reviews/",
}

// IsValid returns true if the resource kind is recognised.
func (k ResourceKind) IsValid() bool {
	_, ok := resourcePaths[k]
	return ok
}

// CollectionPath returns the collection path, e.g. "/admin/products/".
func (k ResourceKind) CollectionPath() string {
	return resourcePaths[k]
}

// ItemPath returns the path of a single item, e.g. "/admin/products/42/".
// The id is escaped as one path segment.
func (k ResourceKind) ItemPath(id string) string {
	return resourcePaths[k] + url.PathEscape(strings.Trim(id, "/")) + "/"
}

// ParseResourceKind converts user input into a ResourceKind.
// Underscores are accepted in place of hyphens.
func ParseResourceKind(s string) (ResourceKind, error) {
	k := ResourceKind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-"))
	if !k.IsValid() {
		return "", ErrUnsupportedType
	}
	return k, nil
}

// AllResourceKinds returns every resource kind in sorted order.
func AllResourceKinds() []ResourceKind {
	kinds := make([]ResourceKind, 0, len(resourcePaths))
	for k := range resourcePaths {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
