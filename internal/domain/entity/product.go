package entity

import "github.com/google/uuid"

// Product is owned by the product directory and read-only to the lifecycle
// engine. Invariant: MinPurchaseQty <= MaxPurchaseQty.
type Product struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the product.
	Name           string    // Display name.
	Images         []string  // Image URLs, first one used in alerts.
	MinPurchaseQty int       // Minimum total quantity needed for a group to succeed.
	MaxPurchaseQty int       // Maximum total quantity a group may order.
	TermDays       int       // Days until payment is due after the threshold is met.
	SellerID       uuid.UUID // The selling user.
}
