package status

import (
	"fmt"
	"sort"

	"vradmin/internal/domain/entity"
)

const (
	// maxInternalOrderIDLength is the longest order id the webshop issues;
	// longer ids come from the admin tooling.
	maxInternalOrderIDLength = 8

	orderStatusCompleted = "completed"

	ShippingMissingTitle = "Shipping Information Missing"
)

// MissingShipping reports whether a completed webshop start package has no
// shipping recorded.
func MissingShipping(infos []entity.AdditionalInfo, st *entity.PurchaseStatus) bool {
	if st == nil || st.ShippingInfo != nil || st.OrderStatus == nil {
		return false
	}

	info := entity.FirstAdditionalInfo(infos)
	if info == nil || info.PurchaseType != entity.PurchaseTypeStartPackage {
		return false
	}

	return webshopIssued(info.PurchaseSource, st.OrderStatus.OrderID.String()) &&
		st.OrderStatus.Status == orderStatusCompleted
}

// webshopIssued trusts an explicit purchase source. Rows written before the
// source existed are judged by the length of their order id.
func webshopIssued(source entity.PurchaseSource, orderID string) bool {
	if source != "" {
		return source == entity.PurchaseSourceWebshop
	}

	return len(orderID) <= maxInternalOrderIDLength
}

// MissingShippingIDs returns the sorted ids of the snapshots that qualify.
func MissingShippingIDs(batch []entity.ClassifiedSnapshot) []int64 {
	ids := make([]int64, 0)
	for _, item := range batch {
		if MissingShipping(item.AdditionalInfo, item.Status) {
			ids = append(ids, item.PurchaseID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// ShippingMissingMessage is the body of the batched notification.
func ShippingMissingMessage(ids []int64) string {
	if len(ids) == 1 {
		return fmt.Sprintf("Purchase %d is a completed start package without shipping information.", ids[0])
	}

	return fmt.Sprintf("%d completed start packages are missing shipping information.", len(ids))
}
