// Package lineage groups purchases into customer lineages and detects where
// each purchase came from.
package lineage

import (
	"slices"
	"sort"

	"vradmin/internal/domain/entity"
)

// maxWebshopOrderNumberLength is the longest order number the webshop issues.
const maxWebshopOrderNumberLength = 8

// Group is one customer's purchases. Current is the newest by date.
type Group struct {
	Email    string
	Current  entity.Purchase
	Previous []entity.Purchase
}

// IDs returns every purchase id of the group, current first.
func (g Group) IDs() []int64 {
	ids := make([]int64, 0, len(g.Previous)+1)
	ids = append(ids, g.Current.ID)
	for _, p := range g.Previous {
		ids = append(ids, p.ID)
	}

	return ids
}

func newer(a, b *entity.Purchase) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}

	return a.ID > b.ID
}

// GroupByCustomer groups purchases by case-insensitive email. Groups are
// ordered newest current purchase first; previous purchases newest first.
func GroupByCustomer(purchases []entity.Purchase) []Group {
	byEmail := make(map[string][]entity.Purchase)
	order := make([]string, 0)
	for _, p := range purchases {
		key := p.NormalizedEmail()
		if _, ok := byEmail[key]; !ok {
			order = append(order, key)
		}
		byEmail[key] = append(byEmail[key], p)
	}

	groups := make([]Group, 0, len(order))
	for _, email := range order {
		members := byEmail[email]
		sort.SliceStable(members, func(i, j int) bool { return newer(&members[i], &members[j]) })
		groups = append(groups, Group{
			Email:    email,
			Current:  members[0],
			Previous: members[1:],
		})
	}
	sort.SliceStable(groups, func(i, j int) bool { return newer(&groups[i].Current, &groups[j].Current) })

	return groups
}

// DetectSource reports where a purchase was created. The recorded
// purchase_source wins; rows without one fall back to the order number
// length and whether the webshop knows the order.
func DetectSource(p *entity.Purchase, hasOrderStatus bool) entity.PurchaseSource {
	if info := p.PrimaryInfo(); info != nil && info.PurchaseSource != "" {
		return info.PurchaseSource
	}

	return legacySource(p.OrderNumber, hasOrderStatus)
}

// legacySource is the compatibility rule for rows imported before
// purchase_source was recorded.
func legacySource(orderNumber string, hasOrderStatus bool) entity.PurchaseSource {
	switch {
	case len(orderNumber) > maxWebshopOrderNumberLength:
		return entity.PurchaseSourceAdmin
	case hasOrderStatus:
		return entity.PurchaseSourceWebshop
	default:
		return entity.PurchaseSourceImported
	}
}

// Filter keeps the groups matching a notification filter. With
// MissingShipping any purchase of the lineage may match; otherwise only the
// current purchase is compared.
func Filter(groups []Group, filter entity.PurchaseListFilter) []Group {
	if len(filter.PurchaseIDs) == 0 {
		return groups
	}

	kept := make([]Group, 0, len(groups))
	for _, g := range groups {
		candidates := []int64{g.Current.ID}
		if filter.MissingShipping {
			candidates = g.IDs()
		}
		if slices.ContainsFunc(candidates, func(id int64) bool { return slices.Contains(filter.PurchaseIDs, id) }) {
			kept = append(kept, g)
		}
	}

	return kept
}

// Rows flattens groups into table rows, each current purchase followed by
// its previous purchases. hasOrderStatus may be nil.
func Rows(groups []Group, hasOrderStatus func(purchaseID int64) bool) []entity.PurchaseRow {
	known := func(id int64) bool { return hasOrderStatus != nil && hasOrderStatus(id) }

	rows := make([]entity.PurchaseRow, 0, len(groups))
	for _, g := range groups {
		previousIDs := g.IDs()[1:]
		rows = append(rows, entity.PurchaseRow{
			Purchase:            g.Current,
			CustomerName:        g.Current.CustomerName(),
			Source:              DetectSource(&g.Current, known(g.Current.ID)),
			IsCurrent:           true,
			PreviousPurchaseIDs: previousIDs,
		})
		for _, p := range g.Previous {
			rows = append(rows, entity.PurchaseRow{
				Purchase:     p,
				CustomerName: p.CustomerName(),
				Source:       DetectSource(&p, known(p.ID)),
			})
		}
	}

	return rows
}
