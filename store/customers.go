package store

import (
	"sort"

	"voltstore/entities"
)

// Customers aggregates order history into one row per distinct email:
// order count, total spent and the most recent order date. Rows keep the
// order emails were first seen in while walking the history.
func (s *Store) Customers() []entities.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customers()
}

func (s *Store) customers() []entities.Customer {
	var out []entities.Customer
	index := make(map[string]int)

	for _, o := range s.orders {
		if i, ok := index[o.Email]; ok {
			out[i].Orders++
			out[i].TotalSpent += o.Total
			if o.Date.After(out[i].LastOrder) {
				out[i].LastOrder = o.Date
			}
			continue
		}
		index[o.Email] = len(out)
		out = append(out, entities.Customer{
			Id:         len(out) + 1,
			Email:      o.Email,
			Name:       o.FirstName + " " + o.LastName,
			Phone:      o.Phone,
			Orders:     1,
			TotalSpent: o.Total,
			LastOrder:  o.Date,
		})
	}
	return out
}

// Stats computes the admin dashboard numbers: revenue, per-status order
// counts, the five lowest-stock products under the configured threshold and
// stock totals per category.
func (s *Store) Stats() entities.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := entities.DashboardStats{
		TotalOrders:    len(s.orders),
		TotalProducts:  len(s.products),
		TotalCustomers: len(s.customers()),
		OrdersByStatus: make(map[entities.OrderStatus]int),
	}
	for _, o := range s.orders {
		stats.TotalRevenue += o.Total
		stats.OrdersByStatus[o.Status]++
	}

	var low []entities.Product
	for _, p := range s.products {
		if p.Stock < s.settings.StockThreshold {
			low = append(low, p)
		}
	}
	sort.Slice(low, func(i, j int) bool { return low[i].Stock < low[j].Stock })
	if len(low) > 5 {
		low = low[:5]
	}
	stats.LowStock = low

	for _, c := range s.categories {
		cs := entities.CategoryStock{Category: c.Name}
		for _, p := range s.products {
			if p.Category == c.Id {
				cs.Stock += p.Stock
			}
		}
		stats.StockByCategory = append(stats.StockByCategory, cs)
	}
	return stats
}
