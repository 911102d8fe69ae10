package output

import (
	"strconv"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/ui/style"
)

// Column headers of the record tables.
var (
	ProductColumns = []string{"ID", "NAME", "CODE", "CATEGORY", "UNIT", "PRICE", "TAX%", "ACTIVE"}
	UserColumns    = []string{"ID", "NAME", "EMAIL", "PHONE", "ROLE", "COMPANY", "ACTIVE"}
	LookupColumns  = []string{"ID", "LABEL"}
)

// ProductRow renders p as table cells in ProductColumns order.
func ProductRow(p domain.Product) []string {
	return []string{
		p.ID,
		p.Name,
		p.Code,
		p.Category,
		p.UnitType,
		strconv.FormatFloat(p.Price, 'f', 2, 64),
		strconv.FormatFloat(p.TaxPercent, 'f', -1, 64),
		style.ActiveIcon(p.IsActive),
	}
}

// UserRow renders u as table cells in UserColumns order.
func UserRow(u domain.User) []string {
	return []string{
		u.ID,
		u.FullName,
		u.Email,
		u.Phone,
		u.Role,
		u.Company,
		style.ActiveIcon(u.IsActive),
	}
}

// LookupRow renders one dropdown option.
func LookupRow(item domain.LookupItem) []string {
	return []string{item.ID, item.Label}
}

// Rows maps items through row.
func Rows[T any](items []T, row func(T) []string) [][]string {
	out := make([][]string, 0, len(items))
	for _, item := range items {
		out = append(out, row(item))
	}
	return out
}
