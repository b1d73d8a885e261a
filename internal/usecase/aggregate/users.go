package aggregate

import "taller_dashboards/internal/domain/entities"

type UserBreakdown struct {
	Total  int            `json:"total"`
	Active int            `json:"active"`
	ByRole map[string]int `json:"by_role"`
}

// UserBreakdownOf tallies users per role. The three canonical roles are
// always present in the map so the output shape is stable.
func UserBreakdownOf(users []entities.User) UserBreakdown {
	b := UserBreakdown{ByRole: map[string]int{
		string(entities.RoleAdmin):        0,
		string(entities.RoleReceptionist): 0,
		string(entities.RoleMechanic):     0,
	}}
	for _, u := range users {
		b.Total++
		if u.Active {
			b.Active++
		}
		b.ByRole[string(u.Role)]++
	}
	return b
}
