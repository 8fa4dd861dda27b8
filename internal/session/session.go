package session

import (
	"fmt"
	"strings"
)

// Role identifies which partner vertical a credential belongs to. Each role
// keeps its own token/id pair in storage, so a browser-style multi-login
// (restaurant and shop on the same machine) never clobbers the other role.
type Role string

const (
	RoleRestaurant Role = "restaurant"
	RoleShop       Role = "shop"
	RoleActivities Role = "activities"
)

// roleOrder is the fixed resolution priority. Resolve returns the first role
// with a complete credential pair, so restaurant wins over shop wins over
// activities when more than one is signed in.
var roleOrder = []Role{RoleRestaurant, RoleShop, RoleActivities}

// Roles returns every known partner role in resolution order.
func Roles() []Role {
	out := make([]Role, len(roleOrder))
	copy(out, roleOrder)
	return out
}

// ParseRole accepts either the storage form ("shop") or the display label the
// backend uses in login payloads ("Shop", "Activities").
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "restaurant":
		return RoleRestaurant, nil
	case "shop":
		return RoleShop, nil
	case "activities", "activity":
		return RoleActivities, nil
	}
	return "", fmt.Errorf("unknown partner role %q", s)
}

// Label returns the capitalized form the backend expects in the login "role"
// field.
func (r Role) Label() string {
	switch r {
	case RoleRestaurant:
		return "Restaurant"
	case RoleShop:
		return "Shop"
	case RoleActivities:
		return "Activities"
	}
	return string(r)
}

// BusinessType is the path segment used by the reservation and review
// endpoints ("Restaurant", "Shop", "Activity").
func (r Role) BusinessType() string {
	if r == RoleActivities {
		return "Activity"
	}
	return r.Label()
}

// Session is one resolved partner login. It is valid only when both Token and
// PartnerID are non-empty; token validity itself is enforced server-side.
type Session struct {
	Role      Role
	Token     string
	PartnerID string
}
