package authorization

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleTechnician UserRole = "technician"
	RoleClient     UserRole = "client"
	// RoleAdminTechnician passes both admin and technician gates. Used by
	// the field techs who also run the back office.
	RoleAdminTechnician UserRole = "admin_technician"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin || r == RoleAdminTechnician
}

func (r UserRole) IsTechnician() bool {
	return r == RoleTechnician || r == RoleAdminTechnician
}

func (r UserRole) IsClient() bool {
	return r == RoleClient
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTechnician, RoleClient, RoleAdminTechnician:
		return true
	}
	return false
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleClient
}
