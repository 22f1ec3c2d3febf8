package domain

const (
	RoleAdmin     = "admin"
	RoleUser      = "user"
	RoleOficiales = "user-oficiales"

	RoleOficial15 = "OFICIAL DE 15"
	RoleOficial20 = "OFICIAL DE 20"
	RoleOficial65 = "OFICIAL DE 65"
)

// precinctByRole maps precinct-officer roles to the dependencia their record
// visibility is restricted to. Roles absent from this table see all records.
// Adding a precinct is a single new entry here plus the role in validRoles.
var precinctByRole = map[string]string{
	RoleOficial15: "comisaria_15",
	RoleOficial20: "comisaria_20",
	RoleOficial65: "comisaria_65",
}

var validRoles = map[string]struct{}{
	RoleAdmin:     {},
	RoleUser:      {},
	RoleOficiales: {},
	RoleOficial15: {},
	RoleOficial20: {},
	RoleOficial65: {},
}

// ValidRole reports whether role is one of the enumerated roles. Roles are
// opaque strings compared by exact match; there is no hierarchy.
func ValidRole(role string) bool {
	_, ok := validRoles[role]
	return ok
}

// PrecinctFor returns the dependencia a role is scoped to. The empty string
// means unrestricted visibility (admin, user, user-oficiales).
func PrecinctFor(role string) string {
	return precinctByRole[role]
}

// NovedadRoles is the allow-list for every record operation. admin carries no
// implicit privileges: it must be listed here explicitly like any other role.
var NovedadRoles = []string{
	RoleAdmin,
	RoleOficiales,
	RoleOficial15,
	RoleOficial20,
	RoleOficial65,
}

// ParteRoles gates the parte-de-novedades dashboards.
var ParteRoles = []string{RoleAdmin, RoleOficiales}
