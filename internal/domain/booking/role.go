package booking

// Role is the closed set of caller roles. Every role comparison goes
// through this type; raw strings from tokens or storage must pass
// ParseRole first.
type Role string

const (
	RoleCliente       Role = "CLIENTE"
	RoleBarbeiro      Role = "BARBEIRO"
	RoleRecepcionista Role = "RECEPCIONISTA"
	RoleDono          Role = "DONO"
)

// ParseRole maps a stored role string onto the enum. Unknown values come
// back as ("", false) and must be treated as unauthorized.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCliente, RoleBarbeiro, RoleRecepcionista, RoleDono:
		return Role(s), true
	}
	return "", false
}

func (r Role) String() string {
	return string(r)
}
