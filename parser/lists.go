package parser

// The document-level lists have no type of their own, so they get
// package-level copy and compare helpers.

// CopySecurity deep copies a security requirement list, keeping nil and empty distinct.
func CopySecurity(v []SecurityRequirement) []SecurityRequirement {
	return deepCopySecurityRequirements(v)
}

// EqualSecurity compares two security requirement lists in order.
// Nil and empty lists are equal.
func EqualSecurity(a, b []SecurityRequirement) bool {
	return equalSecurityRequirements(a, b)
}

// CopyServers deep copies a server list.
func CopyServers(v []*Server) []*Server {
	return deepCopySlice(v)
}

// EqualServers compares two server lists in order.
func EqualServers(a, b []*Server) bool {
	return equalSlice(a, b)
}
