package runas

import (
	"fmt"
	"strings"
)

// PrincipalKind distinguishes the well-known principals from named
// users.
type PrincipalKind int

const (
	// NamedPrincipalKind refers to a specific user account.
	NamedPrincipalKind PrincipalKind = iota
	// AllPrincipalsKind refers to every account on the system.
	AllPrincipalsKind
	// CurrentPrincipalKind refers to the account of the agent
	// process itself.
	CurrentPrincipalKind
)

// Principal to which access is granted or denied.
type Principal struct {
	kind     PrincipalKind
	identity string
}

var (
	// AllPrincipals is the principal matching every account.
	AllPrincipals = Principal{kind: AllPrincipalsKind}
	// CurrentPrincipal is the principal of the agent process.
	CurrentPrincipal = Principal{kind: CurrentPrincipalKind}
)

// NewNamedPrincipal creates a principal that refers to a user account
// by name. The name is not validated here. Blank names are rejected at
// the point where access is composed for them.
func NewNamedPrincipal(identity string) Principal {
	return Principal{
		kind:     NamedPrincipalKind,
		identity: identity,
	}
}

// Kind of the principal.
func (p Principal) Kind() PrincipalKind {
	return p.kind
}

// Identity returns the account name of a named principal. It is empty
// for the well-known principals.
func (p Principal) Identity() string {
	return p.identity
}

// IsBlank returns true if the principal is a named principal without
// a meaningful account name.
func (p Principal) IsBlank() bool {
	return p.kind == NamedPrincipalKind && strings.TrimSpace(p.identity) == ""
}

func (p Principal) String() string {
	switch p.kind {
	case AllPrincipalsKind:
		return "<all>"
	case CurrentPrincipalKind:
		return "<current>"
	default:
		return p.identity
	}
}

// Password of a user account. Formatting a Password never yields its
// value, so that it cannot end up in logs by accident.
type Password struct {
	value string
}

// NewPassword wraps a plain text password.
func NewPassword(value string) Password {
	return Password{value: value}
}

// Reveal returns the password in plain text. It should only be called
// at the point where the password is handed to the run-as tool.
func (p Password) Reveal() string {
	return p.value
}

// IsBlank returns true if the password is empty or only consists of
// whitespace.
func (p Password) IsBlank() bool {
	return strings.TrimSpace(p.value) == ""
}

func (p Password) String() string {
	return "********"
}

// Format implements fmt.Formatter, making sure %#v and friends don't
// print the password either.
func (p Password) Format(f fmt.State, verb rune) {
	f.Write([]byte(p.String()))
}

// Credentials of the user as which a build step needs to run.
type Credentials struct {
	User           Principal
	Password       Password
	ExtraArguments []Argument
}
