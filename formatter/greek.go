package formatter

// greekLetterNames is the fixed set of Greek letter names that render as
// backslash-prefixed macros. The set is closed: 24 lowercase and 24
// uppercase names.
var greekLetterNames = map[string]bool{
	"alpha":   true,
	"beta":    true,
	"gamma":   true,
	"delta":   true,
	"epsilon": true,
	"zeta":    true,
	"eta":     true,
	"theta":   true,
	"iota":    true,
	"kappa":   true,
	"lambda":  true,
	"mu":      true,
	"nu":      true,
	"xi":      true,
	"omicron": true,
	"pi":      true,
	"rho":     true,
	"sigma":   true,
	"tau":     true,
	"upsilon": true,
	"phi":     true,
	"chi":     true,
	"psi":     true,
	"omega":   true,

	"Alpha":   true,
	"Beta":    true,
	"Gamma":   true,
	"Delta":   true,
	"Epsilon": true,
	"Zeta":    true,
	"Eta":     true,
	"Theta":   true,
	"Iota":    true,
	"Kappa":   true,
	"Lambda":  true,
	"Mu":      true,
	"Nu":      true,
	"Xi":      true,
	"Omicron": true,
	"Pi":      true,
	"Rho":     true,
	"Sigma":   true,
	"Tau":     true,
	"Upsilon": true,
	"Phi":     true,
	"Chi":     true,
	"Psi":     true,
	"Omega":   true,
}
