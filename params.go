package slhdsa

import "fmt"

// HashSuiteKind selects which of the three hash-suite families a parameter
// set uses. The family is fixed at context construction and, per the
// design notes, governs the address serialization width as well: SHAKE
// uses the full 32-byte address, the two SHA-2 families use the 22-byte
// compressed form.
type HashSuiteKind int

const (
	SuiteShake HashSuiteKind = iota
	SuiteSha2Cat1
	SuiteSha2Cat35
)

func (k HashSuiteKind) String() string {
	switch k {
	case SuiteShake:
		return "SHAKE"
	case SuiteSha2Cat1:
		return "SHA2-cat1"
	case SuiteSha2Cat35:
		return "SHA2-cat3/5"
	default:
		return "unknown"
	}
}

// ParamSet is one of the twelve named SLH-DSA instances: a security
// parameter n, a hypertree geometry (h, d, h'), a FORS geometry (a, k), a
// message digest length m, and the hash suite family that binds them to
// concrete primitives.
type ParamSet struct {
	Name string

	N  int // security parameter, in bytes
	H  int // total hypertree height
	D  int // number of hypertree layers
	H1 int // per-XMSS height, h/d
	A  int // FORS per-tree height
	K  int // number of FORS trees
	M  int // message digest length, in bytes

	SecurityCategory int
	PKBytes           int
	SigBytes          int

	Suite HashSuiteKind
}

// wotsLogW and wotsW are fixed by FIPS 205 for every standard parameter
// set: w is always 16 hash-chain values, i.e. lg_w = 4 bits per digit.
const (
	wotsLogW = 4
	wotsW    = 16
)

// Len1 is the number of base-w digits needed to encode an n-byte message.
func (p ParamSet) Len1() int { return ceilDiv(p.N*8, wotsLogW) }

// Len2 is the number of base-w digits needed to encode the WOTS+ checksum.
func (p ParamSet) Len2() int { return 3 }

// Len is the total number of WOTS+ hash chains, len1+len2.
func (p ParamSet) Len() int { return p.Len1() + p.Len2() }

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// PKLen is the byte length of a serialized public key, 2n.
func (p ParamSet) PKLen() int { return 2 * p.N }

// SKLen is the byte length of a serialized signing key, 4n.
func (p ParamSet) SKLen() int { return 4 * p.N }

// registry lists every standard SLH-DSA parameter set: each of the six
// named geometries in both its SHA-2 and SHAKE variants.
var registry = []ParamSet{
	{Name: "SLH-DSA-SHA2-128s", N: 16, H: 63, D: 7, H1: 9, A: 12, K: 14, M: 30, SecurityCategory: 1, PKBytes: 32, SigBytes: 7856, Suite: SuiteSha2Cat1},
	{Name: "SLH-DSA-SHAKE-128s", N: 16, H: 63, D: 7, H1: 9, A: 12, K: 14, M: 30, SecurityCategory: 1, PKBytes: 32, SigBytes: 7856, Suite: SuiteShake},
	{Name: "SLH-DSA-SHA2-128f", N: 16, H: 66, D: 22, H1: 3, A: 6, K: 33, M: 34, SecurityCategory: 1, PKBytes: 32, SigBytes: 17088, Suite: SuiteSha2Cat1},
	{Name: "SLH-DSA-SHAKE-128f", N: 16, H: 66, D: 22, H1: 3, A: 6, K: 33, M: 34, SecurityCategory: 1, PKBytes: 32, SigBytes: 17088, Suite: SuiteShake},
	{Name: "SLH-DSA-SHA2-192s", N: 24, H: 63, D: 7, H1: 9, A: 14, K: 17, M: 39, SecurityCategory: 3, PKBytes: 48, SigBytes: 16224, Suite: SuiteSha2Cat35},
	{Name: "SLH-DSA-SHAKE-192s", N: 24, H: 63, D: 7, H1: 9, A: 14, K: 17, M: 39, SecurityCategory: 3, PKBytes: 48, SigBytes: 16224, Suite: SuiteShake},
	{Name: "SLH-DSA-SHA2-192f", N: 24, H: 66, D: 22, H1: 3, A: 8, K: 33, M: 42, SecurityCategory: 3, PKBytes: 48, SigBytes: 35664, Suite: SuiteSha2Cat35},
	{Name: "SLH-DSA-SHAKE-192f", N: 24, H: 66, D: 22, H1: 3, A: 8, K: 33, M: 42, SecurityCategory: 3, PKBytes: 48, SigBytes: 35664, Suite: SuiteShake},
	{Name: "SLH-DSA-SHA2-256s", N: 32, H: 64, D: 8, H1: 8, A: 14, K: 22, M: 47, SecurityCategory: 5, PKBytes: 64, SigBytes: 29792, Suite: SuiteSha2Cat35},
	{Name: "SLH-DSA-SHAKE-256s", N: 32, H: 64, D: 8, H1: 8, A: 14, K: 22, M: 47, SecurityCategory: 5, PKBytes: 64, SigBytes: 29792, Suite: SuiteShake},
	{Name: "SLH-DSA-SHA2-256f", N: 32, H: 68, D: 17, H1: 4, A: 9, K: 35, M: 49, SecurityCategory: 5, PKBytes: 64, SigBytes: 49856, Suite: SuiteSha2Cat35},
	{Name: "SLH-DSA-SHAKE-256f", N: 32, H: 68, D: 17, H1: 4, A: 9, K: 35, M: 49, SecurityCategory: 5, PKBytes: 64, SigBytes: 49856, Suite: SuiteShake},
}

var registryNameLut map[string]ParamSet

func init() {
	registryNameLut = make(map[string]ParamSet, len(registry))
	for _, p := range registry {
		registryNameLut[p.Name] = p
	}
}

// ParamsFromName looks up a registered parameter set by its standard name,
// e.g. "SLH-DSA-SHAKE-128s".
func ParamsFromName(name string) (ParamSet, Error) {
	p, ok := registryNameLut[name]
	if !ok {
		return ParamSet{}, errorf(InvalidParameters, "unknown parameter set %q", name)
	}
	return p, nil
}

// ListNames returns the names of every registered parameter set.
func ListNames() []string {
	names := make([]string, len(registry))
	for i, p := range registry {
		names[i] = p.Name
	}
	return names
}

func (p ParamSet) String() string {
	return fmt.Sprintf("%s(n=%d,h=%d,d=%d,h'=%d,a=%d,k=%d,m=%d)",
		p.Name, p.N, p.H, p.D, p.H1, p.A, p.K, p.M)
}
