package cpu

import "github.com/wippyai/jit-dispatch/features"

// ID is the canonical identifier of a database profile.
type ID uint32

const (
	Generic ID = iota
	RV64GC
	RV64GCV
	RV64IMAFDC
	RV64IMAFDCV
	SiFiveU74
	SiFiveU84
	SiFiveU87
	SiFiveU89
	SiFiveU9
)

// GenericName is the profile name reported when nothing better is known.
const GenericName = "generic"

// Profile is one capability database entry. Parent names the profile
// whose name is reported when this one is not recognized downstream.
// Entries are static and read-only after program load.
type Profile struct {
	Name     string
	ID       ID
	Parent   ID
	Features features.Set
}

var (
	rv64gcSet = features.Mask(features.M, features.A, features.F, features.D, features.C)

	rv64gcvSet = rv64gcSet.Union(features.Mask(features.V))

	sifiveU74Set = rv64gcSet.Union(features.Mask(
		features.Zba, features.Zbb, features.Zbs,
		features.Zicbom, features.Zicbop, features.Zicboz))

	sifiveU84Set = sifiveU74Set.Union(features.Mask(
		features.Zicond, features.Zawrs, features.Zfa, features.Zfhmin))

	sifiveU87Set = sifiveU84Set.Union(features.Mask(
		features.Zfh, features.Zicntr, features.Zihpm))

	sifiveU89Set = sifiveU87Set.Union(features.Mask(
		features.Zicclsm, features.Zicfilp, features.Zicfiss,
		features.Zihintntl, features.Zihintpause, features.Zihwa,
		features.Zimop, features.Ziselect, features.Ztso))
)

// profiles is the capability database. Declared order is the tie-break
// order for best-match scoring, so keep generic baselines first.
var profiles = []Profile{
	{Name: GenericName, ID: Generic, Parent: Generic},
	{Name: "rv64gc", ID: RV64GC, Parent: Generic, Features: rv64gcSet},
	{Name: "rv64gcv", ID: RV64GCV, Parent: RV64GC, Features: rv64gcvSet},
	{Name: "rv64imafdc", ID: RV64IMAFDC, Parent: Generic, Features: rv64gcSet},
	{Name: "rv64imafdcv", ID: RV64IMAFDCV, Parent: RV64IMAFDC, Features: rv64gcvSet},
	{Name: "sifive-u74-mc", ID: SiFiveU74, Parent: RV64GC, Features: sifiveU74Set},
	{Name: "sifive-u84-mc", ID: SiFiveU84, Parent: SiFiveU74, Features: sifiveU84Set},
	{Name: "sifive-u87-mc", ID: SiFiveU87, Parent: SiFiveU84, Features: sifiveU87Set},
	{Name: "sifive-u89-mc", ID: SiFiveU89, Parent: SiFiveU87, Features: sifiveU89Set},
	{Name: "sifive-u9-mc", ID: SiFiveU9, Parent: SiFiveU89, Features: sifiveU89Set},
}

// Find looks a profile up by name. Returns nil when unknown.
func Find(name string) *Profile {
	for i := range profiles {
		if profiles[i].Name == name {
			return &profiles[i]
		}
	}
	return nil
}

// NameOf returns the name of a profile id, or GenericName when the id
// is not in the database.
func NameOf(id ID) string {
	for i := range profiles {
		if profiles[i].ID == id {
			return profiles[i].Name
		}
	}
	return GenericName
}

// FallbackName returns the parent profile's name.
func (p *Profile) FallbackName() string {
	return NameOf(p.Parent)
}

// IsGenericID reports whether an id names a generic ISA baseline rather
// than a concrete microarchitecture. Generic ids defer to the backend's
// own host CPU name when one is available.
func IsGenericID(id ID) bool {
	switch id {
	case Generic, RV64GC, RV64GCV, RV64IMAFDC, RV64IMAFDCV:
		return true
	default:
		return false
	}
}

// Profiles returns the database in declared order. The slice is shared;
// callers must treat it as read-only.
func Profiles() []Profile {
	return profiles
}
