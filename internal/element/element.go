package element

import (
	"strconv"
	"strings"

	"github.com/qcforge/basisset/internal/basis"
)

// MaxZ is the largest atomic number in the table.
const MaxZ = 118

// table holds symbol and name per element, indexed by Z-1.
var table = [MaxZ]struct{ sym, name string }{
	{"H", "hydrogen"}, {"He", "helium"}, {"Li", "lithium"}, {"Be", "beryllium"},
	{"B", "boron"}, {"C", "carbon"}, {"N", "nitrogen"}, {"O", "oxygen"},
	{"F", "fluorine"}, {"Ne", "neon"}, {"Na", "sodium"}, {"Mg", "magnesium"},
	{"Al", "aluminum"}, {"Si", "silicon"}, {"P", "phosphorus"}, {"S", "sulfur"},
	{"Cl", "chlorine"}, {"Ar", "argon"}, {"K", "potassium"}, {"Ca", "calcium"},
	{"Sc", "scandium"}, {"Ti", "titanium"}, {"V", "vanadium"}, {"Cr", "chromium"},
	{"Mn", "manganese"}, {"Fe", "iron"}, {"Co", "cobalt"}, {"Ni", "nickel"},
	{"Cu", "copper"}, {"Zn", "zinc"}, {"Ga", "gallium"}, {"Ge", "germanium"},
	{"As", "arsenic"}, {"Se", "selenium"}, {"Br", "bromine"}, {"Kr", "krypton"},
	{"Rb", "rubidium"}, {"Sr", "strontium"}, {"Y", "yttrium"}, {"Zr", "zirconium"},
	{"Nb", "niobium"}, {"Mo", "molybdenum"}, {"Tc", "technetium"}, {"Ru", "ruthenium"},
	{"Rh", "rhodium"}, {"Pd", "palladium"}, {"Ag", "silver"}, {"Cd", "cadmium"},
	{"In", "indium"}, {"Sn", "tin"}, {"Sb", "antimony"}, {"Te", "tellurium"},
	{"I", "iodine"}, {"Xe", "xenon"}, {"Cs", "cesium"}, {"Ba", "barium"},
	{"La", "lanthanum"}, {"Ce", "cerium"}, {"Pr", "praseodymium"}, {"Nd", "neodymium"},
	{"Pm", "promethium"}, {"Sm", "samarium"}, {"Eu", "europium"}, {"Gd", "gadolinium"},
	{"Tb", "terbium"}, {"Dy", "dysprosium"}, {"Ho", "holmium"}, {"Er", "erbium"},
	{"Tm", "thulium"}, {"Yb", "ytterbium"}, {"Lu", "lutetium"}, {"Hf", "hafnium"},
	{"Ta", "tantalum"}, {"W", "tungsten"}, {"Re", "rhenium"}, {"Os", "osmium"},
	{"Ir", "iridium"}, {"Pt", "platinum"}, {"Au", "gold"}, {"Hg", "mercury"},
	{"Tl", "thallium"}, {"Pb", "lead"}, {"Bi", "bismuth"}, {"Po", "polonium"},
	{"At", "astatine"}, {"Rn", "radon"}, {"Fr", "francium"}, {"Ra", "radium"},
	{"Ac", "actinium"}, {"Th", "thorium"}, {"Pa", "protactinium"}, {"U", "uranium"},
	{"Np", "neptunium"}, {"Pu", "plutonium"}, {"Am", "americium"}, {"Cm", "curium"},
	{"Bk", "berkelium"}, {"Cf", "californium"}, {"Es", "einsteinium"}, {"Fm", "fermium"},
	{"Md", "mendelevium"}, {"No", "nobelium"}, {"Lr", "lawrencium"}, {"Rf", "rutherfordium"},
	{"Db", "dubnium"}, {"Sg", "seaborgium"}, {"Bh", "bohrium"}, {"Hs", "hassium"},
	{"Mt", "meitnerium"}, {"Ds", "darmstadtium"}, {"Rg", "roentgenium"}, {"Cn", "copernicium"},
	{"Nh", "nihonium"}, {"Fl", "flerovium"}, {"Mc", "moscovium"}, {"Lv", "livermorium"},
	{"Ts", "tennessine"}, {"Og", "oganesson"},
}

var symToZ = buildSymToZ()

func buildSymToZ() map[string]int {
	m := make(map[string]int, MaxZ)
	for i, e := range table {
		m[strings.ToLower(e.sym)] = i + 1
	}
	return m
}

// Symbol returns the capitalized symbol for an atomic number.
func Symbol(z int) (string, error) {
	if z < 1 || z > MaxZ {
		return "", basis.NewNotFound("no element with atomic number %d", z)
	}
	return table[z-1].sym, nil
}

// Name returns the lowercase English name for an atomic number.
func Name(z int) (string, error) {
	if z < 1 || z > MaxZ {
		return "", basis.NewNotFound("no element with atomic number %d", z)
	}
	return table[z-1].name, nil
}

// Z returns the atomic number for a symbol. Matching is case-insensitive.
func Z(sym string) (int, error) {
	z, ok := symToZ[strings.ToLower(strings.TrimSpace(sym))]
	if !ok {
		return 0, basis.NewNotFound("unknown element symbol %q", sym)
	}
	return z, nil
}

// FromString parses either a decimal atomic number or a symbol.
func FromString(s string) (int, error) {
	s = strings.TrimSpace(s)
	if z, err := strconv.Atoi(s); err == nil {
		if z < 1 || z > MaxZ {
			return 0, basis.NewNotFound("no element with atomic number %d", z)
		}
		return z, nil
	}
	return Z(s)
}
