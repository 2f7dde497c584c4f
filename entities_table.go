package htmltok

// Named, numeric and hex character reference tables for the entity
// decoder (§4.3 of the design notes this module implements). They are
// hand-maintained, not generated from the WHATWG entities.json the
// reference HTML5 tokenizers are generated from: a hand-curated,
// representative subset of the full ~2200-entry named character
// reference list; names outside it are not decoded. The subset is large
// enough to exercise every branch of the decoder (ASCII punctuation,
// Latin-1 accented letters, typography, math/arrows, Greek letters).

// xmlNamedEntities is the complete XML 1.0 predefined entity set. It is
// the only named-entity table consulted in XML mode.
var xmlNamedEntities = map[string]string{
	"amp":  "&",
	"lt":   "<",
	"gt":   ">",
	"quot": "\"",
	"apos": "'",
}

// legacyNamedEntities are names HTML4 permitted without a trailing
// semicolon. This is the table the decoder's "legacy" prefix search
// (§4.3) consults in non-XML mode.
var legacyNamedEntities = map[string]string{
	"amp":    "&",
	"lt":     "<",
	"gt":     ">",
	"quot":   "\"",
	"AMP":    "&",
	"LT":     "<",
	"GT":     ">",
	"QUOT":   "\"",
	"nbsp":   " ",
	"copy":   "©",
	"COPY":   "©",
	"reg":    "®",
	"REG":    "®",
	"deg":    "°",
	"plusmn": "±",
	"para":   "¶",
	"middot": "·",
	"sup1":   "¹",
	"sup2":   "²",
	"sup3":   "³",
	"frac12": "½",
	"frac14": "¼",
	"frac34": "¾",
	"iquest": "¿",
	"iexcl":  "¡",
	"cent":   "¢",
	"pound":  "£",
	"curren": "¤",
	"yen":    "¥",
	"sect":   "§",
	"uml":    "¨",
	"ordf":   "ª",
	"laquo":  "«",
	"not":    "¬",
	"shy":    "­",
	"macr":   "¯",
	"acute":  "´",
	"micro":  "µ",
	"cedil":  "¸",
	"ordm":   "º",
	"raquo":  "»",
	"times":  "×",
	"divide": "÷",
	"Agrave": "À",
	"Aacute": "Á",
	"Acirc":  "Â",
	"Atilde": "Ã",
	"Auml":   "Ä",
	"Aring":  "Å",
	"AElig":  "Æ",
	"Ccedil": "Ç",
	"Egrave": "È",
	"Eacute": "É",
	"Ecirc":  "Ê",
	"Euml":   "Ë",
	"Igrave": "Ì",
	"Iacute": "Í",
	"Icirc":  "Î",
	"Iuml":   "Ï",
	"ETH":    "Ð",
	"Ntilde": "Ñ",
	"Ograve": "Ò",
	"Oacute": "Ó",
	"Ocirc":  "Ô",
	"Otilde": "Õ",
	"Ouml":   "Ö",
	"Oslash": "Ø",
	"Ugrave": "Ù",
	"Uacute": "Ú",
	"Ucirc":  "Û",
	"Uuml":   "Ü",
	"Yacute": "Ý",
	"THORN":  "Þ",
	"szlig":  "ß",
	"agrave": "à",
	"aacute": "á",
	"acirc":  "â",
	"atilde": "ã",
	"auml":   "ä",
	"aring":  "å",
	"aelig":  "æ",
	"ccedil": "ç",
	"egrave": "è",
	"eacute": "é",
	"ecirc":  "ê",
	"euml":   "ë",
	"igrave": "ì",
	"iacute": "í",
	"icirc":  "î",
	"iuml":   "ï",
	"eth":    "ð",
	"ntilde": "ñ",
	"ograve": "ò",
	"oacute": "ó",
	"ocirc":  "ô",
	"otilde": "õ",
	"ouml":   "ö",
	"oslash": "ø",
	"ugrave": "ù",
	"uacute": "ú",
	"ucirc":  "û",
	"uuml":   "ü",
	"yacute": "ý",
	"thorn":  "þ",
	"yuml":   "ÿ",
}

// namedEntities is the semicolon-required named character reference
// table, a superset of legacyNamedEntities plus entries that HTML5 only
// recognizes with a trailing semicolon.
var namedEntities = buildNamedEntities()

func buildNamedEntities() map[string]string {
	m := make(map[string]string, len(legacyNamedEntities)+64)
	for k, v := range legacyNamedEntities {
		m[k] = v
	}
	extra := map[string]string{
		"euro":      "€",
		"hellip":    "…",
		"mdash":     "—",
		"ndash":     "–",
		"lsquo":     "‘",
		"rsquo":     "’",
		"sbquo":     "‚",
		"ldquo":     "“",
		"rdquo":     "”",
		"bdquo":     "„",
		"dagger":    "†",
		"Dagger":    "‡",
		"bull":      "•",
		"permil":    "‰",
		"prime":     "′",
		"Prime":     "″",
		"lsaquo":    "‹",
		"rsaquo":    "›",
		"oline":     "‾",
		"frasl":     "⁄",
		"trade":     "™",
		"larr":      "←",
		"uarr":      "↑",
		"rarr":      "→",
		"darr":      "↓",
		"harr":      "↔",
		"crarr":     "↵",
		"forall":    "∀",
		"part":      "∂",
		"exist":     "∃",
		"empty":     "∅",
		"nabla":     "∇",
		"isin":      "∈",
		"notin":     "∉",
		"ni":        "∋",
		"prod":      "∏",
		"sum":       "∑",
		"minus":     "−",
		"lowast":    "∗",
		"radic":     "√",
		"prop":      "∝",
		"infin":     "∞",
		"ang":       "∠",
		"and":       "∧",
		"or":        "∨",
		"cap":       "∩",
		"cup":       "∪",
		"int":       "∫",
		"there4":    "∴",
		"sim":       "∼",
		"cong":      "≅",
		"asymp":     "≈",
		"ne":        "≠",
		"equiv":     "≡",
		"le":        "≤",
		"ge":        "≥",
		"sub":       "⊂",
		"sup":       "⊃",
		"nsub":      "⊄",
		"sube":      "⊆",
		"supe":      "⊇",
		"oplus":     "⊕",
		"otimes":    "⊗",
		"perp":      "⊥",
		"sdot":      "⋅",
		"alpha":     "α",
		"beta":      "β",
		"gamma":     "γ",
		"delta":     "δ",
		"epsilon":   "ε",
		"zeta":      "ζ",
		"eta":       "η",
		"theta":     "θ",
		"iota":      "ι",
		"kappa":     "κ",
		"lambda":    "λ",
		"mu":        "μ",
		"nu":        "ν",
		"xi":        "ξ",
		"omicron":   "ο",
		"pi":        "π",
		"rho":       "ρ",
		"sigmaf":    "ς",
		"sigma":     "σ",
		"tau":       "τ",
		"upsilon":   "υ",
		"phi":       "φ",
		"chi":       "χ",
		"psi":       "ψ",
		"omega":     "ω",
		"Alpha":     "Α",
		"Beta":      "Β",
		"Gamma":     "Γ",
		"Delta":     "Δ",
		"Epsilon":   "Ε",
		"Zeta":      "Ζ",
		"Eta":       "Η",
		"Theta":     "Θ",
		"Iota":      "Ι",
		"Kappa":     "Κ",
		"Lambda":    "Λ",
		"Mu":        "Μ",
		"Nu":        "Ν",
		"Xi":        "Ξ",
		"Omicron":   "Ο",
		"Pi":        "Π",
		"Rho":       "Ρ",
		"Sigma":     "Σ",
		"Tau":       "Τ",
		"Upsilon":   "Υ",
		"Phi":       "Φ",
		"Chi":       "Χ",
		"Psi":       "Ψ",
		"Omega":     "Ω",
		"spades":    "♠",
		"clubs":     "♣",
		"hearts":    "♥",
		"diams":     "♦",
		"loz":       "◊",
		"OElig":     "Œ",
		"oelig":     "œ",
		"Scaron":    "Š",
		"scaron":    "š",
		"Yuml":      "Ÿ",
		"fnof":      "ƒ",
		"circ":      "ˆ",
		"tilde":     "˜",
		"ensp":      " ",
		"emsp":      " ",
		"thinsp":    " ",
		"zwnj":      "‌",
		"zwj":       "‍",
		"lrm":       "‎",
		"rlm":       "‏",
		"apos":      "'",
	}
	for k, v := range extra {
		m[k] = v
	}
	return m
}

// legacyPrefixMaxLen/MinLen bound the longest-match scan described in
// §4.3 ("try prefixes of length min(6, available) down to 2").
const (
	legacyPrefixMaxLen = 6
	legacyPrefixMinLen = 2
)

// win1252Remap implements the HTML5 "numeric character reference end
// state" remapping table: C1 control codes 0x80-0x9F map to the
// corresponding Windows-1252 code point instead of passing through
// unchanged. Index 0 corresponds to code point 0x80.
var win1252Remap = [32]rune{
	0x20ac, 0x0081, 0x201a, 0x0192,
	0x201e, 0x2026, 0x2020, 0x2021,
	0x02c6, 0x2030, 0x0160, 0x2039,
	0x0152, 0x008d, 0x017d, 0x008f,
	0x0090, 0x2018, 0x2019, 0x201c,
	0x201d, 0x2022, 0x2013, 0x2014,
	0x02dc, 0x2122, 0x0161, 0x203a,
	0x0153, 0x009d, 0x017e, 0x0178,
}
