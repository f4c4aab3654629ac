package normalize

// stopwords is the fixed list of corporate and locative filler tokens
// stripped by StripStopwords unless the caller asks to keep them. Entries
// are lower-case and already punctuation-free — callers are expected to run
// LowerAndRemovePunctuation first.
//
// The set mixes two families: corporate entity suffixes (common across SDN,
// CSL, and EU/UK list naming conventions) and locative/connector words that
// otherwise dominate best-pair token matching on addresses and long legal
// names ("THE CENTRAL BANK OF ..." vs "CENTRAL BANK ...").
var stopwords = map[string]struct{}{
	"the": {}, "of": {}, "and": {}, "for": {}, "a": {}, "an": {}, "in": {},
	"on": {}, "at": {}, "by": {}, "to": {}, "de": {}, "la": {}, "el": {},
	"inc": {}, "incorporated": {}, "corp": {}, "corporation": {},
	"llc": {}, "llp": {}, "ltd": {}, "limited": {}, "co": {}, "company": {},
	"plc": {}, "pllc": {}, "pc": {}, "gmbh": {}, "ag": {}, "sa": {}, "sas": {},
	"srl": {}, "spa": {}, "bv": {}, "nv": {}, "oy": {}, "ab": {}, "kg": {},
	"group": {}, "holding": {}, "holdings": {}, "enterprises": {},
	"international": {}, "trading": {}, "foundation": {}, "trust": {},
	"street": {}, "avenue": {}, "road": {}, "drive": {}, "lane": {},
	"boulevard": {}, "city": {}, "province": {}, "district": {},
}

// IsStopword reports whether token (already lower-cased) is in the fixed
// stopword list.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
