// Package screening holds the sanctions-screening data model: entities,
// addresses, identifiers, and the in-memory index that stores prepared
// entities for the search orchestrator.
//
// Entities are small immutable value types built by free constructor
// functions, generalized here to an insert-time "prepare" step so every
// normalization the field comparers depend on happens once, at
// construction, rather than on every query.
package screening

import (
	"strings"

	"github.com/watchman-screening/screen-core/normalize"
	"github.com/watchman-screening/screen-core/phonetic"
)

// EntityKind enumerates the subject types a sanctioned record can
// represent.
type EntityKind string

const (
	KindPerson   EntityKind = "person"
	KindBusiness EntityKind = "business"
	KindVessel   EntityKind = "vessel"
	KindAircraft EntityKind = "aircraft"
	KindUnknown  EntityKind = "unknown"
)

// SourceList enumerates the upstream sanctions/watchlist sources an Entity
// may have been sourced from.
type SourceList string

const (
	SourceUSOFAC   SourceList = "US_OFAC"
	SourceUSCSL    SourceList = "US_CSL"
	SourceUSNonSDN SourceList = "US_NON_SDN"
	SourceEUCSL    SourceList = "EU_CSL"
	SourceUKCSL    SourceList = "UK_CSL"
)

// Address is an adapter-supplied, unnormalized mailing address. Any field
// may be empty.
type Address struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// PreparedAddress is the normalized form of Address computed once at
// Entity construction: lower-cased, comma-free strings plus token arrays
// for line1/line2/city, raw lower-cased state and postal code, and a
// canonicalized country name.
type PreparedAddress struct {
	Line1       string
	Line1Tokens []string
	Line2       string
	Line2Tokens []string
	City        string
	CityTokens  []string
	State       string
	PostalCode  string
	Country     string
}

func prepareAddress(a Address) PreparedAddress {
	line1 := normalize.LowerAndRemovePunctuation(a.Line1)
	line2 := normalize.LowerAndRemovePunctuation(a.Line2)
	city := normalize.LowerAndRemovePunctuation(a.City)
	return PreparedAddress{
		Line1:       line1,
		Line1Tokens: normalize.Tokenize(line1),
		Line2:       line2,
		Line2Tokens: normalize.Tokenize(line2),
		City:        city,
		CityTokens:  normalize.Tokenize(city),
		State:       strings.ToLower(strings.TrimSpace(a.State)),
		PostalCode:  strings.ToLower(strings.TrimSpace(a.PostalCode)),
		Country:     normalize.NormalizeCountry(a.Country),
	}
}

// GovernmentId is an issued identifier (passport, national ID, tax ID,
// ...) tied to an entity. As of construction, Identifier is stored
// comparison-normalized (normalize.NormalizeID), Type is trimmed and
// lower-cased, and IssuingCountry is canonicalized by
// normalize.NormalizeCountry.
type GovernmentId struct {
	Identifier     string
	Type           string
	IssuingCountry string
}

// CryptoAddress is a cryptocurrency wallet address attributed to an
// entity. Address is compared case-sensitively, so it is stored verbatim
// aside from trimming.
type CryptoAddress struct {
	Address string
	Kind    string
}

// ContactInfo holds an entity's known contact channels. Email is stored
// lower-cased and trimmed; Phone is stored normalize.NormalizePhone'd, both
// as of construction.
type ContactInfo struct {
	Email string
	Phone string
}

// PartialDate is a calendar date with adapter-resolved defaults already
// applied to any missing components (missing components fall
// back to January 1). A nil *PartialDate means the date itself is absent,
// not merely incomplete.
type PartialDate struct {
	Year  int
	Month int
	Day   int
}

// Dates holds the subset of lifecycle dates applicable to an entity's
// kind: birth/death for persons, created/dissolved for organizations,
// built for vessels and aircraft. Unused fields for a given kind are left
// nil.
type Dates struct {
	Birth     *PartialDate
	Death     *PartialDate
	Created   *PartialDate
	Dissolved *PartialDate
	Built     *PartialDate
}

// EntityInput is the adapter-facing constructor payload for NewEntity. It
// mirrors Entity's raw fields one-to-one; NewEntity computes everything
// under "prepared fields" from it.
type EntityInput struct {
	ID              string
	Source          SourceList
	Kind            EntityKind
	SourceID        string
	PrimaryName     string
	AlternateNames  []string
	Addresses       []Address
	GovernmentIds   []GovernmentId
	CryptoAddresses []CryptoAddress
	Contact         *ContactInfo
	Dates           Dates
	Remarks         string
}

// Entity is an immutable sanctioned-subject record: the adapter-supplied
// raw fields plus the fields the core prepares at construction and never
// recomputes.
type Entity struct {
	ID              string
	Source          SourceList
	Kind            EntityKind
	SourceID        string
	PrimaryName     string
	AlternateNames  []string
	Addresses       []Address
	GovernmentIds   []GovernmentId
	CryptoAddresses []CryptoAddress
	Contact         *ContactInfo
	Dates           Dates
	Remarks         string

	// PreparedPrimaryName and PreparedAlternateNames are
	// lowerAndRemovePunctuation'd forms of PrimaryName/AlternateNames.
	PreparedPrimaryName    string
	PreparedAlternateNames []string

	// PreparedAddresses mirrors Addresses, normalized.
	PreparedAddresses []PreparedAddress

	// PhoneticKey and AltPhoneticKeys are the first-word phonetic keys the
	// phonetic filter consults for the primary name and each alternate
	// name, respectively.
	PhoneticKey     phonetic.Key
	AltPhoneticKeys []phonetic.Key
}

// NewEntity constructs an Entity from adapter input, normalizing
// identifiers/contact fields and computing prepared fields once.
func NewEntity(in EntityInput) *Entity {
	e := &Entity{
		ID:              in.ID,
		Source:          in.Source,
		Kind:            in.Kind,
		SourceID:        strings.TrimSpace(in.SourceID),
		PrimaryName:     in.PrimaryName,
		AlternateNames:  append([]string(nil), in.AlternateNames...),
		Addresses:       append([]Address(nil), in.Addresses...),
		GovernmentIds:   make([]GovernmentId, len(in.GovernmentIds)),
		CryptoAddresses: make([]CryptoAddress, len(in.CryptoAddresses)),
		Dates:           in.Dates,
		Remarks:         in.Remarks,
	}

	for i, g := range in.GovernmentIds {
		e.GovernmentIds[i] = GovernmentId{
			Identifier:     normalize.NormalizeID(g.Identifier),
			Type:           strings.ToLower(strings.TrimSpace(g.Type)),
			IssuingCountry: normalize.NormalizeCountry(g.IssuingCountry),
		}
	}

	for i, c := range in.CryptoAddresses {
		e.CryptoAddresses[i] = CryptoAddress{
			Address: strings.TrimSpace(c.Address),
			Kind:    strings.ToLower(strings.TrimSpace(c.Kind)),
		}
	}

	if in.Contact != nil {
		e.Contact = &ContactInfo{
			Email: strings.ToLower(strings.TrimSpace(in.Contact.Email)),
			Phone: normalize.NormalizePhone(in.Contact.Phone),
		}
	}

	e.PreparedPrimaryName = normalize.LowerAndRemovePunctuation(in.PrimaryName)
	e.PreparedAlternateNames = make([]string, len(in.AlternateNames))
	for i, alt := range in.AlternateNames {
		e.PreparedAlternateNames[i] = normalize.LowerAndRemovePunctuation(alt)
	}

	e.PreparedAddresses = make([]PreparedAddress, len(in.Addresses))
	for i, a := range in.Addresses {
		e.PreparedAddresses[i] = prepareAddress(a)
	}

	e.PhoneticKey = phonetic.PrepareKey(in.PrimaryName)
	e.AltPhoneticKeys = make([]phonetic.Key, len(in.AlternateNames))
	for i, alt := range in.AlternateNames {
		e.AltPhoneticKeys[i] = phonetic.PrepareKey(alt)
	}

	return e
}
