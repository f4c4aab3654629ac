// Command screen-demo wires the screening core's packages together end to
// end: it loads a handful of sample entities, runs one query through the
// search orchestrator, and prints the resulting score breakdown. It is not
// part of the core's public contract — a real deployment supplies its own
// adapter, transport, and persistence around the same packages.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/watchman-screening/screen-core/logging"
	"github.com/watchman-screening/screen-core/scoreconfig"
	"github.com/watchman-screening/screen-core/screening"
	"github.com/watchman-screening/screen-core/search"
	"github.com/watchman-screening/screen-core/tracing"
)

// sampleEntitiesYAML stands in for a data-source adapter's feed: a small,
// inline fixture covering a person, a business, and an unrelated
// distractor. It carries names, addresses, one government id, and one
// birth date; there is no crypto or contact data.
const sampleEntitiesYAML = `
- id: OFAC-001
  kind: person
  primaryName: Vladimir Petrov
  alternateNames: ["Vlad Petrov", "V. Petrov"]
  addresses:
    - line1: 12 Tverskaya Street
      city: Moscow
      country: Russia
  governmentIds:
    - identifier: AB1234567
      type: passport
      issuingCountry: Russia
  dates:
    birth: "1975-06-14"
- id: OFAC-002
  kind: business
  primaryName: Central Banking Corporation
  alternateNames: ["The Bank"]
  addresses:
    - line1: 1 Finance Plaza
      city: Nicosia
      country: Cyprus
- id: OFAC-003
  kind: person
  primaryName: Xiang Wei Zhao
`

type fixtureDate struct {
	Birth string `yaml:"birth"`
}

type fixtureAddress struct {
	Line1   string `yaml:"line1"`
	City    string `yaml:"city"`
	Country string `yaml:"country"`
}

type fixtureGovernmentID struct {
	Identifier     string `yaml:"identifier"`
	Type           string `yaml:"type"`
	IssuingCountry string `yaml:"issuingCountry"`
}

type fixtureEntity struct {
	ID             string                `yaml:"id"`
	Kind           string                `yaml:"kind"`
	PrimaryName    string                `yaml:"primaryName"`
	AlternateNames []string              `yaml:"alternateNames"`
	Addresses      []fixtureAddress      `yaml:"addresses"`
	GovernmentIds  []fixtureGovernmentID `yaml:"governmentIds"`
	Dates          fixtureDate           `yaml:"dates"`
}

func main() {
	log, err := logging.New(logging.DefaultConfig("screen-demo"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init failed:", err)
		os.Exit(1)
	}
	defer log.Sync()

	var fixtures []fixtureEntity
	if err := yaml.Unmarshal([]byte(sampleEntitiesYAML), &fixtures); err != nil {
		log.Error("failed to parse sample fixtures", zap.Error(err))
		os.Exit(1)
	}

	index := screening.NewIndex()
	for _, f := range fixtures {
		index.Insert(screening.NewEntity(toEntityInput(f)))
	}
	log.Info("loaded sample entities", zap.Int("count", index.Size()))

	orchestrator := search.New(index, log)

	override, err := scoreconfig.LoadStartupOverride("screen-demo")
	if err != nil {
		log.Error("failed to load startup configuration", zap.Error(err))
		os.Exit(1)
	}
	if override != nil {
		log.Info("loaded startup configuration override")
	}

	requestID := uuid.New().String()
	trace := tracing.New(requestID)

	query := search.EntityQuery(screening.EntityInput{
		PrimaryName: "Vladmir Petrof",
		Addresses: []screening.Address{
			{Line1: "12 Tverskaya St", City: "Moscow", Country: "Russia"},
		},
	})

	results, scoringTrace, err := orchestrator.Search(context.Background(), query, override, trace)
	if err != nil {
		log.Error("search failed", zap.String("requestId", requestID), zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("request %s: %d result(s)\n", requestID, len(results))
	for _, r := range results {
		fmt.Printf("  %-10s final=%.3f name=%.3f altName=%.3f address=%.3f govId=%.3f matchedAlias=%q\n",
			r.Entity.ID, r.Breakdown.Final, r.Breakdown.Name, r.Breakdown.AltName, r.Breakdown.Address, r.Breakdown.GovId, r.Breakdown.MatchedAlias)
	}
	if scoringTrace != nil {
		fmt.Printf("trace events: %d\n", len(scoringTrace.Events))
	}
}

func toEntityInput(f fixtureEntity) screening.EntityInput {
	in := screening.EntityInput{
		ID:             f.ID,
		Kind:           toEntityKind(f.Kind),
		PrimaryName:    f.PrimaryName,
		AlternateNames: f.AlternateNames,
	}

	for _, a := range f.Addresses {
		in.Addresses = append(in.Addresses, screening.Address{
			Line1:   a.Line1,
			City:    a.City,
			Country: a.Country,
		})
	}

	for _, g := range f.GovernmentIds {
		in.GovernmentIds = append(in.GovernmentIds, screening.GovernmentId{
			Identifier:     g.Identifier,
			Type:           g.Type,
			IssuingCountry: g.IssuingCountry,
		})
	}

	if f.Dates.Birth != "" {
		if d, ok := parseISODate(f.Dates.Birth); ok {
			in.Dates.Birth = &d
		}
	}

	return in
}

func toEntityKind(kind string) screening.EntityKind {
	switch kind {
	case "person":
		return screening.KindPerson
	case "business":
		return screening.KindBusiness
	case "vessel":
		return screening.KindVessel
	case "aircraft":
		return screening.KindAircraft
	default:
		return screening.KindUnknown
	}
}

// parseISODate parses a bare "YYYY-MM-DD" string. It is a small, local
// substitute for a real adapter's date parsing, which would also resolve
// partial dates per the missing-component defaulting rule.
func parseISODate(s string) (screening.PartialDate, bool) {
	var y, m, d int
	if _, err := fmt.Sscanf(s, "%d-%d-%d", &y, &m, &d); err != nil {
		return screening.PartialDate{}, false
	}
	return screening.PartialDate{Year: y, Month: m, Day: d}, true
}
