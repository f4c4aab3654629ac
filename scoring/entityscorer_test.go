package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchman-screening/screen-core/scoreconfig"
	"github.com/watchman-screening/screen-core/screening"
	"github.com/watchman-screening/screen-core/similarity"
	"github.com/watchman-screening/screen-core/tracing"
)

func TestScore_NameOnlyPrefersBestOfPrimaryAndAlias(t *testing.T) {
	cfg := similarity.DefaultConfig()
	candidate := screening.NewEntity(screening.EntityInput{
		PrimaryName:    "central banking corp",
		AlternateNames: []string{"The Bank"},
	})

	// Only the candidate side is stopword-stripped: the alias becomes
	// ["bank"] while the query keeps ["the", "bank"], so 1 of 2 matches.
	score, matchedAlias := Score("the bank", candidate, cfg)
	assert.InDelta(t, 0.5, score, 0.001)
	assert.Equal(t, "The Bank", matchedAlias)
}

func TestScore_PrimaryNameWinnerReportsNoMatchedAlias(t *testing.T) {
	cfg := similarity.DefaultConfig()
	candidate := screening.NewEntity(screening.EntityInput{
		PrimaryName:    "central banking corp",
		AlternateNames: []string{"unrelated shell llc"},
	})

	// "corp" is stripped from the candidate only, so 2 of the query's 3
	// tokens find a partner.
	score, matchedAlias := Score("central banking corp", candidate, cfg)
	assert.InDelta(t, 2.0/3.0, score, 0.001)
	assert.Empty(t, matchedAlias)
}

func TestScore_NilCandidateScoresZero(t *testing.T) {
	cfg := similarity.DefaultConfig()
	score, matchedAlias := Score("anyone", nil, cfg)
	assert.Equal(t, 0.0, score)
	assert.Empty(t, matchedAlias)
}

func TestScoreEntity_ExactSourceIdShortCircuitsToOne(t *testing.T) {
	cfg := scoreconfig.DefaultResolvedConfig()
	query := screening.NewEntity(screening.EntityInput{SourceID: "OFAC-12345", PrimaryName: "unrelated name"})
	candidate := screening.NewEntity(screening.EntityInput{SourceID: "OFAC-12345", PrimaryName: "totally different"})

	breakdown := ScoreEntity(query, candidate, cfg, tracing.Disabled())

	assert.Equal(t, 1.0, breakdown.Final)
	assert.Equal(t, 1.0, breakdown.Name)
}

func TestScoreEntity_IdenticalEntityScoresHigh(t *testing.T) {
	cfg := scoreconfig.DefaultResolvedConfig()
	in := screening.EntityInput{
		PrimaryName: "vladimir petrov",
		Addresses: []screening.Address{
			{Line1: "123 Lenin St", City: "Moscow", Country: "Russia"},
		},
		GovernmentIds: []screening.GovernmentId{
			{Identifier: "AB123456", Type: "passport", IssuingCountry: "Russia"},
		},
	}
	query := screening.NewEntity(in)
	candidate := screening.NewEntity(in)

	breakdown := ScoreEntity(query, candidate, cfg, tracing.Disabled())
	assert.InDelta(t, 1.0, breakdown.Final, 0.01)
}

func TestScoreEntity_CriticalMatchShortcutDominatesWeakName(t *testing.T) {
	cfg := scoreconfig.DefaultResolvedConfig()
	query := screening.NewEntity(screening.EntityInput{
		PrimaryName: "jon smyth",
		CryptoAddresses: []screening.CryptoAddress{
			{Address: "1BoatSLRHtKNngkdXEeobR76b53LETtpyT"},
		},
	})
	candidate := screening.NewEntity(screening.EntityInput{
		PrimaryName: "jonathan smith completely different surname entity",
		CryptoAddresses: []screening.CryptoAddress{
			{Address: "1BoatSLRHtKNngkdXEeobR76b53LETtpyT"},
		},
	})

	breakdown := ScoreEntity(query, candidate, cfg, tracing.Disabled())
	assert.GreaterOrEqual(t, breakdown.Final, 0.7)
}

func TestScoreEntity_DisablingFactorDoesNotChangeOtherRawScores(t *testing.T) {
	cfg := scoreconfig.DefaultResolvedConfig()
	in := screening.EntityInput{
		PrimaryName: "vladimir petrov",
		Addresses: []screening.Address{
			{Line1: "123 Lenin St", City: "Moscow", Country: "Russia"},
		},
	}
	query := screening.NewEntity(in)
	candidate := screening.NewEntity(in)

	withAddress := ScoreEntity(query, candidate, cfg, tracing.Disabled())

	cfgNoAddress := cfg
	cfgNoAddress.Scoring.AddressEnabled = false
	withoutAddress := ScoreEntity(query, candidate, cfgNoAddress, tracing.Disabled())

	assert.Equal(t, withAddress.Name, withoutAddress.Name)
	assert.Equal(t, 0.0, withoutAddress.Address)
}

func TestScoreEntity_FinalScoreStaysInUnitRange(t *testing.T) {
	cfg := scoreconfig.DefaultResolvedConfig()
	query := screening.NewEntity(screening.EntityInput{PrimaryName: "zzz totally unrelated zzz"})
	candidate := screening.NewEntity(screening.EntityInput{PrimaryName: "vladimir petrov"})

	breakdown := ScoreEntity(query, candidate, cfg, tracing.Disabled())
	assert.GreaterOrEqual(t, breakdown.Final, 0.0)
	assert.LessOrEqual(t, breakdown.Final, 1.0)
}

func TestScoreEntity_AltNameWinnerReportsMatchedAlias(t *testing.T) {
	cfg := scoreconfig.DefaultResolvedConfig()
	query := screening.NewEntity(screening.EntityInput{PrimaryName: "Al-Malizi"})
	candidate := screening.NewEntity(screening.EntityInput{
		PrimaryName:    "Abu Mohammed Al-Jawlani",
		AlternateNames: []string{"AL-MALIZI"},
	})

	breakdown := ScoreEntity(query, candidate, cfg, tracing.Disabled())

	assert.Greater(t, breakdown.AltName, breakdown.Name)
	assert.Equal(t, "AL-MALIZI", breakdown.MatchedAlias)
}

func TestScoreEntity_PrimaryNameWinnerLeavesMatchedAliasEmpty(t *testing.T) {
	cfg := scoreconfig.DefaultResolvedConfig()
	query := screening.NewEntity(screening.EntityInput{PrimaryName: "vladimir petrov"})
	candidate := screening.NewEntity(screening.EntityInput{
		PrimaryName:    "vladimir petrov",
		AlternateNames: []string{"completely unrelated alias"},
	})

	breakdown := ScoreEntity(query, candidate, cfg, tracing.Disabled())

	assert.Empty(t, breakdown.MatchedAlias)
}

func TestScoreEntity_EnabledTraceRecordsAggregationPhase(t *testing.T) {
	cfg := scoreconfig.DefaultResolvedConfig()
	query := screening.NewEntity(screening.EntityInput{PrimaryName: "vladimir petrov"})
	candidate := screening.NewEntity(screening.EntityInput{PrimaryName: "vladimir petrov"})

	trace := tracing.New("test-session")
	breakdown := ScoreEntity(query, candidate, cfg, trace)
	result := trace.Finish(breakdown)

	require.NotNil(t, result)
	assert.NotEmpty(t, result.Events)

	foundAggregation := false
	for _, evt := range result.Events {
		if evt.Phase == tracing.PhaseAggregation && evt.Label == "final-score" {
			foundAggregation = true
		}
	}
	assert.True(t, foundAggregation)
}
