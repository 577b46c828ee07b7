// Package census embeds the 2020 state directory used to apportion the U.S.
// House of Representatives: FIPS codes, USPS abbreviations, names, and the
// official 2020 apportionment populations.
package census

import "github.com/katalvlaran/apportion/hhill"

// directory is the full 2020 table in FIPS order: the 50 states with their
// apportionment populations, plus DC and Puerto Rico with their resident
// populations (neither has an apportionment count). Never mutated; accessors
// hand out copies.
var directory = []State{
	{FIPS: "01", Abbr: "AL", Name: "Alabama", Population: 5_030_053},
	{FIPS: "02", Abbr: "AK", Name: "Alaska", Population: 736_081},
	{FIPS: "04", Abbr: "AZ", Name: "Arizona", Population: 7_158_923},
	{FIPS: "05", Abbr: "AR", Name: "Arkansas", Population: 3_013_756},
	{FIPS: "06", Abbr: "CA", Name: "California", Population: 39_576_757},
	{FIPS: "08", Abbr: "CO", Name: "Colorado", Population: 5_782_171},
	{FIPS: "09", Abbr: "CT", Name: "Connecticut", Population: 3_608_298},
	{FIPS: "10", Abbr: "DE", Name: "Delaware", Population: 990_837},
	{FIPS: "11", Abbr: "DC", Name: "District of Columbia", Population: 689_545},
	{FIPS: "12", Abbr: "FL", Name: "Florida", Population: 21_570_527},
	{FIPS: "13", Abbr: "GA", Name: "Georgia", Population: 10_725_274},
	{FIPS: "15", Abbr: "HI", Name: "Hawaii", Population: 1_460_137},
	{FIPS: "16", Abbr: "ID", Name: "Idaho", Population: 1_841_377},
	{FIPS: "17", Abbr: "IL", Name: "Illinois", Population: 12_822_739},
	{FIPS: "18", Abbr: "IN", Name: "Indiana", Population: 6_790_280},
	{FIPS: "19", Abbr: "IA", Name: "Iowa", Population: 3_192_406},
	{FIPS: "20", Abbr: "KS", Name: "Kansas", Population: 2_940_865},
	{FIPS: "21", Abbr: "KY", Name: "Kentucky", Population: 4_509_342},
	{FIPS: "22", Abbr: "LA", Name: "Louisiana", Population: 4_661_468},
	{FIPS: "23", Abbr: "ME", Name: "Maine", Population: 1_363_582},
	{FIPS: "24", Abbr: "MD", Name: "Maryland", Population: 6_185_278},
	{FIPS: "25", Abbr: "MA", Name: "Massachusetts", Population: 7_033_469},
	{FIPS: "26", Abbr: "MI", Name: "Michigan", Population: 10_084_442},
	{FIPS: "27", Abbr: "MN", Name: "Minnesota", Population: 5_709_752},
	{FIPS: "28", Abbr: "MS", Name: "Mississippi", Population: 2_963_914},
	{FIPS: "29", Abbr: "MO", Name: "Missouri", Population: 6_160_281},
	{FIPS: "30", Abbr: "MT", Name: "Montana", Population: 1_085_407},
	{FIPS: "31", Abbr: "NE", Name: "Nebraska", Population: 1_963_333},
	{FIPS: "32", Abbr: "NV", Name: "Nevada", Population: 3_108_462},
	{FIPS: "33", Abbr: "NH", Name: "New Hampshire", Population: 1_379_089},
	{FIPS: "34", Abbr: "NJ", Name: "New Jersey", Population: 9_294_493},
	{FIPS: "35", Abbr: "NM", Name: "New Mexico", Population: 2_120_220},
	{FIPS: "36", Abbr: "NY", Name: "New York", Population: 20_215_751},
	{FIPS: "37", Abbr: "NC", Name: "North Carolina", Population: 10_453_948},
	{FIPS: "38", Abbr: "ND", Name: "North Dakota", Population: 779_702},
	{FIPS: "39", Abbr: "OH", Name: "Ohio", Population: 11_808_848},
	{FIPS: "40", Abbr: "OK", Name: "Oklahoma", Population: 3_963_516},
	{FIPS: "41", Abbr: "OR", Name: "Oregon", Population: 4_241_500},
	{FIPS: "42", Abbr: "PA", Name: "Pennsylvania", Population: 13_011_844},
	{FIPS: "44", Abbr: "RI", Name: "Rhode Island", Population: 1_098_163},
	{FIPS: "45", Abbr: "SC", Name: "South Carolina", Population: 5_124_712},
	{FIPS: "46", Abbr: "SD", Name: "South Dakota", Population: 887_770},
	{FIPS: "47", Abbr: "TN", Name: "Tennessee", Population: 6_916_897},
	{FIPS: "48", Abbr: "TX", Name: "Texas", Population: 29_183_290},
	{FIPS: "49", Abbr: "UT", Name: "Utah", Population: 3_275_252},
	{FIPS: "50", Abbr: "VT", Name: "Vermont", Population: 643_503},
	{FIPS: "51", Abbr: "VA", Name: "Virginia", Population: 8_654_542},
	{FIPS: "53", Abbr: "WA", Name: "Washington", Population: 7_715_946},
	{FIPS: "54", Abbr: "WV", Name: "West Virginia", Population: 1_795_045},
	{FIPS: "55", Abbr: "WI", Name: "Wisconsin", Population: 5_897_473},
	{FIPS: "56", Abbr: "WY", Name: "Wyoming", Population: 577_719},
	{FIPS: "72", Abbr: "PR", Name: "Puerto Rico", Population: 3_285_874},
}

// All returns every directory row (50 states, DC, and Puerto Rico) in FIPS
// order. The returned slice is a fresh copy; callers may modify it freely.
func All() []State {
	out := make([]State, len(directory))
	copy(out, directory)

	return out
}

// Entities converts the directory into the entity set an apportionment run
// consumes, keyed by USPS abbreviation. DC and Puerto Rico are excluded
// unless explicitly opted in with WithDC / WithPR, matching the composition
// of the voting House.
func Entities(opts ...Option) []hhill.Entity {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	entities := make([]hhill.Entity, 0, len(directory))
	for _, st := range directory {
		if st.Abbr == "DC" && !cfg.IncludeDC {
			continue
		}
		if st.Abbr == "PR" && !cfg.IncludePR {
			continue
		}
		entities = append(entities, hhill.Entity{
			ID:         st.Abbr,
			Population: st.Population,
		})
	}

	return entities
}
