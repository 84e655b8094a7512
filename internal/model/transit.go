package model

// TransitRows is the fixed size of every transit table.
const TransitRows = 7

// Planet is one of the seven classical bodies used for transit rows.
type Planet string

const (
	Sun     Planet = "Sun"
	Moon    Planet = "Moon"
	Mercury Planet = "Mercury"
	Venus   Planet = "Venus"
	Mars    Planet = "Mars"
	Jupiter Planet = "Jupiter"
	Saturn  Planet = "Saturn"
)

// Planets lists every planet in sampling order.
var Planets = []Planet{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn}

// Aspect is the angular relationship named in a transit row.
type Aspect string

const (
	Conjunction Aspect = "Conjunction"
	Sextile     Aspect = "Sextile"
	Square      Aspect = "Square"
	Trine       Aspect = "Trine"
	Opposition  Aspect = "Opposition"
)

// Aspects lists every aspect in sampling order.
var Aspects = []Aspect{Conjunction, Sextile, Square, Trine, Opposition}

// Influence is the qualitative label derived from (planet, aspect).
type Influence string

const (
	Bullish       Influence = "Bullish"
	MildlyBullish Influence = "Mildly Bullish"
	Bearish       Influence = "Bearish"
	MildlyBearish Influence = "Mildly Bearish"
	Neutral       Influence = "Neutral"
)

// Influences lists every label a transit row may carry.
var Influences = []Influence{Bullish, MildlyBullish, Bearish, MildlyBearish, Neutral}

// Direction is the fabricated trade direction of a transit.
type Direction string

const (
	Long  Direction = "Long"
	Short Direction = "Short"
)

// Directions lists both directions in sampling order.
var Directions = []Direction{Long, Short}

// TransitRow is one fictitious planetary aspect and its assigned market influence.
type TransitRow struct {
	Planet            Planet    `json:"planet"`
	Aspect            Aspect    `json:"aspect"`
	Strength          float64   `json:"strength"`
	Influence         Influence `json:"influence"`
	ImpactDirection   Direction `json:"impact_direction"`
	ExpectedChangePct float64   `json:"expected_change_pct"`
}

// TransitTable is an ordered table of TransitRows rows, in generation order.
type TransitTable []TransitRow
