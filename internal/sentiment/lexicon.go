package sentiment

// defaultLexicon maps lowercase tokens to valence weights on a roughly
// [-4, 4] scale. Entries lean toward vocabulary common in short
// social-media posts about products and brands.
var defaultLexicon = map[string]float64{
	// positive
	"amazing":     3.1,
	"awesome":     3.1,
	"beautiful":   2.8,
	"best":        3.2,
	"better":      1.9,
	"brilliant":   2.8,
	"cool":        1.3,
	"delight":     2.9,
	"delighted":   2.9,
	"enjoy":       2.2,
	"enjoyed":     2.2,
	"excellent":   3.2,
	"excited":     2.4,
	"fantastic":   3.0,
	"fast":        1.2,
	"favorite":    2.0,
	"fun":         2.3,
	"glad":        2.0,
	"good":        1.9,
	"great":       3.1,
	"happy":       2.7,
	"impressed":   2.3,
	"impressive":  2.3,
	"incredible":  2.8,
	"like":        1.5,
	"love":        3.2,
	"loved":       2.9,
	"nice":        1.8,
	"perfect":     3.0,
	"pleased":     1.9,
	"recommend":   1.6,
	"reliable":    1.7,
	"smooth":      1.3,
	"solid":       1.2,
	"stunning":    2.7,
	"superb":      3.0,
	"thanks":      1.9,
	"thank":       1.9,
	"win":         2.8,
	"winner":      2.8,
	"wonderful":   2.7,
	"wow":         2.8,
	"works":       0.8,
	"worth":       0.9,

	// negative
	"angry":        -2.3,
	"annoying":     -1.8,
	"awful":        -3.1,
	"bad":          -2.5,
	"broke":        -1.6,
	"broken":       -2.2,
	"bug":          -1.4,
	"buggy":        -2.1,
	"crash":        -2.0,
	"crashed":      -2.0,
	"crashes":      -2.0,
	"disappointed": -2.3,
	"disappointing": -2.2,
	"expensive":    -1.2,
	"fail":         -2.5,
	"failed":       -2.3,
	"failure":      -2.4,
	"garbage":      -3.0,
	"hate":         -2.7,
	"hated":        -2.7,
	"horrible":     -2.5,
	"issue":        -1.1,
	"issues":       -1.1,
	"lag":          -1.3,
	"laggy":        -1.7,
	"lose":         -2.4,
	"mess":         -1.7,
	"overpriced":   -1.9,
	"poor":         -2.1,
	"problem":      -1.4,
	"problems":     -1.4,
	"refund":       -1.2,
	"sad":          -2.1,
	"scam":         -2.6,
	"slow":         -1.3,
	"terrible":     -3.1,
	"trash":        -2.8,
	"ugly":         -2.0,
	"unusable":     -2.6,
	"useless":      -2.3,
	"waste":        -2.2,
	"worse":        -2.1,
	"worst":        -3.1,
	"wrong":        -1.6,
}
