package sentiment

// lexicon maps lowercase tokens to a polarity valence in [-5, 5],
// AFINN-style. Deliberately small: it covers the vocabulary that shows
// up in product discussion threads, not general prose.
var lexicon = map[string]float64{
	// strong positive
	"amazing":     4,
	"awesome":     4,
	"fantastic":   4,
	"incredible":  4,
	"outstanding": 5,
	"superb":      5,
	"wonderful":   4,
	"brilliant":   4,
	"excellent":   3,
	"perfect":     3,
	"great":       3,
	"love":        3,
	"loved":       3,
	"loves":       3,
	"best":        3,
	"beautiful":   3,
	"impressive":  3,
	"flawless":    3,

	// mild positive
	"good":        3,
	"nice":        3,
	"happy":       3,
	"solid":       2,
	"recommend":   2,
	"recommended": 2,
	"worth":       2,
	"useful":      2,
	"reliable":    2,
	"comfortable": 2,
	"fast":        2,
	"easy":        2,
	"sturdy":      2,
	"durable":     2,
	"satisfied":   2,
	"pleased":     2,
	"enjoy":       2,
	"enjoyed":     2,
	"like":        2,
	"likes":       2,
	"liked":       2,
	"smooth":      2,
	"quality":     1,
	"works":       1,
	"fine":        1,
	"decent":      1,
	"okay":        1,
	"ok":          1,
	"cheap":       1,
	"value":       1,
	"better":      2,
	"upgrade":     1,
	"improved":    2,
	"improvement": 2,
	"win":         2,
	"winner":      2,
	"glad":        2,
	"helpful":     2,
	"responsive":  2,
	"crisp":       2,
	"bright":      1,
	"quiet":       1,
	"light":       1,
	"premium":     2,

	// mild negative
	"bad":            -3,
	"poor":           -2,
	"slow":           -2,
	"issue":          -1,
	"issues":         -1,
	"problem":        -2,
	"problems":       -2,
	"difficult":      -1,
	"annoying":       -2,
	"disappointing":  -2,
	"disappointed":   -2,
	"disappointment": -2,
	"expensive":      -1,
	"overpriced":     -2,
	"flimsy":         -2,
	"uncomfortable":  -2,
	"heavy":          -1,
	"loud":           -1,
	"noisy":          -1,
	"buggy":          -2,
	"laggy":          -2,
	"lag":            -1,
	"glitch":         -2,
	"glitchy":        -2,
	"mediocre":       -1,
	"meh":            -1,
	"regret":         -2,
	"return":         -1,
	"returned":       -1,
	"refund":         -2,
	"avoid":          -2,
	"fail":           -2,
	"fails":          -2,
	"failed":         -2,
	"failure":        -2,
	"defect":         -2,
	"defective":      -3,
	"faulty":         -3,
	"broke":          -3,
	"broken":         -3,
	"breaks":         -3,
	"dead":           -3,
	"useless":        -2,
	"waste":          -2,
	"wasted":         -2,
	"scam":           -2,
	"cheaply":        -2,
	"misleading":     -2,
	"unreliable":     -2,

	// strong negative
	"terrible":   -3,
	"awful":      -3,
	"horrible":   -3,
	"worst":      -3,
	"hate":       -3,
	"hated":      -3,
	"hates":      -3,
	"garbage":    -3,
	"trash":      -3,
	"junk":       -3,
	"disgusting": -3,
	"dreadful":   -3,
	"atrocious":  -4,
	"abysmal":    -4,
	"unusable":   -4,
	"nightmare":  -4,
}
