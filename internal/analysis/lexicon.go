package analysis

// defaultLexicon is a fixed word-polarity table in the AFINN style, trimmed
// to vocabulary that actually shows up in film synopses. Weights run from -3
// (strongly negative) to +3 (strongly positive).
var defaultLexicon = map[string]float64{
	// positive
	"acclaimed":    2,
	"adventure":    1,
	"beautiful":    3,
	"beloved":      2,
	"best":         3,
	"brave":        2,
	"brilliant":    3,
	"celebrated":   2,
	"charming":     2,
	"comedy":       1,
	"courage":      2,
	"delightful":   3,
	"dream":        1,
	"epic":         2,
	"extraordinary": 2,
	"faith":        1,
	"famous":       2,
	"fortune":      2,
	"free":         1,
	"freedom":      2,
	"friend":       1,
	"friendship":   2,
	"fun":          2,
	"genius":       2,
	"gentle":       2,
	"glory":        2,
	"good":         2,
	"grand":        2,
	"great":        2,
	"happiness":    3,
	"happy":        3,
	"heal":         2,
	"hero":         2,
	"heroic":       2,
	"honest":       2,
	"honor":        2,
	"hope":         2,
	"inspire":      2,
	"inspiring":    2,
	"joy":          3,
	"kind":         2,
	"laugh":        2,
	"legendary":    2,
	"love":         3,
	"loved":        3,
	"loyal":        2,
	"lucky":        2,
	"magic":        1,
	"magical":      2,
	"marvelous":    3,
	"masterpiece":  3,
	"noble":        2,
	"paradise":     2,
	"passion":      2,
	"peace":        2,
	"perfect":      3,
	"powerful":     1,
	"pride":        1,
	"promise":      1,
	"prosper":      2,
	"redemption":   2,
	"rescue":       1,
	"reunite":      1,
	"rich":         1,
	"romance":      2,
	"romantic":     2,
	"save":         1,
	"special":      1,
	"success":      2,
	"successful":   2,
	"sweet":        2,
	"talented":     2,
	"triumph":      3,
	"trust":        1,
	"victory":      3,
	"win":          2,
	"wins":         2,
	"wonderful":    3,
	"young":        1,

	// negative
	"abandoned":   -2,
	"abuse":       -3,
	"afraid":      -2,
	"alone":       -1,
	"angry":       -2,
	"assassin":    -2,
	"bad":         -2,
	"battle":      -1,
	"betray":      -3,
	"betrayal":    -3,
	"bitter":      -2,
	"bleak":       -2,
	"blood":       -2,
	"brutal":      -3,
	"chaos":       -2,
	"conspiracy":  -2,
	"corrupt":     -3,
	"corruption":  -3,
	"crime":       -2,
	"criminal":    -2,
	"cruel":       -3,
	"danger":      -2,
	"dangerous":   -2,
	"dark":        -1,
	"dead":        -3,
	"deadly":      -3,
	"death":       -3,
	"demon":       -2,
	"desperate":   -2,
	"destroy":     -3,
	"destruction": -3,
	"die":         -3,
	"dies":        -3,
	"disaster":    -2,
	"doomed":      -2,
	"enemy":       -2,
	"evil":        -3,
	"fail":        -2,
	"fear":        -2,
	"fight":       -1,
	"grief":       -2,
	"haunted":     -2,
	"hell":        -3,
	"horror":      -3,
	"hostage":     -2,
	"kill":        -3,
	"killer":      -3,
	"kidnapped":   -2,
	"lonely":      -2,
	"lose":        -2,
	"loss":        -2,
	"lost":        -1,
	"mad":         -2,
	"madness":     -2,
	"murder":      -3,
	"murdered":    -3,
	"nightmare":   -3,
	"pain":        -2,
	"poor":        -1,
	"prison":      -2,
	"revenge":     -2,
	"ruthless":    -3,
	"sad":         -2,
	"scared":      -2,
	"sinister":    -2,
	"steal":       -2,
	"struggle":    -2,
	"suffer":      -2,
	"suffering":   -2,
	"terrible":    -3,
	"terror":      -3,
	"threat":      -2,
	"tragedy":     -3,
	"tragic":      -3,
	"trapped":     -2,
	"vicious":     -3,
	"victim":      -2,
	"villain":     -2,
	"violence":    -3,
	"violent":     -3,
	"war":         -2,
	"wicked":      -2,
	"worst":       -3,
	"wounded":     -2,
}
