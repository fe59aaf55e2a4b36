package parser

import "github.com/logos-lang/logos/internal/ast"

// drs accumulates discourse referents as the parser walks sentences, so a
// later pronoun can be resolved against the most recent one with a
// compatible gender and number. Sort is not compared, and referents from
// the current box are not preferred over older ones.
type drs struct {
	referents []*ast.NounPhrase
	boxes     []int // index into referents marking each box's start, for guard/restore
}

func newDRS() *drs {
	return &drs{boxes: []int{0}}
}

// pushBox opens a new discourse box. Only parseConditional opens one (before
// the antecedent, closed after the consequent); sentences, modals and
// function bodies do not open boxes.
func (d *drs) pushBox() {
	d.boxes = append(d.boxes, len(d.referents))
}

func (d *drs) popBox() {
	if len(d.boxes) > 1 {
		d.boxes = d.boxes[:len(d.boxes)-1]
	}
}

func (d *drs) boxCount() int { return len(d.referents) }

// truncateBoxes restores the referent list to the length it had when a
// guard was taken, discarding any referents introduced speculatively.
func (d *drs) truncateBoxes(n int) {
	if n <= len(d.referents) {
		d.referents = d.referents[:n]
	}
}

func (d *drs) introduce(np *ast.NounPhrase) {
	np.Block = len(d.boxes) - 1
	d.referents = append(d.referents, np)
}

// resolvePronoun finds the most recently introduced referent matching
// gender and number, scanning backward so the nearest candidate wins; an
// empty feature acts as a wildcard. Sort is not checked.
func (d *drs) resolvePronoun(gender, number string) (*ast.NounPhrase, bool) {
	for i := len(d.referents) - 1; i >= 0; i-- {
		r := d.referents[i]
		if (gender == "" || gender == "unspecified" || r.Gender == gender) &&
			(number == "" || r.Number == number) {
			return r, true
		}
	}
	return nil, false
}
