package lexicon

import "strings"

// mweNode is one node of the multi-word-expression trie, keyed word by word.
type mweNode struct {
	children map[string]*mweNode
	entry    *MWEPattern // non-nil at a pattern's terminal node
}

var mweRoot *mweNode

func buildMWETrie() {
	if mweRoot != nil {
		return
	}
	root := &mweNode{children: make(map[string]*mweNode)}
	for i := range Load().MultiWordExpressions {
		p := &Load().MultiWordExpressions[i]
		cur := root
		for _, word := range p.Pattern {
			word = strings.ToLower(word)
			next, ok := cur.children[word]
			if !ok {
				next = &mweNode{children: make(map[string]*mweNode)}
				cur.children[word] = next
			}
			cur = next
		}
		cur.entry = p
	}
	mweRoot = root
}

// MatchMWE attempts the longest multi-word expression starting at words[0].
// It returns the matched pattern and the number of words it consumed, or
// ok=false if no word at that position begins a known expression.
func MatchMWE(words []string) (pattern MWEPattern, consumed int, ok bool) {
	buildMWETrie()
	cur := mweRoot
	var best *MWEPattern
	bestLen := 0
	for i, word := range words {
		next, found := cur.children[strings.ToLower(word)]
		if !found {
			break
		}
		cur = next
		if cur.entry != nil {
			best = cur.entry
			bestLen = i + 1
		}
	}
	if best == nil {
		return MWEPattern{}, 0, false
	}
	return *best, bestLen, true
}
