package trie

// Trie stores a set of domain names and finds, for a given name, the
// deepest stored name that encloses it (the name itself or one of its
// parents).
//
// The word "prefix" is avoided because in practice we use the `Trie`
// with `SplitTLD` so enclosing names are suffixes even if in the
// datastructure they are prefixes.
//
// Unlike a pure containment set, interior nodes can be members too:
// with "com" and "example.com" both inserted, a lookup of
// "www.example.com" yields "example.com", not "com".
type Trie struct {
	split SplitFunc
	root  node
}

type node struct {
	member   bool
	children map[string]*node
}

func NewTrie(split SplitFunc) *Trie {
	return &Trie{
		split: split,
		root:  node{},
	}
}

func (t *Trie) IsEmpty() bool {
	return !t.root.member && t.root.children == nil
}

// Insert adds a name to the set. Inserting the bare root ("." or "")
// marks the root node, which encloses every key.
func (t *Trie) Insert(key string) {
	n := &t.root

	for {
		label, rest := t.split(key)
		if label == "" {
			break
		}

		if n.children == nil {
			n.children = make(map[string]*node, 1)
		}

		child, ok := n.children[label]
		if !ok {
			child = &node{}
			n.children[label] = child
		}

		n = child
		key = rest
	}

	n.member = true
}

// HasParentOf reports whether the key or one of its parents is in the set
func (t *Trie) HasParentOf(key string) bool {
	_, ok := t.LongestMatch(key)

	return ok
}

// LongestMatch returns the deepest member enclosing the key. The match is
// returned in label order ("example.com"), the root member matches as "".
func (t *Trie) LongestMatch(key string) (match string, ok bool) {
	n := &t.root
	match, ok = "", n.member
	suffix := ""

	for {
		label, rest := t.split(key)
		if label == "" {
			break
		}

		child, present := n.children[label]
		if !present {
			break
		}

		if suffix == "" {
			suffix = label
		} else {
			suffix = label + "." + suffix
		}

		if child.member {
			match, ok = suffix, true
		}

		n = child
		key = rest
	}

	return match, ok
}
