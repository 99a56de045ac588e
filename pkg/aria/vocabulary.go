package aria

import "sort"

// Key names an attribute in the vocabulary.
type Key string

const (
	KeyPressed     Key = "aria-pressed"
	KeyExpanded    Key = "aria-expanded"
	KeyControls    Key = "aria-controls"
	KeySelected    Key = "aria-selected"
	KeyChecked     Key = "aria-checked"
	KeyLive        Key = "aria-live"
	KeyAtomic      Key = "aria-atomic"
	KeyRelevant    Key = "aria-relevant"
	KeyBusy        Key = "aria-busy"
	KeyHasPopup    Key = "aria-haspopup"
	KeyRequired    Key = "aria-required"
	KeyInvalid     Key = "aria-invalid"
	KeyDescribedBy Key = "aria-describedby"
	KeyLabelledBy  Key = "aria-labelledby"
	KeyLabel       Key = "aria-label"
	KeyHidden      Key = "aria-hidden"
	KeyDisabled    Key = "aria-disabled"
	KeyCurrent     Key = "aria-current"

	// KeyHref is the navigable target of a link.
	KeyHref Key = "href"
	// KeyTabIndex is the generic tab-order key.
	KeyTabIndex Key = "tabindex"
	// KeyRole is the generic role key.
	KeyRole Key = "role"
)

// Domain identifies the set of legal values for a key.
type Domain int

const (
	DomainBool Domain = iota
	DomainTristate
	DomainPoliteness
	DomainRelevant
	DomainPopup
	DomainCurrent
	DomainRole
	DomainIDRef
	DomainText
	DomainInteger
)

var domainNames = map[Domain]string{
	DomainBool:       "bool",
	DomainTristate:   "tristate",
	DomainPoliteness: "politeness",
	DomainRelevant:   "relevant",
	DomainPopup:      "popup",
	DomainCurrent:    "current",
	DomainRole:       "role",
	DomainIDRef:      "idref",
	DomainText:       "text",
	DomainInteger:    "integer",
}

func (d Domain) String() string {
	if name, ok := domainNames[d]; ok {
		return name
	}
	return "unknown"
}

var vocabulary = map[Key]Domain{
	KeyPressed:     DomainBool,
	KeyExpanded:    DomainBool,
	KeyControls:    DomainIDRef,
	KeySelected:    DomainBool,
	KeyChecked:     DomainTristate,
	KeyLive:        DomainPoliteness,
	KeyAtomic:      DomainBool,
	KeyRelevant:    DomainRelevant,
	KeyBusy:        DomainBool,
	KeyHasPopup:    DomainPopup,
	KeyRequired:    DomainBool,
	KeyInvalid:     DomainBool,
	KeyDescribedBy: DomainIDRef,
	KeyLabelledBy:  DomainIDRef,
	KeyLabel:       DomainText,
	KeyHidden:      DomainBool,
	KeyDisabled:    DomainBool,
	KeyCurrent:     DomainCurrent,
	KeyHref:        DomainText,
	KeyTabIndex:    DomainInteger,
	KeyRole:        DomainRole,
}

// Domain reports the declared value domain of k.
func (k Key) Domain() (Domain, bool) {
	d, ok := vocabulary[k]
	return d, ok
}

// Known reports whether k belongs to the vocabulary.
func (k Key) Known() bool {
	_, ok := vocabulary[k]
	return ok
}

func (k Key) String() string {
	return string(k)
}

// Vocabulary returns every recognised key in lexical order.
func Vocabulary() []Key {
	keys := make([]Key, 0, len(vocabulary))
	for k := range vocabulary {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
