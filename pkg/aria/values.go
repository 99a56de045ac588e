package aria

import "strconv"

// Value is an attribute value drawn from one of the vocabulary's domains.
type Value interface {
	String() string
	Domain() Domain
}

// Bool is the two-value string domain used for boolean states.
type Bool string

const (
	True  Bool = "true"
	False Bool = "false"
)

// BoolOf mirrors b into the string domain.
func BoolOf(b bool) Bool {
	if b {
		return True
	}
	return False
}

func (b Bool) String() string { return string(b) }
func (Bool) Domain() Domain   { return DomainBool }

// Tristate is the checked-state domain.
type Tristate string

const (
	TristateTrue  Tristate = "true"
	TristateFalse Tristate = "false"
	Mixed         Tristate = "mixed"
)

func (t Tristate) String() string { return string(t) }
func (Tristate) Domain() Domain   { return DomainTristate }

// Politeness is the assertiveness level of a live region.
type Politeness string

const (
	Off       Politeness = "off"
	Polite    Politeness = "polite"
	Assertive Politeness = "assertive"
)

func (p Politeness) String() string { return string(p) }
func (Politeness) Domain() Domain   { return DomainPoliteness }

// Relevant lists which live region changes are announced. Values may combine
// tokens separated by a space.
type Relevant string

const (
	Additions     Relevant = "additions"
	Removals      Relevant = "removals"
	RelevantText  Relevant = "text"
	RelevantAll   Relevant = "all"
	AdditionsText Relevant = "additions text"
)

func (r Relevant) String() string { return string(r) }
func (Relevant) Domain() Domain   { return DomainRelevant }

// Popup is the kind of popup an element opens.
type Popup string

const (
	PopupTrue    Popup = "true"
	PopupFalse   Popup = "false"
	PopupMenu    Popup = "menu"
	PopupListbox Popup = "listbox"
	PopupTree    Popup = "tree"
	PopupGrid    Popup = "grid"
	PopupDialog  Popup = "dialog"
)

func (p Popup) String() string { return string(p) }
func (Popup) Domain() Domain   { return DomainPopup }

// Current marks the current item within a set.
type Current string

const (
	CurrentPage     Current = "page"
	CurrentStep     Current = "step"
	CurrentLocation Current = "location"
	CurrentDate     Current = "date"
	CurrentTime     Current = "time"
	CurrentTrue     Current = "true"
	CurrentFalse    Current = "false"
)

func (c Current) String() string { return string(c) }
func (Current) Domain() Domain   { return DomainCurrent }

// Role is an element role token.
type Role string

const (
	RoleAlert    Role = "alert"
	RoleButton   Role = "button"
	RoleCheckbox Role = "checkbox"
	RoleDialog   Role = "dialog"
	RoleLog      Role = "log"
	RoleRegion   Role = "region"
	RoleStatus   Role = "status"
	RoleSwitch   Role = "switch"
	RoleTab      Role = "tab"
)

func (r Role) String() string { return string(r) }
func (Role) Domain() Domain   { return DomainRole }

// IDRef references one or more element identifiers, space separated.
type IDRef string

func (r IDRef) String() string { return string(r) }
func (IDRef) Domain() Domain   { return DomainIDRef }

// Text is a free string value.
type Text string

func (t Text) String() string { return string(t) }
func (Text) Domain() Domain   { return DomainText }

// TabIndex is a tab-order position. Negative values remove an element from
// sequential keyboard navigation.
type TabIndex int

// Unreachable removes an element from the tab order.
const Unreachable TabIndex = -1

func (t TabIndex) String() string { return strconv.Itoa(int(t)) }
func (TabIndex) Domain() Domain   { return DomainInteger }
