package domain

// MemberKind names the variant a roster member is built as.
type MemberKind string

const (
	MemberPerson   MemberKind = "person"
	MemberEmployee MemberKind = "employee"
	MemberDog      MemberKind = "dog"
)

// Roster is an ordered list of members loaded from a file.
type Roster struct {
	Name    string
	Members []Member
}

// Member describes one entity of a roster before it is built.
type Member struct {
	Kind       MemberKind
	First      string
	Last       string
	Middle     string
	Department string
}

// Entity builds the concrete value for m. Callers inspect it through the
// Informer and Ager interfaces rather than its concrete type. Unknown kinds,
// including the empty one, yield nil.
func (m Member) Entity() any {
	switch m.Kind {
	case MemberEmployee:
		e := NewEmployee(m.First, m.Last, m.Department)
		if m.Middle != "" {
			e.SetMiddleName(m.Middle)
		}
		return e
	case MemberDog:
		return Dog{}
	case MemberPerson:
		p := NewPerson(m.First, m.Last)
		if m.Middle != "" {
			p.SetMiddleName(m.Middle)
		}
		return p
	default:
		return nil
	}
}

// ParseMemberKind reports whether s names a known member kind.
func ParseMemberKind(s string) (MemberKind, bool) {
	switch k := MemberKind(s); k {
	case MemberPerson, MemberEmployee, MemberDog:
		return k, true
	default:
		return "", false
	}
}
