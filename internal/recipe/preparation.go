package recipe

// Preparation is a single preparation step. It is structurally a leaf:
// there is no child list to populate.
type Preparation struct {
	id          int64
	name        string
	description string
}

// NewPreparation creates an unsaved preparation step.
func NewPreparation(name string) *Preparation {
	return &Preparation{name: name}
}

// ID returns the storage identity, 0 for an unsaved preparation.
func (p *Preparation) ID() int64 { return p.id }

// SetID assigns the storage identity.
func (p *Preparation) SetID(id int64) { p.id = id }

// Name returns the step name.
func (p *Preparation) Name() string { return p.name }

// SetName renames the step.
func (p *Preparation) SetName(name string) { p.name = name }

// Description returns the free-text description.
func (p *Preparation) Description() string { return p.description }

// SetDescription replaces the free-text description.
func (p *Preparation) SetDescription(desc string) { p.description = desc }

// IsRecipe reports false.
func (p *Preparation) IsRecipe() bool { return false }

// IsLeaf reports true; preparations never have children.
func (p *Preparation) IsLeaf() bool { return true }

// Equal implements Process equality.
func (p *Preparation) Equal(other Process) bool {
	o, ok := other.(*Preparation)
	if !ok || o == nil {
		return false
	}
	if p.id > 0 && o.id > 0 {
		return p.id == o.id
	}
	return p.name == o.name && p.description == o.description
}

func (p *Preparation) String() string { return p.name }
