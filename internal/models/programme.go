package models

type Programme struct {
	ID      int      `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Modules []Module `json:"modules" yaml:"modules"`
}

// Document is the whole persisted state, saved and loaded wholesale.
type Document struct {
	Programmes []Programme `json:"programmes" yaml:"programmes"`
}

func NewDocument() *Document {
	return &Document{Programmes: []Programme{}}
}

// Normalize replaces nil collections with empty ones so they encode as [].
func (d *Document) Normalize() {
	if d.Programmes == nil {
		d.Programmes = []Programme{}
	}
	for i := range d.Programmes {
		p := &d.Programmes[i]
		if p.Modules == nil {
			p.Modules = []Module{}
		}
		for j := range p.Modules {
			if p.Modules[j].Tasks == nil {
				p.Modules[j].Tasks = []Task{}
			}
		}
	}
}

func (d *Document) ProgrammeByID(id int) *Programme {
	for i := range d.Programmes {
		if d.Programmes[i].ID == id {
			return &d.Programmes[i]
		}
	}
	return nil
}

// ModuleByID scans every programme in order and returns the first module
// with the given id together with its owner.
func (d *Document) ModuleByID(id int) (*Programme, *Module) {
	for i := range d.Programmes {
		p := &d.Programmes[i]
		for j := range p.Modules {
			if p.Modules[j].ID == id {
				return p, &p.Modules[j]
			}
		}
	}
	return nil, nil
}

func (d *Document) NextProgrammeID() int {
	max := 0
	for _, p := range d.Programmes {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func (p *Programme) NextModuleID() int {
	max := 0
	for _, m := range p.Modules {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}
