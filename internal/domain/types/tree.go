package types

// FindDomain returns the index of the domain with id, or -1.
func (d *Document) FindDomain(id DomainID) int {
	for i := range d.Domains {
		if d.Domains[i].ID == id {
			return i
		}
	}
	return -1
}

// FindCategory returns the index of the category with id, or -1.
func (d *Domain) FindCategory(id CategoryID) int {
	for i := range d.Categories {
		if d.Categories[i].ID == id {
			return i
		}
	}
	return -1
}

// FindQuestion returns the index of the question with id, or -1.
func (c *Category) FindQuestion(id QuestionID) int {
	for i := range c.Questions {
		if c.Questions[i].ID == id {
			return i
		}
	}
	return -1
}

// MaxID returns the largest domain, category or question id in the document.
// Option ids are question-scoped and ignored.
func (d *Document) MaxID() int64 {
	var max int64
	for _, dom := range d.Domains {
		if int64(dom.ID) > max {
			max = int64(dom.ID)
		}
		for _, cat := range dom.Categories {
			if int64(cat.ID) > max {
				max = int64(cat.ID)
			}
			for _, q := range cat.Questions {
				if int64(q.ID) > max {
					max = int64(q.ID)
				}
			}
		}
	}
	return max
}

// Normalize replaces nil child collections with empty ones so the document
// always serialises with arrays rather than nulls.
func (d *Document) Normalize() {
	if d.Domains == nil {
		d.Domains = []Domain{}
	}
	for i := range d.Domains {
		d.Domains[i].normalize()
	}
}

func (d *Domain) normalize() {
	if d.Categories == nil {
		d.Categories = []Category{}
	}
	for i := range d.Categories {
		d.Categories[i].normalize()
	}
}

func (c *Category) normalize() {
	if c.Questions == nil {
		c.Questions = []Question{}
	}
	for i := range c.Questions {
		if c.Questions[i].Options == nil {
			c.Questions[i].Options = []Option{}
		}
	}
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := Document{Domains: make([]Domain, len(d.Domains))}
	for i, dom := range d.Domains {
		out.Domains[i] = dom.Clone()
	}
	return out
}

// Clone returns a deep copy of the domain and its subtree.
func (d Domain) Clone() Domain {
	out := d
	out.Categories = make([]Category, len(d.Categories))
	for i, c := range d.Categories {
		out.Categories[i] = c.Clone()
	}
	return out
}

// Clone returns a deep copy of the category and its questions.
func (c Category) Clone() Category {
	out := c
	out.Questions = make([]Question, len(c.Questions))
	for i, q := range c.Questions {
		out.Questions[i] = q.Clone()
	}
	return out
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	out := q
	out.Options = append(make([]Option, 0, len(q.Options)), q.Options...)
	return out
}
