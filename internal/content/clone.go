package content

import "slices"

// Clone methods return deep copies: no pointer or slice is shared with the
// receiver.

func (d *Document) Clone() *Document {
	out := *d
	out.Body = d.Body.Clone()
	if d.Author != nil {
		a := *d.Author
		out.Author = &a
	}
	if d.SalaryData != nil {
		sd := *d.SalaryData
		sd.TopEmployers = slices.Clone(sd.TopEmployers)
		sd.TopIndustries = slices.Clone(sd.TopIndustries)
		out.SalaryData = &sd
	}
	return &out
}

func (f *FeaturedSection) Clone() *FeaturedSection {
	out := *f
	out.Items = slices.Clone(f.Items)
	return &out
}

func (a *Agency) Clone() *Agency {
	out := *a
	out.Specializations = slices.Clone(a.Specializations)
	out.Industries = slices.Clone(a.Industries)
	out.Locations = slices.Clone(a.Locations)
	return &out
}

func (f *FAQ) Clone() *FAQ {
	out := *f
	out.DetailedAnswer = f.DetailedAnswer.Clone()
	out.Keywords = slices.Clone(f.Keywords)
	return &out
}

func (j *Job) Clone() *Job {
	out := *j
	out.Description = j.Description.Clone()
	out.Requirements = slices.Clone(j.Requirements)
	out.Benefits = slices.Clone(j.Benefits)
	if j.Salary != nil {
		s := *j.Salary
		out.Salary = &s
	}
	return &out
}

func (a *Author) Clone() *Author {
	out := *a
	return &out
}

func (b Body) Clone() Body {
	if b.Blocks == nil {
		return b
	}
	blocks := make([]Block, len(b.Blocks))
	for i, blk := range b.Blocks {
		blk.MarkDefs = slices.Clone(blk.MarkDefs)
		if blk.Children != nil {
			spans := make([]Span, len(blk.Children))
			for j, sp := range blk.Children {
				sp.Marks = slices.Clone(sp.Marks)
				spans[j] = sp
			}
			blk.Children = spans
		}
		blocks[i] = blk
	}
	return Body{Plain: b.Plain, Blocks: blocks}
}
