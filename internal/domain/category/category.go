package category

type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	ParentID    *int64
	IsActive    bool
}

func (c *Category) Status() string {
	if c.IsActive {
		return "active"
	}
	return "inactive"
}
