package expense

type Category string

const (
	FoodAndDining     Category = "Food & Dining"
	Transportation    Category = "Transportation"
	Shopping          Category = "Shopping"
	Entertainment     Category = "Entertainment"
	BillsAndUtilities Category = "Bills & Utilities"
	Healthcare        Category = "Healthcare"
	Education         Category = "Education"
	Travel            Category = "Travel"
	Groceries         Category = "Groceries"
	Other             Category = "Other"
)

var categories = []Category{
	FoodAndDining, Transportation, Shopping, Entertainment, BillsAndUtilities,
	Healthcare, Education, Travel, Groceries, Other,
}

// Categories returns the fixed set in menu order.
func Categories() []Category {
	res := make([]Category, len(categories))
	copy(res, categories)
	return res
}

// CategoryFromIndex resolves a 1-based menu selection, anything out of range is Other.
func CategoryFromIndex(idx int) Category {
	if idx < 1 || idx > len(categories) {
		return Other
	}
	return categories[idx-1]
}

func (c Category) Valid() bool {
	for _, cat := range categories {
		if cat == c {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
