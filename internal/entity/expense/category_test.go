package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CategoryFromIndex(t *testing.T) {
	assert.Equal(t, FoodAndDining, CategoryFromIndex(1))
	assert.Equal(t, Groceries, CategoryFromIndex(9))
	assert.Equal(t, Other, CategoryFromIndex(10))
	assert.Equal(t, Other, CategoryFromIndex(0))
	assert.Equal(t, Other, CategoryFromIndex(42))
	assert.Equal(t, Other, CategoryFromIndex(-3))
}

func Test_Categories_ShouldReturnCopy(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 10)
	cats[0] = "Mutated"
	assert.Equal(t, FoodAndDining, Categories()[0])
}

func Test_CategoryValid(t *testing.T) {
	assert.True(t, BillsAndUtilities.Valid())
	assert.False(t, Category("Gadgets").Valid())
}

func Test_RecordMonth(t *testing.T) {
	assert.Equal(t, "2024-01", Record{Date: "2024-01-15"}.Month())
	assert.Equal(t, "2024", Record{Date: "2024"}.Month())
}
