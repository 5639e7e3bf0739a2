package lexorank

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNBetween(t *testing.T) {
	assert := assert.New(t)
	lr := Default()

	test := func(a, b string, n uint, exp string) {
		actSlice, err := lr.NBetween(a, b, n)
		act := strings.Join(actSlice, " ")
		if strings.Contains(exp, "invalid") || strings.Contains(exp, ">=") {
			assert.Nil(actSlice)
			assert.EqualError(err, exp)
		} else {
			assert.NoError(err)
			assert.Equal(exp, act)
		}
	}

	test("A", "C", 1, "B")
	test("A", "C", 3, "AO B BO")
	test("A", "C", 0, "")
	test("", "C", 1, `invalid position: ""`)
	test("A", "C ", 1, `invalid position: "C "`)
	test("C", "A", 1, `"C" >= "A"`)
	test("A", "A", 1, `"A" >= "A"`)
}

func TestNBetweenInvariants(t *testing.T) {
	assert := assert.New(t)
	lr := Default()

	a, b := "A", "B" // adjacent bytes, every split has to grow
	keys, err := lr.NBetween(a, b, 64)
	assert.NoError(err)
	assert.Len(keys, 64)
	prev := a
	for _, k := range keys {
		assert.Equal(-1, lr.Compare(prev, k), "%q then %q", prev, k)
		assert.Equal(-1, lr.Compare(k, b))
		assert.True(lr.IsValid(k))
		prev = k
	}
}

func TestNAfter(t *testing.T) {
	assert := assert.New(t)
	lr := Default()

	keys, err := lr.NAfter("AA", 5)
	assert.NoError(err)
	assert.Equal([]string{"AB", "AC", "AD", "AE", "AF"}, keys)

	// growth chains stay ordered past the alphabet ceiling
	keys, err = lr.NAfter("~", 3)
	assert.NoError(err)
	assert.Equal([]string{"~!", `~"`, "~#"}, keys)

	keys, err = lr.NAfter("AA", 0)
	assert.NoError(err)
	assert.Empty(keys)

	keys, err = lr.NAfter("A ", 1)
	assert.Nil(keys)
	assert.EqualError(err, `invalid position: "A "`)
}

func TestNBefore(t *testing.T) {
	assert := assert.New(t)
	lr := Default()

	keys, err := lr.NBefore("AE", 3)
	assert.NoError(err)
	assert.Equal([]string{"AB", "AC", "AD"}, keys)

	// growth chains stay ordered below the alphabet floor
	keys, err = lr.NBefore("!", 2)
	assert.NoError(err)
	assert.Equal([]string{" }", " ~"}, keys)

	keys, err = lr.NBefore("", 1)
	assert.Nil(keys)
	assert.EqualError(err, `invalid position: ""`)
}
