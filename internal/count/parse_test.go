package count

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		token    string
		expected Spec
	}{
		{name: "bare count anchors from end", token: "3", expected: Anchored{N: -3, Sign: SignDefault}},
		{name: "explicit minus", token: "-3", expected: Anchored{N: -3, Sign: SignMinus}},
		{name: "explicit plus", token: "+3", expected: Anchored{N: 3, Sign: SignPlus}},
		{name: "bare zero is all", token: "0", expected: All{}},
		{name: "minus zero is all", token: "-0", expected: All{}},
		{name: "plus zero stays anchored", token: "+0", expected: Anchored{N: 0, Sign: SignPlus}},
		{name: "leading zeros", token: "007", expected: Anchored{N: -7, Sign: SignDefault}},
		{name: "many zeros is all", token: "000", expected: All{}},
		{name: "min int64", token: "9223372036854775808", expected: Anchored{N: math.MinInt64, Sign: SignDefault}},
		{name: "max int64 from start", token: "+9223372036854775807", expected: Anchored{N: math.MaxInt64, Sign: SignPlus}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := Parse(tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, spec)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		token string
		cause error
	}{
		{name: "empty", token: "", cause: ErrSyntax},
		{name: "letters", token: "foo", cause: ErrSyntax},
		{name: "sign only", token: "+", cause: ErrSyntax},
		{name: "double sign", token: "--3", cause: ErrSyntax},
		{name: "decimal", token: "3.5", cause: ErrSyntax},
		{name: "whitespace", token: " 3", cause: ErrSyntax},
		{name: "trailing junk", token: "3k", cause: ErrSyntax},
		{name: "overflow from start", token: "+9223372036854775808", cause: strconv.ErrRange},
		{name: "overflow from end", token: "99999999999999999999", cause: strconv.ErrRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := Parse(tc.token)
			require.Error(t, err)
			assert.Nil(t, spec)

			var invalid *InvalidCountError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tc.token, invalid.Token)
			assert.Equal(t, tc.token, err.Error())
			assert.ErrorIs(t, err, tc.cause)
		})
	}
}

func TestParse_SignIsPreserved(t *testing.T) {
	bare := MustParse("5").(Anchored)
	minus := MustParse("-5").(Anchored)
	plus := MustParse("+5").(Anchored)

	assert.Equal(t, bare.N, minus.N)
	assert.NotEqual(t, bare.Sign, minus.Sign)
	assert.True(t, bare.FromEnd())
	assert.True(t, minus.FromEnd())
	assert.False(t, plus.FromEnd())
	assert.Equal(t, int64(5), plus.N)
}

func TestSpec_String(t *testing.T) {
	for _, token := range []string{"5", "-5", "+5", "+0", "9223372036854775808"} {
		t.Run(token, func(t *testing.T) {
			assert.Equal(t, token, MustParse(token).String())
		})
	}
	assert.Equal(t, "-0", MustParse("0").String())
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("ten") })
}
