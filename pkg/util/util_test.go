package util

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapErrorf(t *testing.T) {
	cause := errors.New("no route")
	err := WrapErrorf(cause, ErrNotFound, "no route from %d to %d", 0, 3)

	assert.Equal(t, "no route from 0 to 3", err.Error())
	assert.ErrorIs(t, err, cause)

	var uErr *Error
	require.True(t, errors.As(err, &uErr))
	assert.Equal(t, ErrNotFound, uErr.Code())
}

func TestClampAndAbs(t *testing.T) {
	assert.Equal(t, 3.0, Clamp(1.0, 3.0, 5.0))
	assert.Equal(t, 5.0, Clamp(9.0, 3.0, 5.0))
	assert.Equal(t, 4.0, Clamp(4.0, 3.0, 5.0))
	assert.Equal(t, math.Inf(1), Clamp(math.Inf(1), 3.0, math.Inf(1)))
	assert.Equal(t, 7, Abs(-7))
	assert.Equal(t, 2.5, Abs(-2.5))
}

func TestParseFloatList(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    []float64
		wantErr bool
	}{
		{name: "default budgets", input: "29,45,77,150", want: []float64{29, 45, 77, 150}},
		{name: "spaces and empty parts", input: " 1.5 , ,2,", want: []float64{1.5, 2}},
		{name: "empty", input: "", want: []float64{}},
		{name: "not a number", input: "1,x", wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFloatList(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFloatList(t *testing.T) {
	assert.Equal(t, "29,45,77,150", FormatFloatList([]float64{29, 45, 77, 150}))
	assert.Equal(t, "1.5,0.1", FormatFloatList([]float64{1.5, 0.1}))
	assert.Equal(t, "", FormatFloatList(nil))

	got, err := ParseFloatList(FormatFloatList([]float64{2.25, 1e-7, 300}))
	require.NoError(t, err)
	assert.Equal(t, []float64{2.25, 1e-7, 300}, got)
}

func TestReverseG(t *testing.T) {
	in := []int{1, 2, 3}
	assert.Equal(t, []int{3, 2, 1}, ReverseG(in))
	assert.Equal(t, []int{1, 2, 3}, in)
}
